package types

import (
	"time"

	"github.com/google/uuid"
)

// CareerPlan bundles everything produced for one profile and chosen career.
type CareerPlan struct {
	ID              uuid.UUID         `json:"id"`
	Career          CareerMatch       `json:"career"`
	Recommendations []CareerMatch     `json:"recommendations"`
	Mentors         []MentorMatch     `json:"mentors"`
	Roadmap         *RoadmapResponse  `json:"roadmap,omitempty"`
	Trends          *TrendsResponse   `json:"trends,omitempty"`
	SkillGap        *SkillGap         `json:"skill_gap,omitempty"`
	Errors          map[string]string `json:"errors,omitempty"`
	GeneratedAt     time.Time         `json:"generated_at"`
}

// SkillGap compares a person's skills with a career's required skills.
type SkillGap struct {
	UserSkills    []string `json:"user_skills"`
	CareerSkills  []string `json:"career_skills"`
	MissingSkills []string `json:"missing_skills"`
	GapPercentage float64  `json:"gap_percentage"`
}

// GrowthProjection is a compound salary projection for a career.
type GrowthProjection struct {
	CurrentSalary   int     `json:"current_salary"`
	ProjectedSalary float64 `json:"projected_salary"`
	Years           int     `json:"years"`
	GrowthRate      float64 `json:"growth_rate"`
}
