package types

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// CareerRecord is a career from the corpus. Records are read-only inputs to matching.
type CareerRecord struct {
	CareerID              string      `json:"career_id" validate:"required"`
	Title                 string      `json:"title" validate:"required"`
	Description           string      `json:"description"`
	KeySkills             []string    `json:"key_skills"`
	AvgSalary             int         `json:"avg_salary"`
	EntryLevelSalary      int         `json:"entry_level_salary"`
	DemandScore           int         `json:"demand_score" validate:"min=0,max=100"`
	EducationRequirements string      `json:"education_requirements"`
	GrowthTrend           GrowthTrend `json:"growth_trend"`
}

// GrowthTrend describes the projected five-year growth of a career.
type GrowthTrend struct {
	FiveYearGrowthPct float64 `json:"5y_growth_pct"`
	Explain           string  `json:"explain"`
}

// Clone returns a deep copy of the record.
func (c CareerRecord) Clone() CareerRecord {
	c.KeySkills = slices.Clone(c.KeySkills)
	return c
}

// Validate checks the record's required fields and ranges.
func (c *CareerRecord) Validate() error {
	return validator.New().Struct(c)
}

// CareerMatch is a career annotated with its match score and explanation.
// Score and explanation are absent when the matcher fell back to unscored defaults.
type CareerMatch struct {
	CareerRecord
	MatchScore  int    `json:"match_score,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}
