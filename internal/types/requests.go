package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RecommendCareersRequest asks for careers matching a profile.
type RecommendCareersRequest struct {
	Profile UserProfile `json:"profile"`
	Limit   int         `json:"limit,omitempty" validate:"min=0,max=50"`
}

// MatchMentorsRequest asks for mentors suited to a profile and target career.
type MatchMentorsRequest struct {
	Profile UserProfile  `json:"profile"`
	Career  CareerRecord `json:"career"`
	Limit   int          `json:"limit,omitempty" validate:"min=0,max=50"`
}

// RoadmapRequest asks for a learning roadmap for a career.
type RoadmapRequest struct {
	CareerID string       `json:"career_id,omitempty"`
	Career   CareerRecord `json:"career"`
	Profile  UserProfile  `json:"profile"`
}

// TrendsRequest asks for an industry-trends brief.
type TrendsRequest struct {
	Field  string `json:"field" validate:"required"`
	Period string `json:"period,omitempty"`
}

// SkillGapRequest compares a person's skills with a career's requirements.
// CareerSkills, when given, is used as is; otherwise the skills of the career
// named by CareerID or Career are compared.
type SkillGapRequest struct {
	UserSkills   StringList   `json:"user_skills"`
	CareerSkills StringList   `json:"career_skills,omitempty"`
	CareerID     string       `json:"career_id,omitempty"`
	Career       CareerRecord `json:"career"`
}

// GrowthProjectionRequest asks for a compound salary projection for a career.
type GrowthProjectionRequest struct {
	CareerID   string       `json:"career_id,omitempty"`
	Career     CareerRecord `json:"career"`
	Years      int          `json:"years,omitempty" validate:"min=0,max=40"`
	GrowthRate float64      `json:"growth_rate,omitempty" validate:"min=0,max=1"`
}

// ExtractSkillsRequest holds a questionnaire profile, or free text, to extract
// skill names from. Text wins when both are set.
type ExtractSkillsRequest struct {
	Profile UserProfile `json:"profile"`
	Text    string      `json:"text,omitempty"`
}

// CareerPlanRequest asks for the combined plan for one career.
type CareerPlanRequest struct {
	Profile  UserProfile  `json:"profile"`
	CareerID string       `json:"career_id,omitempty"`
	Career   CareerRecord `json:"career"`
	Period   string       `json:"period,omitempty" validate:"omitempty,max=32"`
}

// Validate validates the RecommendCareersRequest using the validator.
func (r *RecommendCareersRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchMentorsRequest using the validator.
func (r *MatchMentorsRequest) Validate() error {
	validate := validator.New()
	return validate.StructExcept(r, "Career")
}

// Validate checks that the request names a career either by id or inline.
func (r *RoadmapRequest) Validate() error {
	return requireCareer(r.CareerID, r.Career)
}

// Validate validates the TrendsRequest using the validator.
func (r *TrendsRequest) Validate() error {
	r.Field = strings.TrimSpace(r.Field)
	validate := validator.New()
	return validate.Struct(r)
}

// Validate checks that the request has career skills or names a career.
func (r *SkillGapRequest) Validate() error {
	if len(r.CareerSkills) > 0 {
		return nil
	}
	return requireCareer(r.CareerID, r.Career)
}

// Validate validates the GrowthProjectionRequest using the validator.
func (r *GrowthProjectionRequest) Validate() error {
	validate := validator.New()
	if err := validate.StructExcept(r, "Career"); err != nil {
		return err
	}
	return requireCareer(r.CareerID, r.Career)
}

// Validate checks that there is something to extract skills from.
func (r *ExtractSkillsRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" && strings.TrimSpace(r.Profile.Skills) == "" {
		return &ValidationError{Field: "skills", Message: "text or profile.skills is required"}
	}
	return nil
}

// Validate validates the CareerPlanRequest. The career is optional: without one
// the plan is built for the top recommendation.
func (r *CareerPlanRequest) Validate() error {
	validate := validator.New()
	return validate.StructExcept(r, "Career")
}

// ValidationError reports a request field that fails a check the validator
// tags cannot express.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// MissingCareerError is returned when a request names no career.
type MissingCareerError struct{}

func (e *MissingCareerError) Error() string {
	return "career_id or career.title is required"
}

func requireCareer(careerID string, career CareerRecord) error {
	if strings.TrimSpace(careerID) == "" && strings.TrimSpace(career.Title) == "" {
		return &MissingCareerError{}
	}
	return nil
}
