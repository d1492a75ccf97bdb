package types

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// Industry values used by mentor records. The set is open; these are the ones
// the matcher keys on.
const (
	IndustryTechnology = "technology"
	IndustryFinance    = "finance"
	IndustryHealthcare = "healthcare"
	IndustryEducation  = "education"
	IndustryMarketing  = "marketing"
)

// MentorRecord is a mentor from the corpus.
type MentorRecord struct {
	ID           string   `json:"id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Industry     string   `json:"industry"`
	Expertise    []string `json:"expertise"`
	Rating       float64  `json:"rating" validate:"min=0,max=5"`
	Bio          string   `json:"bio"`
	Availability string   `json:"availability"`
}

// Clone returns a deep copy of the record.
func (m MentorRecord) Clone() MentorRecord {
	m.Expertise = slices.Clone(m.Expertise)
	return m
}

// Validate checks the record's required fields and ranges.
func (m *MentorRecord) Validate() error {
	return validator.New().Struct(m)
}

// MentorMatch is a mentor annotated with its match score.
type MentorMatch struct {
	MentorRecord
	MatchScore int `json:"match_score"`
}
