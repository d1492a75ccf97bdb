package corpus

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/career-compass/internal/types"
)

// rowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const careerColumns = `career_id, title, description, key_skills, avg_salary, entry_level_salary,
	demand_score, education_requirements, growth_trend`

const mentorColumns = `id, name, title, company, industry, expertise, rating, bio, availability`

func scanCareer(row rowScanner) (types.CareerRecord, error) {
	var c types.CareerRecord
	var skills, trend []byte
	err := row.Scan(&c.CareerID, &c.Title, &c.Description, &skills, &c.AvgSalary,
		&c.EntryLevelSalary, &c.DemandScore, &c.EducationRequirements, &trend)
	if err != nil {
		return c, err
	}
	if err := unmarshalColumn(skills, &c.KeySkills); err != nil {
		return c, fmt.Errorf("failed to decode key_skills for %s: %w", c.CareerID, err)
	}
	if len(c.KeySkills) == 0 {
		c.KeySkills = nil
	}
	if err := unmarshalColumn(trend, &c.GrowthTrend); err != nil {
		return c, fmt.Errorf("failed to decode growth_trend for %s: %w", c.CareerID, err)
	}
	return c, nil
}

func scanMentor(row rowScanner) (types.MentorRecord, error) {
	var m types.MentorRecord
	var expertise []byte
	err := row.Scan(&m.ID, &m.Name, &m.Title, &m.Company, &m.Industry, &expertise,
		&m.Rating, &m.Bio, &m.Availability)
	if err != nil {
		return m, err
	}
	if err := unmarshalColumn(expertise, &m.Expertise); err != nil {
		return m, fmt.Errorf("failed to decode expertise for %s: %w", m.ID, err)
	}
	if len(m.Expertise) == 0 {
		m.Expertise = nil
	}
	return m, nil
}

func unmarshalColumn(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

// careerArgs returns the insert arguments in careerColumns order followed by position.
func careerArgs(c types.CareerRecord, position int) ([]any, error) {
	skills := c.KeySkills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, err
	}
	trendJSON, err := json.Marshal(c.GrowthTrend)
	if err != nil {
		return nil, err
	}
	return []any{c.CareerID, c.Title, c.Description, string(skillsJSON), c.AvgSalary,
		c.EntryLevelSalary, c.DemandScore, c.EducationRequirements, string(trendJSON), position}, nil
}

// mentorArgs returns the insert arguments in mentorColumns order followed by position.
func mentorArgs(m types.MentorRecord, position int) ([]any, error) {
	expertise := m.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	expertiseJSON, err := json.Marshal(expertise)
	if err != nil {
		return nil, err
	}
	return []any{m.ID, m.Name, m.Title, m.Company, m.Industry, string(expertiseJSON),
		m.Rating, m.Bio, m.Availability, position}, nil
}
