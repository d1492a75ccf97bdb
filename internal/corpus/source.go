// Package corpus provides read access to the career and mentor corpora, backed
// by JSON files, PostgreSQL or SQLite.
package corpus

import (
	"context"
	"fmt"

	"github.com/jonathan/career-compass/internal/types"
)

// CareerSource supplies the career corpus.
type CareerSource interface {
	Careers(ctx context.Context) ([]types.CareerRecord, error)
}

// MentorSource supplies the mentor corpus.
type MentorSource interface {
	Mentors(ctx context.Context) ([]types.MentorRecord, error)
}

// Store is a queryable corpus.
type Store interface {
	CareerSource
	MentorSource
	// Career returns the career with the given id, or a *NotFoundError.
	Career(ctx context.Context, id string) (*types.CareerRecord, error)
	Close() error
}

// Seeder is a Store that can be (re)populated. Seeding replaces the whole table.
type Seeder interface {
	Store
	Migrate(ctx context.Context) error
	SeedCareers(ctx context.Context, careers []types.CareerRecord) (int, error)
	SeedMentors(ctx context.Context, mentors []types.MentorRecord) (int, error)
}

// NotFoundError is returned when a record lookup has no match.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func findCareer(careers []types.CareerRecord, id string) (*types.CareerRecord, error) {
	for i := range careers {
		if careers[i].CareerID == id {
			c := careers[i].Clone()
			return &c, nil
		}
	}
	return nil, &NotFoundError{Kind: "career", ID: id}
}

func validateCareers(careers []types.CareerRecord) error {
	seen := make(map[string]bool, len(careers))
	for i := range careers {
		if err := careers[i].Validate(); err != nil {
			return fmt.Errorf("invalid career at index %d: %w", i, err)
		}
		if seen[careers[i].CareerID] {
			return fmt.Errorf("duplicate career_id %q", careers[i].CareerID)
		}
		seen[careers[i].CareerID] = true
	}
	return nil
}

func validateMentors(mentors []types.MentorRecord) error {
	seen := make(map[string]bool, len(mentors))
	for i := range mentors {
		if err := mentors[i].Validate(); err != nil {
			return fmt.Errorf("invalid mentor at index %d: %w", i, err)
		}
		if seen[mentors[i].ID] {
			return fmt.Errorf("duplicate mentor id %q", mentors[i].ID)
		}
		seen[mentors[i].ID] = true
	}
	return nil
}
