package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
	schemafiles "github.com/jonathan/career-compass/schemas"
)

// FileStore reads the corpora from JSON files on every call. An empty path
// yields an empty corpus, which the matchers replace with their built-in
// defaults.
type FileStore struct {
	CareersPath string
	MentorsPath string
}

// NewFileStore creates a store over careers.json and mentors.json.
func NewFileStore(careersPath, mentorsPath string) *FileStore {
	return &FileStore{CareersPath: careersPath, MentorsPath: mentorsPath}
}

// Careers implements CareerSource.
func (s *FileStore) Careers(ctx context.Context) ([]types.CareerRecord, error) {
	if s.CareersPath == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadCareersFile(s.CareersPath)
}

// Mentors implements MentorSource.
func (s *FileStore) Mentors(ctx context.Context) ([]types.MentorRecord, error) {
	if s.MentorsPath == "" {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadMentorsFile(s.MentorsPath)
}

// Career implements Store.
func (s *FileStore) Career(ctx context.Context, id string) (*types.CareerRecord, error) {
	careers, err := s.Careers(ctx)
	if err != nil {
		return nil, err
	}
	return findCareer(careers, id)
}

// Close implements Store.
func (s *FileStore) Close() error {
	return nil
}

// LoadCareersFile reads and validates a careers.json file.
func LoadCareersFile(path string) ([]types.CareerRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read careers file: %w", err)
	}
	careers, err := DecodeCareers(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return careers, nil
}

// LoadMentorsFile reads and validates a mentors.json file.
func LoadMentorsFile(path string) ([]types.MentorRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mentors file: %w", err)
	}
	mentors, err := DecodeMentors(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mentors, nil
}

// DecodeCareers validates a career corpus document and decodes it.
func DecodeCareers(data []byte) ([]types.CareerRecord, error) {
	if err := schemas.ValidateDocument(schemafiles.Careers, data); err != nil {
		return nil, err
	}
	var careers []types.CareerRecord
	if err := json.Unmarshal(data, &careers); err != nil {
		return nil, fmt.Errorf("failed to decode careers: %w", err)
	}
	if err := validateCareers(careers); err != nil {
		return nil, err
	}
	return careers, nil
}

// DecodeMentors validates a mentor corpus document and decodes it. The
// document is either an array of mentors or an object with a "mentors" array.
func DecodeMentors(data []byte) ([]types.MentorRecord, error) {
	if err := schemas.ValidateDocument(schemafiles.Mentors, data); err != nil {
		return nil, err
	}

	var mentors []types.MentorRecord
	if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		var wrapped struct {
			Mentors []types.MentorRecord `json:"mentors"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("failed to decode mentors: %w", err)
		}
		mentors = wrapped.Mentors
	} else if err := json.Unmarshal(data, &mentors); err != nil {
		return nil, fmt.Errorf("failed to decode mentors: %w", err)
	}

	if err := validateMentors(mentors); err != nil {
		return nil, err
	}
	return mentors, nil
}
