package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jonathan/career-compass/internal/types"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS careers (
	career_id              TEXT PRIMARY KEY,
	title                  TEXT NOT NULL,
	description            TEXT NOT NULL DEFAULT '',
	key_skills             TEXT NOT NULL DEFAULT '[]',
	avg_salary             INTEGER NOT NULL DEFAULT 0,
	entry_level_salary     INTEGER NOT NULL DEFAULT 0,
	demand_score           INTEGER NOT NULL DEFAULT 0,
	education_requirements TEXT NOT NULL DEFAULT '',
	growth_trend           TEXT NOT NULL DEFAULT '{}',
	position               INTEGER NOT NULL,
	updated_at             TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS mentors (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	title        TEXT NOT NULL DEFAULT '',
	company      TEXT NOT NULL DEFAULT '',
	industry     TEXT NOT NULL DEFAULT '',
	expertise    TEXT NOT NULL DEFAULT '[]',
	rating       REAL NOT NULL DEFAULT 0,
	bio          TEXT NOT NULL DEFAULT '',
	availability TEXT NOT NULL DEFAULT '',
	position     INTEGER NOT NULL,
	updated_at   TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteStore serves the corpora from an embedded SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path. Use ":memory:" for a
// throwaway database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1) // single writer

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate creates the corpus tables if they do not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("failed to migrate corpus schema: %w", err)
	}
	return nil
}

// Careers returns every career in seed order.
func (s *SQLiteStore) Careers(ctx context.Context) ([]types.CareerRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+careerColumns+` FROM careers ORDER BY position, career_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	defer rows.Close()

	var careers []types.CareerRecord
	for rows.Next() {
		c, err := scanCareer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan career: %w", err)
		}
		careers = append(careers, c)
	}
	return careers, rows.Err()
}

// Mentors returns every mentor in seed order.
func (s *SQLiteStore) Mentors(ctx context.Context) ([]types.MentorRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+mentorColumns+` FROM mentors ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	defer rows.Close()

	var mentors []types.MentorRecord
	for rows.Next() {
		m, err := scanMentor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mentor: %w", err)
		}
		mentors = append(mentors, m)
	}
	return mentors, rows.Err()
}

// Career retrieves a career by its id.
func (s *SQLiteStore) Career(ctx context.Context, id string) (*types.CareerRecord, error) {
	c, err := scanCareer(s.db.QueryRowContext(ctx,
		`SELECT `+careerColumns+` FROM careers WHERE career_id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &NotFoundError{Kind: "career", ID: id}
		}
		return nil, fmt.Errorf("failed to get career: %w", err)
	}
	return &c, nil
}

// SeedCareers replaces the career table with the given records.
func (s *SQLiteStore) SeedCareers(ctx context.Context, careers []types.CareerRecord) (int, error) {
	if err := validateCareers(careers); err != nil {
		return 0, err
	}
	err := s.replace(ctx, "careers",
		`INSERT INTO careers (`+careerColumns+`, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(careers), func(i int) ([]any, error) { return careerArgs(careers[i], i) })
	if err != nil {
		return 0, err
	}
	return len(careers), nil
}

// SeedMentors replaces the mentor table with the given records.
func (s *SQLiteStore) SeedMentors(ctx context.Context, mentors []types.MentorRecord) (int, error) {
	if err := validateMentors(mentors); err != nil {
		return 0, err
	}
	err := s.replace(ctx, "mentors",
		`INSERT INTO mentors (`+mentorColumns+`, position) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(mentors), func(i int) ([]any, error) { return mentorArgs(mentors[i], i) })
	if err != nil {
		return 0, err
	}
	return len(mentors), nil
}

func (s *SQLiteStore) replace(ctx context.Context, table, insert string, n int, args func(int) ([]any, error)) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		values, err := args(i)
		if err != nil {
			return fmt.Errorf("failed to encode %s row %d: %w", table, i, err)
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return fmt.Errorf("failed to insert %s row %d: %w", table, i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}
