package corpus

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonathan/career-compass/internal/types"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS careers (
	career_id              TEXT PRIMARY KEY,
	title                  TEXT NOT NULL,
	description            TEXT NOT NULL DEFAULT '',
	key_skills             JSONB NOT NULL DEFAULT '[]',
	avg_salary             INTEGER NOT NULL DEFAULT 0,
	entry_level_salary     INTEGER NOT NULL DEFAULT 0,
	demand_score           INTEGER NOT NULL DEFAULT 0 CHECK (demand_score BETWEEN 0 AND 100),
	education_requirements TEXT NOT NULL DEFAULT '',
	growth_trend           JSONB NOT NULL DEFAULT '{}',
	position               INTEGER NOT NULL,
	updated_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS mentors (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	title        TEXT NOT NULL DEFAULT '',
	company      TEXT NOT NULL DEFAULT '',
	industry     TEXT NOT NULL DEFAULT '',
	expertise    JSONB NOT NULL DEFAULT '[]',
	rating       DOUBLE PRECISION NOT NULL DEFAULT 0,
	bio          TEXT NOT NULL DEFAULT '',
	availability TEXT NOT NULL DEFAULT '',
	position     INTEGER NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_mentors_industry ON mentors (industry);
`

// PostgresStore serves the corpora from PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool to the database
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// Migrate creates the corpus tables if they do not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to migrate corpus schema: %w", err)
	}
	return nil
}

// Careers returns every career in seed order.
func (s *PostgresStore) Careers(ctx context.Context) ([]types.CareerRecord, error) {
	rows, err := s.pool.Query(ctx,
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list careers: %w", err)
	}
	return careers, nil
}

// Mentors returns every mentor in seed order.
func (s *PostgresStore) Mentors(ctx context.Context) ([]types.MentorRecord, error) {
	rows, err := s.pool.Query(ctx,
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
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	return mentors, nil
}

// Career retrieves a career by its id
func (s *PostgresStore) Career(ctx context.Context, id string) (*types.CareerRecord, error) {
	c, err := scanCareer(s.pool.QueryRow(ctx,
		`SELECT `+careerColumns+` FROM careers WHERE career_id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &NotFoundError{Kind: "career", ID: id}
		}
		return nil, fmt.Errorf("failed to get career: %w", err)
	}
	return &c, nil
}

// SeedCareers replaces the career table with the given records.
func (s *PostgresStore) SeedCareers(ctx context.Context, careers []types.CareerRecord) (int, error) {
	if err := validateCareers(careers); err != nil {
		return 0, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM careers`); err != nil {
		return 0, fmt.Errorf("failed to clear careers: %w", err)
	}

	batch := &pgx.Batch{}
	for i, c := range careers {
		args, err := careerArgs(c, i)
		if err != nil {
			return 0, fmt.Errorf("failed to encode career %s: %w", c.CareerID, err)
		}
		batch.Queue(`INSERT INTO careers (`+careerColumns+`, position)
			VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8, $9::jsonb, $10)`, args...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("failed to insert careers: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit careers: %w", err)
	}
	return len(careers), nil
}

// SeedMentors replaces the mentor table with the given records.
func (s *PostgresStore) SeedMentors(ctx context.Context, mentors []types.MentorRecord) (int, error) {
	if err := validateMentors(mentors); err != nil {
		return 0, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM mentors`); err != nil {
		return 0, fmt.Errorf("failed to clear mentors: %w", err)
	}

	batch := &pgx.Batch{}
	for i, m := range mentors {
		args, err := mentorArgs(m, i)
		if err != nil {
			return 0, fmt.Errorf("failed to encode mentor %s: %w", m.ID, err)
		}
		batch.Queue(`INSERT INTO mentors (`+mentorColumns+`, position)
			VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9, $10)`, args...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("failed to insert mentors: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit mentors: %w", err)
	}
	return len(mentors), nil
}
