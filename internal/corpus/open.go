package corpus

import (
	"context"
	"fmt"
	"strings"
)

// Store kinds accepted by Open.
const (
	KindFile     = "file"
	KindPostgres = "postgres"
	KindSQLite   = "sqlite"
)

// Config selects and locates a corpus store.
type Config struct {
	Kind        string `json:"kind"`
	CareersPath string `json:"careers_path,omitempty"`
	MentorsPath string `json:"mentors_path,omitempty"`
	DatabaseURL string `json:"-"`
	SQLitePath  string `json:"sqlite_path,omitempty"`
}

// Open creates the store named by cfg.Kind. Database stores are migrated
// before they are returned.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", KindFile:
		return NewFileStore(cfg.CareersPath, cfg.MentorsPath), nil
	case KindPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres store")
		}
		store, err := ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return migrated(ctx, store)
	case KindSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite path is required for the sqlite store")
		}
		store, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return migrated(ctx, store)
	default:
		return nil, fmt.Errorf("unknown corpus store kind %q (expected file, postgres or sqlite)", cfg.Kind)
	}
}

func migrated(ctx context.Context, store Seeder) (Store, error) {
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}
