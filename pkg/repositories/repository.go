package repositories

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/cbodonnell/robocleaner/pkg/repositories/models"
)

//go:embed migrations
var migrations embed.FS

type Repository interface {
	Close(ctx context.Context) error
	SaveSession(ctx context.Context, session *models.Session) error
	LoadSession(ctx context.Context, id string) (*models.Session, error)
	// ListSessions returns the most recently finished sessions first.
	ListSessions(ctx context.Context, limit int) ([]*models.Session, error)
}

// NewRepository opens the repository for a database URL:
// sqlite://<path> (or sqlite://:memory:) and postgres(ql)://...
func NewRepository(ctx context.Context, databaseURL string) (Repository, error) {
	switch {
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return NewSQLiteRepository(ctx, strings.TrimPrefix(databaseURL, "sqlite://"))
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return NewPostgresRepository(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database url: %q", databaseURL)
	}
}

// readMigrations returns the migrations of a dialect in file name order.
func readMigrations(dialect string) ([]string, error) {
	dir := "migrations/" + dialect
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	statements := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		migration, err := fs.ReadFile(migrations, dir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", entry.Name(), err)
		}
		statements = append(statements, string(migration))
	}
	return statements, nil
}
