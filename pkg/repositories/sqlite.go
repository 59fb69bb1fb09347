package repositories

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"

	gametypes "github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations
var migrations embed.FS

type SQLiteRepository struct {
	db   *sql.DB
	slot string
}

type NewSQLiteRepositoryOptions struct {
	Path string
	// Slot selects the save row; DefaultSlot when empty
	Slot string
}

func NewSQLiteRepository(ctx context.Context, opts NewSQLiteRepositoryOptions) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", opts.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = runMigrations("migrations/sqlite", func(name, migration string) error {
		_, err := db.ExecContext(ctx, migration)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	slot := opts.Slot
	if slot == "" {
		slot = DefaultSlot
	}
	return &SQLiteRepository{
		db:   db,
		slot: slot,
	}, nil
}

// runMigrations applies every embedded migration in dir in name order.
func runMigrations(dir string, exec func(name, migration string) error) error {
	entries, err := fs.ReadDir(migrations, dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		migrationPath := path.Join(dir, entry.Name())
		migration, err := fs.ReadFile(migrations, migrationPath)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", migrationPath, err)
		}

		if err := exec(entry.Name(), string(migration)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", migrationPath, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveGame(ctx context.Context, save *gametypes.SaveGame) error {
	worldBytes, playerBytes, err := encodeSave(save)
	if err != nil {
		return err
	}
	sessionID := save.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	savedAt := save.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	q := `
	INSERT OR REPLACE INTO saves (slot, session_id, saved_at, world, player)
	VALUES (?, ?, ?, ?, ?);
	`
	_, err = r.db.ExecContext(ctx, q, r.slot, sessionID, savedAt.UnixMilli(), worldBytes, playerBytes)
	if err != nil {
		return fmt.Errorf("failed to insert save: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadGame(ctx context.Context) (*gametypes.SaveGame, error) {
	q := `
	SELECT session_id, saved_at, world, player FROM saves WHERE slot = ?;
	`
	var sessionID string
	var savedAt int64
	var worldBytes, playerBytes []byte
	if err := r.db.QueryRowContext(ctx, q, r.slot).Scan(&sessionID, &savedAt, &worldBytes, &playerBytes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{Slot: r.slot}
		}
		return nil, fmt.Errorf("failed to scan save: %w", err)
	}

	save, err := decodeSave(worldBytes, playerBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to load save from slot %s: %w", r.slot, err)
	}
	save.SessionID = sessionID
	save.SavedAt = time.UnixMilli(savedAt)
	return save, nil
}
