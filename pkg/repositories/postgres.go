package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gametypes "github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/cbodonnell/greatescape/pkg/log"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	// mu guards conn, which is not safe for concurrent use
	mu   sync.Mutex
	conn *pgx.Conn
	slot string
}

type NewPostgresRepositoryOptions struct {
	ConnString string
	// Slot selects the save row; DefaultSlot when empty
	Slot string
}

// NewPostgresRepository connects to the database and applies migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, opts NewPostgresRepositoryOptions) (*PostgresRepository, error) {
	conn, err := connectDb(ctx, opts.ConnString)
	if err != nil {
		return nil, err
	}

	err = runMigrations("migrations/postgres", func(name, migration string) error {
		_, err := conn.Exec(ctx, migration)
		return err
	})
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}

	slot := opts.Slot
	if slot == "" {
		slot = DefaultSlot
	}
	return &PostgresRepository{
		conn: conn,
		slot: slot,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %w", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveGame(ctx context.Context, save *gametypes.SaveGame) error {
	worldBytes, playerBytes, err := encodeSave(save)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(save.SessionID)
	if err != nil {
		sessionID = uuid.New()
	}
	savedAt := save.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	q := `
	INSERT INTO saves (slot, session_id, saved_at, world, player)
	VALUES ($1, $2::text::uuid, $3, $4::text::jsonb, $5::text::jsonb)
	ON CONFLICT (slot) DO UPDATE SET session_id = EXCLUDED.session_id, saved_at = EXCLUDED.saved_at,
		world = EXCLUDED.world, player = EXCLUDED.player;
	`
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err = r.conn.Exec(ctx, q, r.slot, sessionID.String(), savedAt.UnixMilli(), string(worldBytes), string(playerBytes))
	if err != nil {
		return fmt.Errorf("failed to insert save: %w", err)
	}

	return nil
}

func (r *PostgresRepository) LoadGame(ctx context.Context) (*gametypes.SaveGame, error) {
	q := `
	SELECT session_id::text, saved_at, world::text, player::text FROM saves WHERE slot = $1;
	`
	var sessionID string
	var savedAt int64
	var worldText, playerText string
	r.mu.Lock()
	err := r.conn.QueryRow(ctx, q, r.slot).Scan(&sessionID, &savedAt, &worldText, &playerText)
	r.mu.Unlock()
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{Slot: r.slot}
		}
		return nil, fmt.Errorf("failed to scan save: %w", err)
	}

	save, err := decodeSave([]byte(worldText), []byte(playerText))
	if err != nil {
		return nil, fmt.Errorf("failed to load save from slot %s: %w", r.slot, err)
	}
	save.SessionID = sessionID
	save.SavedAt = time.UnixMilli(savedAt)
	return save, nil
}
