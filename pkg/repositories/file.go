package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	gametypes "github.com/cbodonnell/greatescape/pkg/game/types"
)

const (
	// WorldFileName holds the level mapping
	WorldFileName = "saveGame.json"
	// PlayerFileName holds the save point
	PlayerFileName = "saveGamePlayer.json"

	compressedSuffix = ".zst"
)

// FileRepository keeps the two save artifacts as files in a directory.
type FileRepository struct {
	dir      string
	compress bool
	// mu keeps the two artifacts of one save together
	mu sync.Mutex
}

type NewFileRepositoryOptions struct {
	// Dir is created if it does not exist
	Dir string
	// Compress writes zstd compressed artifacts with a .zst suffix
	Compress bool
}

func NewFileRepository(opts NewFileRepositoryOptions) (*FileRepository, error) {
	if opts.Dir == "" {
		return nil, fmt.Errorf("save directory is required")
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileRepository{
		dir:      opts.Dir,
		compress: opts.Compress,
	}, nil
}

func (r *FileRepository) Close(ctx context.Context) error {
	return nil
}

// WorldPath returns the location of the world artifact.
func (r *FileRepository) WorldPath() string {
	return r.path(WorldFileName)
}

// PlayerPath returns the location of the player artifact.
func (r *FileRepository) PlayerPath() string {
	return r.path(PlayerFileName)
}

func (r *FileRepository) path(name string) string {
	if r.compress {
		name += compressedSuffix
	}
	return filepath.Join(r.dir, name)
}

// SaveGame writes the world artifact and then the player artifact.
// A failure on the second write leaves the first one in place.
func (r *FileRepository) SaveGame(ctx context.Context, save *gametypes.SaveGame) error {
	worldBytes, playerBytes, err := encodeSave(save)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.writeArtifact(r.WorldPath(), worldBytes); err != nil {
		return fmt.Errorf("failed to write world: %w", err)
	}
	if err := r.writeArtifact(r.PlayerPath(), playerBytes); err != nil {
		return fmt.Errorf("failed to write save point: %w", err)
	}
	return nil
}

func (r *FileRepository) LoadGame(ctx context.Context) (*gametypes.SaveGame, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	worldBytes, err := r.readArtifact(r.WorldPath())
	if err != nil {
		return nil, err
	}
	playerBytes, err := r.readArtifact(r.PlayerPath())
	if err != nil {
		return nil, err
	}

	save, err := decodeSave(worldBytes, playerBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to load save from %s: %w", r.dir, err)
	}
	if info, err := os.Stat(r.PlayerPath()); err == nil {
		save.SavedAt = info.ModTime()
	}
	return save, nil
}

// writeArtifact replaces path through a temporary file so a crash
// mid-write never leaves a truncated artifact behind.
func (r *FileRepository) writeArtifact(path string, b []byte) error {
	if r.compress {
		compressed, err := compress(b)
		if err != nil {
			return err
		}
		b = compressed
	}

	tmp, err := os.CreateTemp(r.dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func (r *FileRepository) readArtifact(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrNotFound{Slot: r.dir}
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if r.compress {
		return decompress(b)
	}
	return b, nil
}
