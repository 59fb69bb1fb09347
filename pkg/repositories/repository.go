package repositories

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	gametypes "github.com/cbodonnell/greatescape/pkg/game/types"
)

// DefaultSlot is the save slot used when none is configured.
const DefaultSlot = "default"

// Repository stores one save per slot: the world artifact and the
// player artifact. Loading fails as a whole when either is unreadable.
type Repository interface {
	Close(ctx context.Context) error
	SaveGame(ctx context.Context, save *gametypes.SaveGame) error
	LoadGame(ctx context.Context) (*gametypes.SaveGame, error)
}

var schemes = []string{"file", "file+zstd", "sqlite", "postgres", "postgresql"}

// SupportsScheme reports whether Open accepts URLs with scheme.
func SupportsScheme(scheme string) bool {
	return slices.Contains(schemes, scheme)
}

// Open creates a repository from a URL. Supported schemes are
// file://<dir>, file+zstd://<dir>, sqlite://<path> and
// postgres(ql)://<connection string>.
func Open(ctx context.Context, rawURL string) (Repository, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse save url: %w", err)
	}
	location := strings.TrimPrefix(rawURL, u.Scheme+"://")

	var repository Repository
	switch u.Scheme {
	case "file", "file+zstd":
		repository, err = NewFileRepository(NewFileRepositoryOptions{
			Dir:      location,
			Compress: u.Scheme == "file+zstd",
		})
	case "sqlite":
		repository, err = NewSQLiteRepository(ctx, NewSQLiteRepositoryOptions{Path: location})
	case "postgres", "postgresql":
		repository, err = NewPostgresRepository(ctx, NewPostgresRepositoryOptions{ConnString: rawURL})
	default:
		return nil, fmt.Errorf("unknown save store type %q", u.Scheme)
	}
	if err != nil {
		return nil, err
	}
	return repository, nil
}
