package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbodonnell/greatescape/pkg/game/constants"
	"github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/cbodonnell/greatescape/pkg/log"
	"gopkg.in/yaml.v3"
)

// Extensions are tried in this order when looking for a level file.
var Extensions = []string{".json", ".yaml", ".yml"}

// LoadWorld reads the named levels from dir and validates them as a
// whole. Any unreadable or invalid level fails the load.
func LoadWorld(dir string, names []string) (types.World, error) {
	world := make(types.World, len(names))
	for _, name := range names {
		path, err := Find(dir, name)
		if err != nil {
			return nil, err
		}
		level, err := LoadLevel(path)
		if err != nil {
			return nil, err
		}
		world[name] = level
		log.Debug("Loaded level %s from %s with %d tiles", name, path, len(level.Tiles))
	}

	if err := Validate(world, names); err != nil {
		return nil, fmt.Errorf("invalid levels in %s: %w", dir, err)
	}
	return world, nil
}

// LoadDefaultWorld reads the four levels of the game from dir.
func LoadDefaultWorld(dir string) (types.World, error) {
	return LoadWorld(dir, constants.LevelOrder)
}

// Find returns the path of the definition file for level name.
func Find(dir, name string) (string, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
	}
	return "", fmt.Errorf("no definition for level %s in %s", name, dir)
}

// LoadLevel reads one level definition. The format follows the file
// extension: JSON for .json, YAML for .yaml and .yml.
func LoadLevel(path string) (*types.LevelData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}
	level, err := Parse(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse level file %s: %w", path, err)
	}
	return level, nil
}

// Parse decodes a level definition in the format named by ext.
func Parse(b []byte, ext string) (*types.LevelData, error) {
	level := &types.LevelData{}
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(b, level); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, level); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported level format %q", ext)
	}
	if level.Tiles == nil {
		level.Tiles = make(map[string]*types.TileItem)
	}
	level.Normalize()
	return level, nil
}
