package repositories

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	gametypes "github.com/cbodonnell/greatescape/pkg/game/types"
	"github.com/klauspost/compress/zstd"
)

// EncodeWorld serializes the full level mapping, the first save artifact.
func EncodeWorld(world gametypes.World) ([]byte, error) {
	b, err := json.MarshalIndent(world, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal world: %w", err)
	}
	return b, nil
}

// DecodeWorld parses a world artifact. Tile capability and state are
// filled in for older saves that only carried sprite names.
func DecodeWorld(b []byte) (gametypes.World, error) {
	world := gametypes.World{}
	if err := json.Unmarshal(b, &world); err != nil {
		return nil, fmt.Errorf("failed to unmarshal world: %w", err)
	}
	if len(world) == 0 {
		return nil, fmt.Errorf("world has no levels")
	}
	for name, level := range world {
		if level == nil {
			return nil, fmt.Errorf("level %s is empty", name)
		}
		if level.Tiles == nil {
			level.Tiles = make(map[string]*gametypes.TileItem)
		}
		for key, item := range level.Tiles {
			if item == nil {
				return nil, fmt.Errorf("tile %s in level %s is empty", key, name)
			}
		}
	}
	world.Normalize()
	return world, nil
}

// EncodeSavePoint serializes the player artifact.
func EncodeSavePoint(point gametypes.SavePoint) ([]byte, error) {
	b, err := json.MarshalIndent(point, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal save point: %w", err)
	}
	return b, nil
}

func DecodeSavePoint(b []byte) (gametypes.SavePoint, error) {
	point := gametypes.SavePoint{}
	if err := json.Unmarshal(b, &point); err != nil {
		return point, fmt.Errorf("failed to unmarshal save point: %w", err)
	}
	if point.ActiveLevel == "" {
		return point, fmt.Errorf("save point has no active level")
	}
	return point, nil
}

// decodeSave parses both artifacts and checks that they agree.
func decodeSave(worldBytes, playerBytes []byte) (*gametypes.SaveGame, error) {
	world, err := DecodeWorld(worldBytes)
	if err != nil {
		return nil, err
	}
	point, err := DecodeSavePoint(playerBytes)
	if err != nil {
		return nil, err
	}
	if _, ok := world[point.ActiveLevel]; !ok {
		return nil, fmt.Errorf("saved level %s is not in the saved world", point.ActiveLevel)
	}
	return &gametypes.SaveGame{
		World:     world,
		SavePoint: point,
	}, nil
}

func encodeSave(save *gametypes.SaveGame) (worldBytes, playerBytes []byte, err error) {
	if save == nil {
		return nil, nil, fmt.Errorf("save is nil")
	}
	worldBytes, err = EncodeWorld(save.World)
	if err != nil {
		return nil, nil, err
	}
	playerBytes, err = EncodeSavePoint(save.SavePoint)
	if err != nil {
		return nil, nil, err
	}
	return worldBytes, playerBytes, nil
}

func compress(b []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress artifact: %w", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return compressed.Bytes(), nil
}

func decompress(b []byte) ([]byte, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer compReader.Close()
	out, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress artifact: %w", err)
	}
	return out, nil
}
