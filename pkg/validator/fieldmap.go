package validator

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cbodonnell/robocleaner/pkg/game/constants"
	"github.com/cbodonnell/robocleaner/pkg/game/types"
)

//go:embed maps/*.txt
var embeddedMaps embed.FS

// DefaultMapName is the embedded map used when no field map path is configured.
const DefaultMapName = "default"

var (
	ErrEmptyFieldMap   = errors.New("field map is empty")
	ErrRaggedFieldMap  = errors.New("field map rows differ in length")
	ErrUnknownMarker   = errors.New("unknown field map marker")
	ErrMissingStart    = errors.New("field map has no start tile")
	ErrDuplicatedStart = errors.New("field map has more than one start tile")
)

// FieldMap is a rectangular grid of tile markers, indexed [row][col].
type FieldMap struct {
	Tiles [][]byte
	Start types.FieldPos
}

// ParseFieldMap reads one row per line. Blank lines and surrounding whitespace
// are ignored. Only read failures are returned here; the shape of the map is
// checked by Validate.
func ParseFieldMap(r io.Reader) (*FieldMap, error) {
	fm := &FieldMap{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fm.Tiles = append(fm.Tiles, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read field map: %w", err)
	}
	return fm, nil
}

// LoadFieldMap loads a field map from path. An empty path loads the default map.
func LoadFieldMap(path string) (*FieldMap, error) {
	if path == "" {
		return LoadEmbeddedFieldMap(DefaultMapName)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open field map %s: %w", path, err)
	}
	defer f.Close()
	return ParseFieldMap(f)
}

func LoadEmbeddedFieldMap(name string) (*FieldMap, error) {
	data, err := embeddedMaps.ReadFile("maps/" + name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded field map %s: %w", name, err)
	}
	return ParseFieldMap(bytes.NewReader(data))
}

// Validate checks the map shape and records the start tile.
func (fm *FieldMap) Validate() error {
	if len(fm.Tiles) == 0 || len(fm.Tiles[0]) == 0 {
		return ErrEmptyFieldMap
	}

	width := len(fm.Tiles[0])
	starts := 0
	for row, tiles := range fm.Tiles {
		if len(tiles) != width {
			return fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrRaggedFieldMap, row, len(tiles), width)
		}
		for col, marker := range tiles {
			if marker == constants.MarkerStart {
				starts++
				fm.Start = types.FieldPos{Row: int32(row), Col: int32(col)}
				continue
			}
			if marker != constants.MarkerObstacle && !constants.IsPassable(marker) {
				return fmt.Errorf("%w: %q at %s", ErrUnknownMarker, marker, types.FieldPos{Row: int32(row), Col: int32(col)})
			}
		}
	}

	switch {
	case starts == 0:
		return ErrMissingStart
	case starts > 1:
		return ErrDuplicatedStart
	}
	return nil
}

func (fm *FieldMap) Rows() int {
	return len(fm.Tiles)
}

func (fm *FieldMap) Cols() int {
	if len(fm.Tiles) == 0 {
		return 0
	}
	return len(fm.Tiles[0])
}

func (fm *FieldMap) Contains(pos types.FieldPos) bool {
	return pos.Row >= 0 && pos.Col >= 0 && int(pos.Row) < fm.Rows() && int(pos.Col) < fm.Cols()
}

// At returns the marker at pos, or an obstacle outside of the map.
func (fm *FieldMap) At(pos types.FieldPos) byte {
	if !fm.Contains(pos) {
		return constants.MarkerObstacle
	}
	return fm.Tiles[pos.Row][pos.Col]
}

func (fm *FieldMap) set(pos types.FieldPos, marker byte) {
	fm.Tiles[pos.Row][pos.Col] = marker
}

// String renders the map the way it is parsed.
func (fm *FieldMap) String() string {
	var sb strings.Builder
	for _, row := range fm.Tiles {
		sb.Write(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}
