// Package seed reads the initial alive cells of a board from a coordinate list.
//
// Each non-blank line holds one record, "x;y" for 2D boards and "x;y" or
// "x;y;z" for 3D boards (z defaults to 0). Malformed records are logged and
// skipped; a coordinate outside the board aborts the load.
package seed

import (
	"bufio"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-decay/model"
)

// ErrOutOfRange is returned when a record names a cell outside the board.
var ErrOutOfRange = errors.New("seed coordinate out of range")

const separator = ";"

// Load reads the seed file at path.
func Load(path string, variant model.Variant, dims model.Dims, logger *log.Logger) ([]model.Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open seed file: %+v", path)
	}
	defer f.Close()

	alive, err := Parse(f, variant, dims, logger)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to parse seed file: %+v", path)
	}
	return alive, nil
}

// Parse reads seed records from r. logger receives one warning per skipped
// record and may be nil.
func Parse(r io.Reader, variant model.Variant, dims model.Dims, logger *log.Logger) ([]model.Position, error) {
	var (
		alive   []model.Position
		scanner = bufio.NewScanner(r)
		line    = 0
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := parseRecord(text, variant)
		if errors.Is(err, strconv.ErrRange) {
			return nil, errors.Wrapf(ErrOutOfRange, "[Parse] %s on line %d: %v", text, line, err)
		}
		if err != nil {
			if logger != nil {
				logger.Printf("Warning: invalid alive cell position: %s, on line %d: %v", text, line, err)
			}
			continue
		}
		if !dims.Contains(p) {
			return nil, errors.Wrapf(ErrOutOfRange, "[Parse] (%d, %d, %d) on line %d, board is %dx%dx%d",
				p.X, p.Y, p.Z, line, dims.Width, dims.Height, dims.Depth)
		}
		alive = append(alive, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Parse] failed to read seed records")
	}
	return alive, nil
}

func parseRecord(text string, variant model.Variant) (model.Position, error) {
	fields := strings.Split(text, separator)
	switch {
	case len(fields) == 2:
	case len(fields) == 3 && variant == model.Variant3D:
	default:
		return model.Position{}, errors.Errorf("expected %s fields, got %d", fieldCount(variant), len(fields))
	}

	coords := make([]int, 3)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return model.Position{}, errors.Wrapf(err, "field %d", i+1)
		}
		coords[i] = v
	}
	return model.Position{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func fieldCount(variant model.Variant) string {
	if variant == model.Variant3D {
		return "2 or 3"
	}
	return "2"
}
