package scene

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/sat"
	"github.com/osuushi/sat/dbg"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y", with each polygon separated
// by an extra newline. Polygons get generated names.
func ReadText(in io.Reader) (*Scene, error) {
	scene := &Scene{}
	scanner := bufio.NewScanner(in)
	points := []sat.Vector{}
	lineNumber := 0

	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		hull := sat.NewHull(points...)
		points = points[:0]
		return scene.Add(dbg.Name(hull), hull)
	}

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if err := flush(); err != nil {
		return nil, err
	}
	return scene, nil
}

func parsePoint(line string) (sat.Vector, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return sat.Vector{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return sat.Vector{}, errors.Wrap(err, "invalid x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return sat.Vector{}, errors.Wrap(err, "invalid y")
	}
	return sat.Vector{X: x, Y: y}, nil
}
