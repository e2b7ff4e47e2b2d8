// Package cityio reads and writes city files.
//
// Format: one city per line, "<id> <x> <y>", fields separated by any run of
// whitespace. Surrounding whitespace is trimmed and empty lines are skipped.
// A line with the wrong number of fields, an unparsable number or a
// non-finite coordinate is skipped with a warning; it never aborts the read.
package cityio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/salesman/tsp"
)

// ErrFileNotFound indicates the city file does not exist.
var ErrFileNotFound = errors.New("cityio: file not found")

// ReadFile opens path and reads cities from it.
func ReadFile(path string, log zerolog.Logger) ([]tsp.City, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("cityio: open %s: %w", path, err)
	}
	defer f.Close()

	cities, err := ReadCities(f, log.With().Str("file", path).Logger())
	if err != nil {
		return nil, fmt.Errorf("cityio: read %s: %w", path, err)
	}

	return cities, nil
}

// ReadCities parses cities from r in file order. Malformed lines are logged
// at warn level with the line number, the raw text and the reason. Only
// errors from r itself are returned.
func ReadCities(r io.Reader, log zerolog.Logger) ([]tsp.City, error) {
	var (
		cities  = make([]tsp.City, 0, 64)
		sc      = bufio.NewScanner(r)
		lineNo  int
		line    string
		city    tsp.City
		skipped int
		err     error
	)
	for sc.Scan() {
		lineNo++
		line = strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if city, err = parseLine(line); err != nil {
			skipped++
			log.Warn().Int("line_no", lineNo).Str("line", line).Str("reason", err.Error()).Msg("skipping malformed city line")
			continue
		}
		cities = append(cities, city)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	log.Debug().Int("cities", len(cities)).Int("skipped", skipped).Msg("cities loaded")

	return cities, nil
}

// parseLine decodes one trimmed, non-empty line.
func parseLine(line string) (tsp.City, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return tsp.City{}, fmt.Errorf("invalid line format: want 3 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return tsp.City{}, fmt.Errorf("invalid number format: %v", err)
	}
	x, err := parseCoord(parts[1])
	if err != nil {
		return tsp.City{}, err
	}
	y, err := parseCoord(parts[2])
	if err != nil {
		return tsp.City{}, err
	}

	return tsp.NewCity(id, x, y), nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number format: %v", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite coordinate %q", s)
	}

	return v, nil
}

// WriteCities writes cities in the format ReadCities accepts.
func WriteCities(w io.Writer, cities []tsp.City) error {
	bw := bufio.NewWriter(w)
	var i int
	for i = range cities {
		if _, err := fmt.Fprintf(bw, "%d %s %s\n", cities[i].ID,
			strconv.FormatFloat(cities[i].X, 'g', -1, 64),
			strconv.FormatFloat(cities[i].Y, 'g', -1, 64)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
