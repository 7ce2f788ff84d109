// Package dataset loads the precomputed opening statistics table.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/vytor/chessdash/internal/models"
)

// Column names of the opening statistics table.
const (
	ColOpening            = "Opening"
	ColEffectivenessWhite = "EffectivenessWhite"
	ColEffectivenessBlack = "EffectivenessBlack"
	ColAggressivity       = "Aggressivity"
	ColVolatility         = "Volatility"
	ColPopularity         = "Popularity"
)

// RequiredColumns lists every column the table must provide.
var RequiredColumns = []string{
	ColOpening,
	ColEffectivenessWhite,
	ColEffectivenessBlack,
	ColAggressivity,
	ColVolatility,
	ColPopularity,
}

// LoadOpenings reads the opening table from a CSV file.
func LoadOpenings(path string) ([]models.OpeningRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open openings table: %w", err)
	}
	defer f.Close()

	openings, err := ReadOpenings(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return openings, nil
}

// ReadOpenings parses CSV with a header row. Columns may come in any order and
// unknown columns are ignored. Rows keep their file order.
func ReadOpenings(r io.Reader) ([]models.OpeningRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("openings table is empty: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	openings := []models.OpeningRecord{}
	seen := make(map[string]int)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		name := strings.TrimSpace(row[index[ColOpening]])
		if name == "" {
			return nil, fmt.Errorf("row %d: empty %s", line, ColOpening)
		}
		if prev, dup := seen[name]; dup {
			return nil, fmt.Errorf("row %d: duplicate opening %q (first seen on row %d)", line, name, prev)
		}
		seen[name] = line

		rec := models.OpeningRecord{Name: name}
		fields := []struct {
			col string
			dst *float64
		}{
			{ColEffectivenessWhite, &rec.EffectivenessWhite},
			{ColEffectivenessBlack, &rec.EffectivenessBlack},
			{ColAggressivity, &rec.Aggressivity},
			{ColVolatility, &rec.Volatility},
			{ColPopularity, &rec.Popularity},
		}
		for _, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[index[f.col]]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: column %s: %w", line, f.col, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d: column %s: value %v is not finite", line, f.col, v)
			}
			*f.dst = v
		}
		openings = append(openings, rec)
	}
	return openings, nil
}
