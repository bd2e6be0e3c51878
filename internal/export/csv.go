// Package export writes emission results as downloadable files.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rshade/footprint/internal/footprint"
)

// CSV column headers and the label of the trailing total row. Downstream
// consumers match on these strings.
const (
	HeaderCategory  = "Category"
	HeaderEmissions = "Emissions (kg CO₂)"
	TotalLabel      = "TOTAL"
)

// csvColumns is the number of columns in the export.
const csvColumns = 2

// ErrMalformedCSV indicates a CSV that does not have the export shape.
var ErrMalformedCSV = errors.New("malformed emissions csv")

// WriteCSV writes one row per category in display order followed by a TOTAL
// row. Values use the shortest representation that parses back exactly.
func WriteCSV(w io.Writer, result footprint.EmissionsResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{HeaderCategory, HeaderEmissions}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, c := range result.Categories {
		if err := cw.Write([]string{c.Name, fmtFloat(c.KgCO2)}); err != nil {
			return fmt.Errorf("writing %s row: %w", c.Name, err)
		}
	}
	if err := cw.Write([]string{TotalLabel, fmtFloat(result.TotalKg)}); err != nil {
		return fmt.Errorf("writing total row: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the export to path, creating or truncating it.
func WriteCSVFile(path string, result footprint.EmissionsResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}

	if err := WriteCSV(f, result); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadCSV parses an export produced by WriteCSV. Categories must appear in
// display order and the last row must be TOTAL.
func ReadCSV(r io.Reader) (footprint.EmissionsResult, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return footprint.EmissionsResult{}, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}

	categories := footprint.Categories()
	// header + categories + total
	if len(records) != len(categories)+2 {
		return footprint.EmissionsResult{}, fmt.Errorf("%w: expected %d rows, got %d",
			ErrMalformedCSV, len(categories)+2, len(records))
	}
	if err := checkHeader(records[0]); err != nil {
		return footprint.EmissionsResult{}, err
	}

	result := footprint.EmissionsResult{
		Categories: make([]footprint.CategoryEmission, 0, len(categories)),
	}
	for i, c := range categories {
		row := records[i+1]
		if row[0] != c.String() {
			return footprint.EmissionsResult{}, fmt.Errorf("%w: row %d is %q, expected %q",
				ErrMalformedCSV, i+1, row[0], c.String())
		}
		kg, parseErr := parseFloat(row[1])
		if parseErr != nil {
			return footprint.EmissionsResult{}, parseErr
		}
		result.Categories = append(result.Categories, footprint.CategoryEmission{
			Category: c,
			Name:     c.String(),
			KgCO2:    kg,
		})
	}

	last := records[len(records)-1]
	if last[0] != TotalLabel {
		return footprint.EmissionsResult{}, fmt.Errorf("%w: last row is %q, expected %q",
			ErrMalformedCSV, last[0], TotalLabel)
	}
	total, err := parseFloat(last[1])
	if err != nil {
		return footprint.EmissionsResult{}, err
	}
	result.TotalKg = total

	return result, nil
}

func checkHeader(row []string) error {
	if len(row) != csvColumns ||
		strings.TrimPrefix(row[0], "\ufeff") != HeaderCategory ||
		row[1] != HeaderEmissions {
		return fmt.Errorf("%w: unexpected header %q", ErrMalformedCSV, row)
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: non-finite value %q", ErrMalformedCSV, s)
	}
	return v, nil
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
