package workbook

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var (
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrUnsupportedFormat = errors.New("unsupported workbook format")
)

// Workbook is a read-only view over a spreadsheet file.
type Workbook interface {
	SheetNames() []string
	Grid(sheet string) (Grid, error)
	Close() error
}

// Open picks a reader based on the file extension.
func Open(path string) (Workbook, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return OpenXLSX(path)
	case ".xls":
		return OpenXLS(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateTime,
	time.DateOnly,
}

// parseDate recognizes ISO-like date strings written by spreadsheet tools.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// classify turns a raw string value into a typed cell. Spellings ParseFloat
// accepts beyond plain decimals (nan, inf, hex) stay text.
func classify(raw string) Cell {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Empty()
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && isPlainNumber(s, v) {
		return Number(v)
	}
	if t, ok := parseDate(s); ok {
		return Date(t)
	}
	return Text(raw)
}

func isPlainNumber(s string, v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return !strings.ContainsAny(s, "xX_")
}
