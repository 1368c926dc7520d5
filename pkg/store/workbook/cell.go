package workbook

import (
	"strconv"
	"strings"
	"time"
)

type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
	CellDate
)

// Cell is a single typed spreadsheet value.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
	Time   time.Time
}

func Empty() Cell             { return Cell{} }
func Number(v float64) Cell   { return Cell{Kind: CellNumber, Number: v} }
func Text(s string) Cell      { return Cell{Kind: CellText, Text: s} }
func Date(t time.Time) Cell   { return Cell{Kind: CellDate, Time: t} }
func (c Cell) IsEmpty() bool  { return c.Kind == CellEmpty }
func (c Cell) IsDate() bool   { return c.Kind == CellDate }
func (c Cell) IsNumber() bool { return c.Kind == CellNumber }

// String returns the trimmed textual form of the cell.
func (c Cell) String() string {
	switch c.Kind {
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case CellText:
		return strings.TrimSpace(c.Text)
	case CellDate:
		return c.Time.Format(time.DateTime)
	default:
		return ""
	}
}

// Grid is a row-major sheet. Rows may be ragged; the frame is Height x Width.
type Grid struct {
	rows  [][]Cell
	width int
}

func NewGrid(rows [][]Cell) Grid {
	width := 0
	for _, r := range rows {
		if len(r) > width {
			width = len(r)
		}
	}
	return Grid{rows: rows, width: width}
}

func (g Grid) Height() int { return len(g.rows) }
func (g Grid) Width() int  { return g.width }

// Has reports whether (row, col) lies inside the rectangular frame of the sheet.
func (g Grid) Has(row, col int) bool {
	return row >= 0 && col >= 0 && row < len(g.rows) && col < g.width
}

// At returns the cell at (row, col), or an empty cell when it was never populated.
func (g Grid) At(row, col int) Cell {
	if row < 0 || col < 0 || row >= len(g.rows) {
		return Cell{}
	}
	r := g.rows[row]
	if col >= len(r) {
		return Cell{}
	}
	return r[col]
}
