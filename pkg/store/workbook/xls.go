package workbook

import (
	"fmt"

	"github.com/extrame/xls"
)

type xlsWorkbook struct {
	book *xls.WorkBook
}

// OpenXLS reads a legacy BIFF workbook. Cell values arrive as formatted strings.
// Custom date formats are rendered in RFC 3339 and classified back into date cells;
// built-in date formats come out as "2006.01" and are read as numbers.
func OpenXLS(path string) (Workbook, error) {
	book, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("failed to open xls %s: %w", path, err)
	}
	return &xlsWorkbook{book: book}, nil
}

func (w *xlsWorkbook) SheetNames() []string {
	names := make([]string, 0, w.book.NumSheets())
	for i := 0; i < w.book.NumSheets(); i++ {
		if sheet := w.book.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	return names
}

func (w *xlsWorkbook) Close() error { return nil }

func (w *xlsWorkbook) Grid(name string) (Grid, error) {
	var sheet *xls.WorkSheet
	for i := 0; i < w.book.NumSheets(); i++ {
		if s := w.book.GetSheet(i); s != nil && s.Name == name {
			sheet = s
			break
		}
	}
	if sheet == nil {
		return Grid{}, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}

	cells := make([][]Cell, int(sheet.MaxRow)+1)
	for r := 0; r <= int(sheet.MaxRow); r++ {
		row := sheetRow(sheet, r)
		if row == nil {
			continue
		}
		cells[r] = rowCells(row)
	}
	return NewGrid(cells), nil
}

// BIFF8 sheets hold at most 256 columns.
const maxXLSColumns = 256

// rowCells reads one row. Rows created from cell records alone carry no ROW
// bounds, so those are scanned across the full width and trimmed.
func rowCells(row *xls.Row) []Cell {
	first, last := row.FirstCol(), row.LastCol()
	bounded := last > first
	if !bounded {
		first, last = 0, maxXLSColumns
	}
	cells := make([]Cell, last)
	width := 0
	for c := first; c < last; c++ {
		cells[c] = classify(row.Col(c))
		if !cells[c].IsEmpty() {
			width = c + 1
		}
	}
	if !bounded {
		return cells[:width]
	}
	return cells
}
