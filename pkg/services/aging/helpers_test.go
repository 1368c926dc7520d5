package aging

import (
	"fmt"
	"time"

	"github.com/de-tools/aging-atlas/pkg/models/domain"
	"github.com/de-tools/aging-atlas/pkg/store/workbook"
)

type fakeWorkbook map[string]workbook.Grid

func (f fakeWorkbook) SheetNames() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	return names
}

func (f fakeWorkbook) Grid(name string) (workbook.Grid, error) {
	g, ok := f[name]
	if !ok {
		return workbook.Grid{}, fmt.Errorf("%w: %s", workbook.ErrSheetNotFound, name)
	}
	return g, nil
}

func (f fakeWorkbook) Close() error { return nil }

// sparse builds a row of the given width with cells only at the listed columns.
func sparse(width int, cells map[int]workbook.Cell) []workbook.Cell {
	row := make([]workbook.Cell, width)
	for col, c := range cells {
		row[col] = c
	}
	return row
}

func day(year int, month time.Month, d int) workbook.Cell {
	return workbook.Date(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
}

// retailGrid is a two-month sheet with a single product:
// Jan 24 (current=100, inflow=10, outflow=5, to90=2) and Feb 24 (90, 8, 4, 1).
func retailGrid() workbook.Grid {
	const width = 22
	n := workbook.Number
	return workbook.NewGrid([][]workbook.Cell{
		sparse(width, map[int]workbook.Cell{1: day(2024, time.January, 31), 11: day(2024, time.February, 29)}),
		sparse(width, map[int]workbook.Cell{1: workbook.Text("1-5"), 7: workbook.Text("30-90"), 9: workbook.Text("90+"), 11: workbook.Text("1-5")}),
		sparse(width, map[int]workbook.Cell{0: workbook.Text("Retail")}),
		sparse(width, map[int]workbook.Cell{0: workbook.Text("Current"), 2: n(100), 12: n(90)}),
		sparse(width, map[int]workbook.Cell{0: workbook.Text("Inflow"), 2: n(10), 12: n(8)}),
		sparse(width, map[int]workbook.Cell{0: workbook.Text("Outflow"), 2: n(5), 12: n(4)}),
		sparse(width, map[int]workbook.Cell{0: workbook.Text("30-90 to 90+"), 2: n(2), 12: n(1)}),
	})
}

func retailSeed(current float64) domain.LegacySeed {
	return domain.LegacySeed{
		domain.SheetPSD: {
			"Retail": {
				domain.Bucket1To5:   {Current: current},
				domain.Bucket30To90: {},
				domain.Bucket90Plus: {},
			},
		},
	}
}
