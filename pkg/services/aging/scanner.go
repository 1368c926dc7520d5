package aging

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/de-tools/aging-atlas/pkg/models/domain"
	"github.com/de-tools/aging-atlas/pkg/store/workbook"
)

const (
	headerDateRow   = 0
	headerBucketRow = 1
	labelColumn     = 0

	// ProductStartRow is the first row that may hold a product label in a current sheet.
	ProductStartRow = 2

	monthLabelLayout = "Jan 06"
)

// Rows of a product block, relative to its label row.
const (
	rowCurrent = 1
	rowInflow  = 2
	rowOutflow = 3
	rowToNext  = 4
)

// reservedLabels are the metric captions inside a product block, never product names.
var reservedLabels = map[string]struct{}{
	"Current":      {},
	"Inflow":       {},
	"Outflow":      {},
	"30-90 to 90+": {},
	"nan":          {},
	"":             {},
}

// ProductRows maps product labels to their label row, keeping first-seen order.
type ProductRows struct {
	Order []string
	Rows  map[string]int
}

// LocateMonthPeriods finds every month block by its anchor bucket marker in the bucket row
// and the date above it, in chronological order. Markers without a date cell above are skipped.
func LocateMonthPeriods(grid workbook.Grid) []domain.MonthPeriod {
	var months []domain.MonthPeriod
	for col := 0; col < grid.Width(); col++ {
		if grid.At(headerBucketRow, col).String() != string(domain.AnchorBucket) {
			continue
		}
		header := grid.At(headerDateRow, col)
		if !header.IsDate() {
			continue
		}
		months = append(months, domain.MonthPeriod{
			Label:      header.Time.Format(monthLabelLayout),
			Year:       header.Time.Year(),
			Month:      int(header.Time.Month()),
			BaseColumn: col + 1,
		})
	}
	slices.SortStableFunc(months, func(a, b domain.MonthPeriod) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})
	return months
}

// LocateProductRows scans the label column from startRow. A duplicated label points at
// its last row.
func LocateProductRows(grid workbook.Grid, startRow int) ProductRows {
	products := ProductRows{Rows: make(map[string]int)}
	for row := max(startRow, 0); row < grid.Height(); row++ {
		label := grid.At(row, labelColumn).String()
		if !IsProductLabel(label) {
			continue
		}
		if _, seen := products.Rows[label]; !seen {
			products.Order = append(products.Order, label)
		}
		products.Rows[label] = row
	}
	return products
}

// IsProductLabel reports whether a trimmed label names a product.
func IsProductLabel(label string) bool {
	_, reserved := reservedLabels[label]
	return !reserved
}

type DefaultReason string

const (
	ReasonEmpty      DefaultReason = "empty"
	ReasonDash       DefaultReason = "dash"
	ReasonNotNumeric DefaultReason = "not numeric"
)

// NumberResult is a cell read as a number. Defaulted results carry Value 0.
type NumberResult struct {
	Value     float64
	Defaulted bool
	Reason    DefaultReason
}

// ParseNumber reads a cell as a number and says why it fell back to zero, if it did.
func ParseNumber(cell workbook.Cell) NumberResult {
	switch cell.Kind {
	case workbook.CellEmpty:
		return NumberResult{Defaulted: true, Reason: ReasonEmpty}
	case workbook.CellNumber:
		return finite(cell.Number)
	case workbook.CellText:
		s := strings.TrimSpace(cell.Text)
		switch s {
		case "":
			return NumberResult{Defaulted: true, Reason: ReasonEmpty}
		case "-":
			return NumberResult{Defaulted: true, Reason: ReasonDash}
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return NumberResult{Defaulted: true, Reason: ReasonNotNumeric}
		}
		return finite(v)
	default:
		return NumberResult{Defaulted: true, Reason: ReasonNotNumeric}
	}
}

func finite(v float64) NumberResult {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NumberResult{Defaulted: true, Reason: ReasonNotNumeric}
	}
	return NumberResult{Value: v}
}

// SafeNumber is the single normalization point for numeric cell reads.
func SafeNumber(cell workbook.Cell) float64 {
	return ParseNumber(cell).Value
}
