package aging

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/de-tools/aging-atlas/pkg/models/domain"
	"github.com/de-tools/aging-atlas/pkg/store/workbook"
)

const portfolioScale = 1000

// Build turns every sheet of the current workbook into its monthly series, seeding the
// first month of each product bucket from the legacy balances.
func Build(wb workbook.Workbook, sheets []domain.Sheet, seed domain.LegacySeed) (domain.Dataset, error) {
	dataset := make(domain.Dataset, len(sheets))
	for _, sheet := range sheets {
		grid, err := sheetGrid(wb, string(sheet))
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		dataset[sheet] = BuildSheet(grid, sheet, seed)
	}
	return dataset, nil
}

// sheetGrid reads a sheet, listing the sheets the workbook does have when it is missing.
func sheetGrid(wb workbook.Workbook, name string) (workbook.Grid, error) {
	grid, err := wb.Grid(name)
	if errors.Is(err, workbook.ErrSheetNotFound) {
		names := slices.Clone(wb.SheetNames())
		slices.Sort(names)
		return grid, fmt.Errorf("%w (available: %s)", err, strings.Join(names, ", "))
	}
	return grid, err
}

func BuildSheet(grid workbook.Grid, sheet domain.Sheet, seed domain.LegacySeed) *domain.SheetData {
	months := LocateMonthPeriods(grid)
	products := LocateProductRows(grid, ProductStartRow)

	data := &domain.SheetData{
		Months:   months,
		Years:    distinctYears(months),
		Products: products.Order,
		Series:   make(map[string]map[domain.Bucket][]domain.MonthlyRecord, len(products.Order)),
	}

	for _, product := range products.Order {
		row := products.Rows[product]
		buckets := make(map[domain.Bucket][]domain.MonthlyRecord, len(domain.Buckets))
		for _, bucket := range domain.Buckets {
			start, _ := seed.Balance(sheet, product, bucket)
			buckets[bucket] = buildSeries(grid, row, domain.BucketOffsets[bucket], months, start.Current)
		}
		data.Series[product] = buckets
	}
	return data
}

// buildSeries walks the months in order. Every ratio divides this month's flow by the
// previous month's raw balance; a non-positive previous balance zeroes the ratios.
func buildSeries(grid workbook.Grid, row, offset int, months []domain.MonthPeriod, prevBalance float64) []domain.MonthlyRecord {
	records := make([]domain.MonthlyRecord, 0, len(months))
	for _, period := range months {
		col := period.BaseColumn + offset
		current := SafeNumber(grid.At(row+rowCurrent, col))
		inflow := SafeNumber(grid.At(row+rowInflow, col))
		outflow := SafeNumber(grid.At(row+rowOutflow, col))
		toNext := SafeNumber(grid.At(row+rowToNext, col))

		record := domain.MonthlyRecord{
			Period:    period,
			Portfolio: round2(current / portfolioScale),
		}
		if prevBalance > 0 {
			record.Recovery = percentOf(outflow, prevBalance)
			record.Inflow = percentOf(inflow, prevBalance)
			record.TowardsNPL = percentOf(toNext, prevBalance)
		}
		records = append(records, record)
		prevBalance = current
	}
	return records
}

func percentOf(amount, base float64) float64 {
	return round2(amount / base * 100)
}

// round2 rounds half away from zero to two places; non-finite values read as zero.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func distinctYears(months []domain.MonthPeriod) []int {
	years := make([]int, 0, len(months))
	for _, m := range months {
		years = append(years, m.Year)
	}
	slices.Sort(years)
	return slices.Compact(years)
}
