package aging

import (
	"fmt"

	"github.com/de-tools/aging-atlas/pkg/models/domain"
	"github.com/de-tools/aging-atlas/pkg/store/workbook"
)

const legacyAmountColumn = 2

// LoadLegacySeed reads the starting balances of every sheet from the legacy workbook.
// Only the anchor bucket carries data; the others are seeded with zero.
func LoadLegacySeed(wb workbook.Workbook, sheets []domain.Sheet) (domain.LegacySeed, error) {
	seed := make(domain.LegacySeed, len(sheets))
	for _, sheet := range sheets {
		name, ok := domain.LegacySheetNames[sheet]
		if !ok {
			name = string(sheet)
		}
		grid, err := sheetGrid(wb, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read legacy sheet %s: %w", name, err)
		}
		seed[sheet] = legacySheetSeed(grid)
	}
	return seed, nil
}

func legacySheetSeed(grid workbook.Grid) map[string]map[domain.Bucket]domain.SeedBalance {
	products := make(map[string]map[domain.Bucket]domain.SeedBalance)
	for row := 0; row < grid.Height(); row++ {
		label := grid.At(row, labelColumn).String()
		if !IsProductLabel(label) {
			continue
		}
		if !grid.Has(row+rowCurrent, legacyAmountColumn) || !grid.Has(row+rowToNext, legacyAmountColumn) {
			continue
		}

		buckets := make(map[domain.Bucket]domain.SeedBalance, len(domain.Buckets))
		for _, b := range domain.Buckets {
			buckets[b] = domain.SeedBalance{}
		}
		buckets[domain.AnchorBucket] = domain.SeedBalance{
			Current:    SafeNumber(grid.At(row+rowCurrent, legacyAmountColumn)),
			Transition: SafeNumber(grid.At(row+rowToNext, legacyAmountColumn)),
		}
		products[label] = buckets
	}
	return products
}
