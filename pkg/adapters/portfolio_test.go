package adapters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/aging-atlas/pkg/models/api"
	"github.com/de-tools/aging-atlas/pkg/models/domain"
)

func TestMapSeries_EmptyEncodesAsArrays(t *testing.T) {
	body, err := json.Marshal(MapSeries(domain.Series{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"months":[],"portfolio":[],"recovery":[],"towards_npl":[],"inflow":[]}`, string(body))
}

func TestMapSheetMetadata(t *testing.T) {
	got := MapSheetMetadata(domain.SheetMetadata{
		Months: []domain.MonthPeriod{{Label: "Jan 24", Year: 2024, Month: 1, BaseColumn: 2}},
		Years:  []int{2024},
	})
	assert.Equal(t, api.SheetMetadata{
		Months: []api.Month{{Label: "Jan 24", Year: 2024, Month: 1}},
		Years:  []int{2024},
	}, got)
}

func TestMapDashboard(t *testing.T) {
	got := MapDashboard(domain.Dashboard{
		Sheets:          domain.Sheets,
		Buckets:         domain.Buckets,
		SelectedSheet:   domain.SheetKOS,
		SelectedBucket:  domain.Bucket90Plus,
		SelectedProduct: "Retail",
		YearFrom:        2024,
		YearTo:          2025,
		MonthFrom:       1,
		MonthTo:         12,
		MonthNames:      domain.MonthNames,
	})

	assert.Equal(t, []string{"PSD", "Mikro", "KOS"}, got.Sheets)
	assert.Equal(t, []string{"1-5", "30-90", "90+"}, got.Buckets)
	assert.Equal(t, "KOS", got.SelectedSheet)
	assert.Equal(t, "90+", got.SelectedBucket)
	assert.Equal(t, []string{}, got.Products)
	assert.Equal(t, []int{}, got.Years)
	assert.Equal(t, []string{}, got.Chart.Months)
	assert.Equal(t, "Dec", got.MonthNames[12])
}
