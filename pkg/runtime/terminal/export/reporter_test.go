package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/aging-atlas/pkg/models/api"
)

func sampleSeries() api.Series {
	return api.Series{
		Months:     []string{"Jan 24", "Feb 24"},
		Portfolio:  []float64{0.1, 0.09},
		Recovery:   []float64{6.25, 4},
		TowardsNPL: []float64{2.5, 1},
		Inflow:     []float64{12.5, 8},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReporter_SeriesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Series(FormatTable, sampleSeries()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "+--"))
	assert.Contains(t, lines[1], "Towards NPL %")
	assert.Equal(t, "| Jan 24                   |         0.10 |         6.25 |         2.50 |        12.50 |", lines[3])
	assert.Equal(t, "| Feb 24                   |         0.09 |         4.00 |         1.00 |         8.00 |", lines[4])
	assert.Equal(t, lines[0], lines[5])
}

func TestReporter_ProductsAndMetadataTable(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Products(FormatTable, api.Products{Products: []string{"Retail", "SME"}}))
	assert.Contains(t, buf.String(), "| Retail                   |")
	assert.Contains(t, buf.String(), "| SME                      |")

	buf.Reset()
	require.NoError(t, reporter.Metadata(FormatTable, api.SheetMetadata{
		Months: []api.Month{{Label: "Jan 24", Year: 2024, Month: 1}},
		Years:  []int{2024, 2025},
	}))
	assert.Contains(t, buf.String(), "Years: 2024, 2025")
	assert.Contains(t, buf.String(), "| Jan 24                   |         2024 |            1 |")
}

func TestReporter_JSONAndYAML(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)

	require.NoError(t, reporter.Series(FormatJSON, sampleSeries()))
	assert.JSONEq(t,
		`{"months":["Jan 24","Feb 24"],"portfolio":[0.1,0.09],"recovery":[6.25,4],"towards_npl":[2.5,1],"inflow":[12.5,8]}`,
		buf.String())

	buf.Reset()
	require.NoError(t, reporter.Products(FormatYAML, api.Products{Products: []string{"Retail"}}))
	assert.Equal(t, "products:\n  - Retail\n", buf.String())
}
