package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/de-tools/aging-atlas/pkg/models/api"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected table, json or yaml)", s)
	}
}

type TableConfig struct {
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 24,
		ValueWidth: 12,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const productsTmpl = `{{separator 0}}
{{formatRow "Product"}}
{{separator 0}}
{{range .Products}}{{formatRow .}}
{{end}}{{separator 0}}
`

const metadataTmpl = `Years: {{range $i, $y := .Years}}{{if $i}}, {{end}}{{$y}}{{end}}

{{separator 2}}
{{formatRow "Month" "Year" "Month #"}}
{{separator 2}}
{{range .Months}}{{formatRow .Label .Year .Month}}
{{end}}{{separator 2}}
`

const seriesTmpl = `{{separator 4}}
{{formatRow "Month" "Portfolio (k)" "Recovery %" "Towards NPL %" "Inflow %"}}
{{separator 4}}
{{range $i, $m := .Months}}{{formatRow $m (num (index $.Portfolio $i)) (num (index $.Recovery $i)) (num (index $.TowardsNPL $i)) (num (index $.Inflow $i))}}
{{end}}{{separator 4}}
`

func (c *Reporter) Products(format Format, products api.Products) error {
	return c.render(format, "products", productsTmpl, products)
}

func (c *Reporter) Metadata(format Format, meta api.SheetMetadata) error {
	return c.render(format, "metadata", metadataTmpl, meta)
}

func (c *Reporter) Series(format Format, series api.Series) error {
	return c.render(format, "series", seriesTmpl, series)
}

func (c *Reporter) render(format Format, name, tmpl string, data any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(c.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(c.writer)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTable, "":
		t, err := template.New(name).Funcs(c.funcMap()).Parse(tmpl)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}
		return t.Execute(c.writer, data)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// funcMap lays out a table whose first column holds labels and the rest values.
func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(label string, values ...interface{}) string {
			var b strings.Builder
			fmt.Fprintf(&b, "| %-*s |", c.config.LabelWidth, label)
			for _, v := range values {
				fmt.Fprintf(&b, " %*v |", c.config.ValueWidth, v)
			}
			return b.String()
		},
		"separator": func(valueColumns int) string {
			var b strings.Builder
			b.WriteString("+" + strings.Repeat("-", c.config.LabelWidth+2) + "+")
			for i := 0; i < valueColumns; i++ {
				b.WriteString(strings.Repeat("-", c.config.ValueWidth+2) + "+")
			}
			return b.String()
		},
		"num": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
	}
}
