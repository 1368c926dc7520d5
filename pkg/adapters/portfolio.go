package adapters

import (
	"github.com/de-tools/aging-atlas/pkg/models/api"
	"github.com/de-tools/aging-atlas/pkg/models/domain"
)

func MapCatalog(sheets []domain.Sheet, buckets []domain.Bucket) api.Catalog {
	return api.Catalog{
		Sheets:  mapStrings(sheets),
		Buckets: mapStrings(buckets),
	}
}

func MapSeries(s domain.Series) api.Series {
	return api.Series{
		Months:     nonNil(s.Months),
		Portfolio:  nonNil(s.Portfolio),
		Recovery:   nonNil(s.Recovery),
		TowardsNPL: nonNil(s.TowardsNPL),
		Inflow:     nonNil(s.Inflow),
	}
}

func MapSheetMetadata(m domain.SheetMetadata) api.SheetMetadata {
	months := make([]api.Month, 0, len(m.Months))
	for _, p := range m.Months {
		months = append(months, api.Month{Label: p.Label, Year: p.Year, Month: p.Month})
	}
	return api.SheetMetadata{Months: months, Years: nonNil(m.Years)}
}

func MapDashboard(d domain.Dashboard) api.Dashboard {
	return api.Dashboard{
		Sheets:          mapStrings(d.Sheets),
		Buckets:         mapStrings(d.Buckets),
		SelectedSheet:   string(d.SelectedSheet),
		SelectedBucket:  string(d.SelectedBucket),
		SelectedProduct: d.SelectedProduct,
		Products:        nonNil(d.Products),
		Years:           nonNil(d.Years),
		YearFrom:        d.YearFrom,
		YearTo:          d.YearTo,
		MonthFrom:       d.MonthFrom,
		MonthTo:         d.MonthTo,
		MonthNames:      d.MonthNames,
		Chart:           MapSeries(d.Chart),
	}
}

func mapStrings[T ~string](values []T) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, string(v))
	}
	return out
}

// nonNil keeps empty collections encoded as [] rather than null.
func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
