package aging

import (
	"context"
	"slices"

	"github.com/de-tools/aging-atlas/pkg/models/domain"
)

const (
	defaultMonthFrom = 1
	defaultMonthTo   = 12
)

// Explorer is the read-only query surface over the built dataset.
type Explorer interface {
	ListProducts(ctx context.Context, sheet string) ([]string, error)
	GetSeries(ctx context.Context, q domain.SeriesQuery) (domain.Series, error)
	GetSheetMetadata(ctx context.Context, sheet string) (domain.SheetMetadata, error)
	GetDashboard(ctx context.Context, q domain.DashboardQuery) (domain.Dashboard, error)
}

// DatasetSource hands out the built dataset; *Cache implements it.
type DatasetSource interface {
	Dataset(ctx context.Context) (domain.Dataset, error)
}

type explorer struct {
	source DatasetSource
}

func NewExplorer(source DatasetSource) Explorer {
	return &explorer{source: source}
}

func (e *explorer) ListProducts(ctx context.Context, sheet string) ([]string, error) {
	dataset, err := e.source.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return productsOf(dataset, domain.Sheet(sheet)), nil
}

func (e *explorer) GetSeries(ctx context.Context, q domain.SeriesQuery) (domain.Series, error) {
	dataset, err := e.source.Dataset(ctx)
	if err != nil {
		return domain.Series{}, err
	}
	return Query(dataset, q), nil
}

func (e *explorer) GetSheetMetadata(ctx context.Context, sheet string) (domain.SheetMetadata, error) {
	dataset, err := e.source.Dataset(ctx)
	if err != nil {
		return domain.SheetMetadata{}, err
	}
	sd, ok := dataset[domain.Sheet(sheet)]
	if !ok || sd == nil {
		return domain.SheetMetadata{Months: []domain.MonthPeriod{}, Years: []int{}}, nil
	}
	return domain.SheetMetadata{
		Months: append([]domain.MonthPeriod{}, sd.Months...),
		Years:  append([]int{}, sd.Years...),
	}, nil
}

// GetDashboard resolves every filter to a usable value before querying: unknown sheets
// and buckets fall back to the first of their set, unknown products to the sheet's first
// product, and missing bounds to the full range of years present.
func (e *explorer) GetDashboard(ctx context.Context, q domain.DashboardQuery) (domain.Dashboard, error) {
	dataset, err := e.source.Dataset(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	sheet := ResolveSheet(q.Sheet).Value
	bucket := ResolveBucket(q.Bucket).Value
	products := productsOf(dataset, sheet)

	product := q.Product
	if !slices.Contains(products, product) {
		product = ""
		if len(products) > 0 {
			product = products[0]
		}
	}

	years := []int{}
	if sd, ok := dataset[sheet]; ok && sd != nil {
		years = append(years, sd.Years...)
	}
	firstYear, lastYear := 0, 0
	if len(years) > 0 {
		firstYear, lastYear = years[0], years[len(years)-1]
	}

	view := domain.Dashboard{
		Sheets:          slices.Clone(domain.Sheets),
		Buckets:         slices.Clone(domain.Buckets),
		SelectedSheet:   sheet,
		SelectedBucket:  bucket,
		SelectedProduct: product,
		Products:        products,
		Years:           years,
		YearFrom:        valueOr(q.YearFrom, firstYear),
		YearTo:          valueOr(q.YearTo, lastYear),
		MonthFrom:       valueOr(q.MonthFrom, defaultMonthFrom),
		MonthTo:         valueOr(q.MonthTo, defaultMonthTo),
		MonthNames:      domain.MonthNames,
	}
	view.Chart = Query(dataset, domain.SeriesQuery{
		Sheet:     string(sheet),
		Product:   product,
		Bucket:    string(bucket),
		YearFrom:  view.YearFrom,
		YearTo:    view.YearTo,
		MonthFrom: view.MonthFrom,
		MonthTo:   view.MonthTo,
	})
	return view, nil
}

func productsOf(dataset domain.Dataset, sheet domain.Sheet) []string {
	sd, ok := dataset[sheet]
	if !ok || sd == nil {
		return []string{}
	}
	return append([]string{}, sd.Products...)
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
