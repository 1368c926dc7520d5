package aging

import "github.com/de-tools/aging-atlas/pkg/models/domain"

// InRange applies the dashboard's year/month window. The month bounds only bind in the
// boundary years; every month of an intermediate year is kept.
func InRange(year, month, yearFrom, yearTo, monthFrom, monthTo int) bool {
	afterStart := year > yearFrom || (year == yearFrom && month >= monthFrom)
	beforeEnd := year < yearTo || (year == yearTo && month <= monthTo)
	return afterStart && beforeEnd
}

func FilterMonthly(records []domain.MonthlyRecord, yearFrom, yearTo, monthFrom, monthTo int) []domain.MonthlyRecord {
	filtered := make([]domain.MonthlyRecord, 0, len(records))
	for _, r := range records {
		if InRange(r.Period.Year, r.Period.Month, yearFrom, yearTo, monthFrom, monthTo) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// Project splits records into the parallel arrays the charts consume.
func Project(records []domain.MonthlyRecord) domain.Series {
	series := domain.EmptySeries()
	for _, r := range records {
		series.Months = append(series.Months, r.Period.Label)
		series.Portfolio = append(series.Portfolio, r.Portfolio)
		series.Recovery = append(series.Recovery, r.Recovery)
		series.TowardsNPL = append(series.TowardsNPL, r.TowardsNPL)
		series.Inflow = append(series.Inflow, r.Inflow)
	}
	return series
}

// Query filters one product bucket of the dataset. Unknown coordinates give an empty series.
func Query(dataset domain.Dataset, q domain.SeriesQuery) domain.Series {
	records := dataset.Records(domain.Sheet(q.Sheet), q.Product, domain.Bucket(q.Bucket))
	return Project(FilterMonthly(records, q.YearFrom, q.YearTo, q.MonthFrom, q.MonthTo))
}
