package domain

// MonthPeriod is one month block located in the header row of a sheet.
type MonthPeriod struct {
	Label      string // "Jan 24"
	Year       int
	Month      int
	BaseColumn int // first data column of the block
}

// Before reports whether p is chronologically earlier than other.
func (p MonthPeriod) Before(other MonthPeriod) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}

type MonthlyRecord struct {
	Period     MonthPeriod
	Portfolio  float64 // current balance, thousands
	Recovery   float64 // outflow / previous balance, %
	Inflow     float64 // inflow / previous balance, %
	TowardsNPL float64 // transition to the next bucket / previous balance, %
}

// SeedBalance is the legacy starting point for one product bucket.
type SeedBalance struct {
	Current    float64
	Transition float64
}

// LegacySeed holds sheet -> product -> bucket seed balances.
type LegacySeed map[Sheet]map[string]map[Bucket]SeedBalance

// Balance returns the seed for the given coordinates and whether it was present.
func (s LegacySeed) Balance(sheet Sheet, product string, bucket Bucket) (SeedBalance, bool) {
	b, ok := s[sheet][product][bucket]
	return b, ok
}

type SheetData struct {
	Months   []MonthPeriod
	Years    []int
	Products []string
	Series   map[string]map[Bucket][]MonthlyRecord
}

type Dataset map[Sheet]*SheetData

// Records returns the ordered series for a product bucket, nil when unknown.
func (d Dataset) Records(sheet Sheet, product string, bucket Bucket) []MonthlyRecord {
	sd, ok := d[sheet]
	if !ok || sd == nil {
		return nil
	}
	return sd.Series[product][bucket]
}

// Series is the chart projection of a filtered product series.
type Series struct {
	Months     []string
	Portfolio  []float64
	Recovery   []float64
	TowardsNPL []float64
	Inflow     []float64
}

func EmptySeries() Series {
	return Series{
		Months:     []string{},
		Portfolio:  []float64{},
		Recovery:   []float64{},
		TowardsNPL: []float64{},
		Inflow:     []float64{},
	}
}

type SheetMetadata struct {
	Months []MonthPeriod
	Years  []int
}

// SeriesQuery selects one product bucket and an inclusive year/month window.
type SeriesQuery struct {
	Sheet     string
	Product   string
	Bucket    string
	YearFrom  int
	YearTo    int
	MonthFrom int
	MonthTo   int
}
