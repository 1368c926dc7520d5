package api

type Catalog struct {
	Sheets  []string `json:"sheets" yaml:"sheets"`
	Buckets []string `json:"buckets" yaml:"buckets"`
}

type Products struct {
	Products []string `json:"products" yaml:"products"`
}

type Series struct {
	Months     []string  `json:"months" yaml:"months"`
	Portfolio  []float64 `json:"portfolio" yaml:"portfolio"`
	Recovery   []float64 `json:"recovery" yaml:"recovery"`
	TowardsNPL []float64 `json:"towards_npl" yaml:"towards_npl"`
	Inflow     []float64 `json:"inflow" yaml:"inflow"`
}

type Month struct {
	Label string `json:"label" yaml:"label"`
	Year  int    `json:"year" yaml:"year"`
	Month int    `json:"month" yaml:"month"`
}

type SheetMetadata struct {
	Months []Month `json:"months" yaml:"months"`
	Years  []int   `json:"years" yaml:"years"`
}

type Dashboard struct {
	Sheets          []string       `json:"sheets"`
	Buckets         []string       `json:"buckets"`
	SelectedSheet   string         `json:"selected_sheet"`
	SelectedBucket  string         `json:"selected_bucket"`
	SelectedProduct string         `json:"selected_product"`
	Products        []string       `json:"products"`
	Years           []int          `json:"years"`
	YearFrom        int            `json:"year_from"`
	YearTo          int            `json:"year_to"`
	MonthFrom       int            `json:"month_from"`
	MonthTo         int            `json:"month_to"`
	MonthNames      map[int]string `json:"month_names"`
	Chart           Series         `json:"chart"`
}

type Error struct {
	Error string `json:"error"`
}
