package domain

// DashboardQuery carries raw filter values; zero values mean "not provided".
type DashboardQuery struct {
	Sheet     string
	Product   string
	Bucket    string
	YearFrom  *int
	YearTo    *int
	MonthFrom *int
	MonthTo   *int
}

// Dashboard is the resolved view model behind the dashboard page.
type Dashboard struct {
	Sheets          []Sheet
	Buckets         []Bucket
	SelectedSheet   Sheet
	SelectedBucket  Bucket
	SelectedProduct string
	Products        []string
	Years           []int
	YearFrom        int
	YearTo          int
	MonthFrom       int
	MonthTo         int
	MonthNames      map[int]string
	Chart           Series
}

var MonthNames = map[int]string{
	1: "Jan", 2: "Feb", 3: "Mar", 4: "Apr", 5: "May", 6: "Jun",
	7: "Jul", 8: "Aug", 9: "Sep", 10: "Oct", 11: "Nov", 12: "Dec",
}
