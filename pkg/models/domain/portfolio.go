package domain

// Sheet identifies an independent dataset partition (a portfolio category).
type Sheet string

const (
	SheetPSD   Sheet = "PSD"
	SheetMikro Sheet = "Mikro"
	SheetKOS   Sheet = "KOS"
)

// Sheets is the closed set of categories, in display order.
var Sheets = []Sheet{SheetPSD, SheetMikro, SheetKOS}

// LegacySheetNames maps each category to its sub-sheet in the legacy workbook.
var LegacySheetNames = map[Sheet]string{
	SheetPSD:   "PSD",
	SheetMikro: "MIKRO",
	SheetKOS:   "Kos",
}

// Bucket is an aging band (days past due).
type Bucket string

const (
	Bucket1To5   Bucket = "1-5"
	Bucket30To90 Bucket = "30-90"
	Bucket90Plus Bucket = "90+"
)

// Buckets is the closed set of aging buckets, in display order.
var Buckets = []Bucket{Bucket1To5, Bucket30To90, Bucket90Plus}

// BucketOffsets is the column offset of each bucket inside a month block.
var BucketOffsets = map[Bucket]int{
	Bucket1To5:   0,
	Bucket30To90: 6,
	Bucket90Plus: 8,
}

// AnchorBucket marks the start of every month block in the bucket marker row.
const AnchorBucket = Bucket1To5

func IsSheet(s string) bool {
	for _, sh := range Sheets {
		if string(sh) == s {
			return true
		}
	}
	return false
}

func IsBucket(s string) bool {
	_, ok := BucketOffsets[Bucket(s)]
	return ok
}
