package aging

import "github.com/de-tools/aging-atlas/pkg/models/domain"

// Resolution is a filter value that either matched or was replaced by a default.
type Resolution[T any] struct {
	Value     T
	Defaulted bool
	Reason    string
}

// ResolveSheet maps a raw sheet name to the closed set, falling back to the first sheet.
func ResolveSheet(name string) Resolution[domain.Sheet] {
	if domain.IsSheet(name) {
		return Resolution[domain.Sheet]{Value: domain.Sheet(name)}
	}
	return Resolution[domain.Sheet]{Value: domain.Sheets[0], Defaulted: true, Reason: unrecognized(name)}
}

// ResolveBucket maps a raw bucket name to the closed set, falling back to the first bucket.
func ResolveBucket(name string) Resolution[domain.Bucket] {
	if domain.IsBucket(name) {
		return Resolution[domain.Bucket]{Value: domain.Bucket(name)}
	}
	return Resolution[domain.Bucket]{Value: domain.Buckets[0], Defaulted: true, Reason: unrecognized(name)}
}

func unrecognized(name string) string {
	if name == "" {
		return "not provided"
	}
	return "unrecognized value " + name
}
