package model

import "fmt"

// SortOption selects how a projected catalog is ordered.
type SortOption string

const (
	SortAlphaAsc  SortOption = "alpha-asc"
	SortAlphaDesc SortOption = "alpha-desc"
	SortNewest    SortOption = "newest"
)

// ParseSortOption accepts the wire names. Empty input means alpha-asc.
func ParseSortOption(s string) (SortOption, error) {
	switch SortOption(s) {
	case "":
		return SortAlphaAsc, nil
	case SortAlphaAsc, SortAlphaDesc, SortNewest:
		return SortOption(s), nil
	default:
		return "", fmt.Errorf("unknown sort option %q", s)
	}
}
