package app

import (
	"sort"
	"strings"

	"camping_arequita/internal/domain"
)

type SortOrder string

const (
	SortPriceAsc  SortOrder = "price-low"
	SortPriceDesc SortOrder = "price-high"
)

// DefaultPriceCeiling matches the search page's fixed slider bound.
const DefaultPriceCeiling = 10000

// Criteria is the user-controlled search state. Zero values mean "no text
// filter", "all types", floor 0, ascending. A non-positive ceiling means the
// default bound, not "nothing"; callers wanting an explicit ceiling must pass
// a positive one.
type Criteria struct {
	Query        string
	Type         string // "all" or one accommodation type
	PriceFloor   float64
	PriceCeiling float64
	Sort         SortOrder
}

func DefaultCriteria() Criteria {
	return Criteria{Type: domain.TypeAll, PriceCeiling: DefaultPriceCeiling, Sort: SortPriceAsc}
}

// Search derives the displayed listing from a fetched base set. Pure
// function: same inputs always yield the same ordered output, and the input
// slice is never mutated. No pagination; every match renders.
func Search(items []domain.Accommodation, c Criteria) []domain.Accommodation {
	out := make([]domain.Accommodation, 0, len(items))

	q := strings.ToLower(strings.TrimSpace(c.Query))
	ceiling := c.PriceCeiling
	if ceiling <= 0 {
		ceiling = DefaultPriceCeiling
	}

	for _, a := range items {
		if q != "" && !matchesQuery(a, q) {
			continue
		}
		if c.Type != "" && c.Type != domain.TypeAll && string(a.Type) != c.Type {
			continue
		}
		if a.Price < c.PriceFloor || a.Price > ceiling {
			continue
		}
		out = append(out, a)
	}

	// Stable sort keeps backend order among equal prices.
	if c.Sort == SortPriceDesc {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	}
	return out
}

// matchesQuery does a case-insensitive substring match against name,
// description and the type label.
func matchesQuery(a domain.Accommodation, q string) bool {
	return strings.Contains(strings.ToLower(a.Name), q) ||
		strings.Contains(strings.ToLower(a.Description), q) ||
		strings.Contains(strings.ToLower(string(a.Type)), q)
}
