package domain

import "math"

// AccommodationType is the bookable unit category.
type AccommodationType string

const (
	TypeCabin     AccommodationType = "cabin"
	TypeMotorhome AccommodationType = "motorhome"
	TypeCamping   AccommodationType = "camping"

	// TypeAll is the wildcard used by the search criteria, never by data.
	TypeAll = "all"
)

func ValidType(t string) bool {
	switch AccommodationType(t) {
	case TypeCabin, TypeMotorhome, TypeCamping:
		return true
	}
	return false
}

type Amenity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Accommodation is an immutable per-fetch snapshot owned by the remote
// backend. Invariants: Available <= Total, Price <= OriginalPrice when set.
type Accommodation struct {
	ID            string            `json:"id"`
	Type          AccommodationType `json:"type"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         float64           `json:"price"`
	OriginalPrice *float64          `json:"originalPrice,omitempty"`
	Currency      string            `json:"currency"`
	Capacity      int               `json:"capacity"`
	Available     int               `json:"available"`
	Total         int               `json:"total"`
	Images        []string          `json:"images"`
	Amenities     []Amenity         `json:"amenities"`
	Featured      bool              `json:"featured,omitempty"`
	Promo         bool              `json:"promo,omitempty"`
}

// DiscountPercent derives the promotional discount; it is never stored.
// Returns 0 when there is no original price or the original price is not
// actually higher than the current one.
func (a Accommodation) DiscountPercent() int {
	if a.OriginalPrice == nil || *a.OriginalPrice <= 0 || a.Price >= *a.OriginalPrice {
		return 0
	}
	return int(math.Round((*a.OriginalPrice - a.Price) / *a.OriginalPrice * 100))
}
