package entities

import "time"

type Product struct {
	ID        uint
	CreatedAt time.Time
	Name      string
	Category  string
	Price     float64
	Rating    float64
}

// SortOrder is the closed set of catalog orderings. Anything outside the
// set degrades to SortNone, leaving the storage engine's default order.
type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
)

func ParseSortOrder(value string) SortOrder {
	switch SortOrder(value) {
	case SortPriceAsc, SortPriceDesc, SortRating:
		return SortOrder(value)
	default:
		return SortNone
	}
}

// CatalogFilter describes a catalog query. All fields are optional;
// absent fields impose no constraint and constraints combine with AND.
type CatalogFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     SortOrder
}
