package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		value string
		want  SortOrder
	}{
		{"price_asc", SortPriceAsc},
		{"price_desc", SortPriceDesc},
		{"rating", SortRating},
		{"", SortNone},
		{"price", SortNone},
		{"rating; DROP TABLE products", SortNone},
		{"PRICE_ASC", SortNone},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortOrder(tt.value))
		})
	}
}
