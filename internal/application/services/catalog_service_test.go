package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/domain/entities"
	"shopfront/internal/infrastructure/db"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()

	gdb, err := db.Connect(newTestConfig(t))
	require.NoError(t, err)

	productRepo := db.NewProductRepository(gdb)
	require.NoError(t, db.EnsureSeeded(context.Background(), productRepo))

	return &CatalogService{productRepo: productRepo}
}

func TestBrowseReturnsProductsAndCategories(t *testing.T) {
	catalog := newCatalogService(t)

	result, err := catalog.Browse(context.Background(), entities.CatalogFilter{})
	require.NoError(t, err)
	assert.Len(t, result.Products, 8)
	assert.ElementsMatch(t, []string{"Electronics", "Footwear", "Clothing"}, result.Categories)
}

func TestBrowseAppliesFilter(t *testing.T) {
	catalog := newCatalogService(t)

	result, err := catalog.Browse(context.Background(), entities.CatalogFilter{
		Category: "Footwear",
		Sort:     entities.SortPriceAsc,
	})
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "Puma Running Shoes", result.Products[0].Name)
	assert.Equal(t, "Nike Air Max", result.Products[1].Name)

	// Categories stay complete even when the product list is filtered,
	// so the form can keep offering every option.
	assert.Len(t, result.Categories, 3)
}
