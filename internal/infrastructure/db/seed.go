package db

import (
	"context"

	"shopfront/internal/domain/entities"
	"shopfront/internal/domain/repositories"
)

// DefaultCatalog is the fixed sample catalog inserted at first startup.
func DefaultCatalog() []*entities.Product {
	return []*entities.Product{
		{Name: "iPhone 13", Category: "Electronics", Price: 59990.00, Rating: 4.5},
		{Name: "Samsung Galaxy S22", Category: "Electronics", Price: 54999.00, Rating: 4.3},
		{Name: "Nike Air Max", Category: "Footwear", Price: 8999.00, Rating: 4.7},
		{Name: "Adidas T-Shirt", Category: "Clothing", Price: 1999.00, Rating: 4.2},
		{Name: "MacBook Pro", Category: "Electronics", Price: 129990.00, Rating: 4.8},
		{Name: "Levi's Jeans", Category: "Clothing", Price: 3999.00, Rating: 4.1},
		{Name: "Sony Headphones", Category: "Electronics", Price: 14990.00, Rating: 4.4},
		{Name: "Puma Running Shoes", Category: "Footwear", Price: 5999.00, Rating: 4.0},
	}
}

// EnsureSeeded inserts the default catalog when the products table is
// empty. Safe to call on every startup.
func EnsureSeeded(ctx context.Context, products repositories.ProductRepository) error {
	count, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return products.Seed(ctx, DefaultCatalog())
}
