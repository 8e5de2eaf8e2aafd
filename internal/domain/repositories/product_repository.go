package repositories

import (
	"context"

	"shopfront/internal/domain/entities"
)

type ProductRepository interface {
	Find(ctx context.Context, filter entities.CatalogFilter) ([]*entities.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	Seed(ctx context.Context, products []*entities.Product) error
}
