package services

import (
	"context"

	"shopfront/internal/application/interfaces"
	"shopfront/internal/application/query"
	"shopfront/internal/domain/entities"
	"shopfront/internal/domain/repositories"
)

type CatalogService struct {
	productRepo repositories.ProductRepository
}

func NewCatalogService(productRepo repositories.ProductRepository) interfaces.CatalogService {
	return &CatalogService{productRepo: productRepo}
}

func (s *CatalogService) Browse(ctx context.Context, filter entities.CatalogFilter) (*query.CatalogQueryResult, error) {
	products, err := s.productRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		return nil, err
	}

	return &query.CatalogQueryResult{
		Products:   products,
		Categories: categories,
	}, nil
}
