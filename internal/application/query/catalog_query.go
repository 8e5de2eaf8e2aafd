package query

import "shopfront/internal/domain/entities"

type CatalogQueryResult struct {
	Products   []*entities.Product
	Categories []string
}
