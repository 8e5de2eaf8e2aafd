package db

import (
	"context"

	"gorm.io/gorm"

	"shopfront/internal/domain/entities"
	"shopfront/internal/domain/repositories"
)

// sortClauses is the fixed set of ORDER BY shapes. User input selects a
// key; it never reaches the clause text itself.
var sortClauses = map[entities.SortOrder]string{
	entities.SortPriceAsc:  "price ASC",
	entities.SortPriceDesc: "price DESC",
	entities.SortRating:    "rating DESC",
}

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepository{db: db}
}

// Find runs a catalog query. Constraints combine with AND and every
// user-supplied value is bound as a parameter. Each call re-executes the
// query against the store.
func (r *ProductRepository) Find(ctx context.Context, filter entities.CatalogFilter) ([]*entities.Product, error) {
	query := r.db.WithContext(ctx).Model(&ProductModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}
	if clause, ok := sortClauses[filter.Sort]; ok {
		query = query.Order(clause)
	}

	var productModels []ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, r.mapToEntity(&productModels[i]))
	}
	return products, nil
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&ProductModel{}).Distinct().Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProductRepository) Seed(ctx context.Context, products []*entities.Product) error {
	productModels := make([]ProductModel, 0, len(products))
	for _, product := range products {
		productModels = append(productModels, ProductModel{
			Name:     product.Name,
			Category: product.Category,
			Price:    product.Price,
			Rating:   product.Rating,
		})
	}
	return r.db.WithContext(ctx).Create(&productModels).Error
}

func (r *ProductRepository) mapToEntity(productModel *ProductModel) *entities.Product {
	return &entities.Product{
		ID:        productModel.ID,
		CreatedAt: productModel.CreatedAt,
		Name:      productModel.Name,
		Category:  productModel.Category,
		Price:     productModel.Price,
		Rating:    productModel.Rating,
	}
}
