package store

import (
	"context"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
)

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	err := s.db.WithContext(ctx).Create(product).Error
	return storage(err, "failed to create product")
}

func (s *Store) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, storage(err, "failed to fetch products")
	}
	return products, nil
}

func (s *Store) Product(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, firstErr(err, "product not found", "failed to fetch product")
	}
	return &product, nil
}

// ProductsByID fetches the given products in one query, keyed by id. Missing
// ids are simply absent from the map; the cart display join tolerates them.
func (s *Store) ProductsByID(ctx context.Context, ids []uint) (map[uint]models.Product, error) {
	out := make(map[uint]models.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, storage(err, "failed to fetch products")
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (s *Store) SaveProduct(ctx context.Context, product *models.Product) error {
	err := s.db.WithContext(ctx).Save(product).Error
	return storage(err, "failed to save product")
}

func (s *Store) DeleteProduct(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if res.Error != nil {
		return storage(res.Error, "failed to delete product")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "product not found")
	}
	return nil
}
