package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
)

func (s *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	err := s.db.WithContext(ctx).Create(order).Error
	return storage(err, "failed to create order")
}

func (s *Store) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, storage(err, "failed to fetch orders")
	}
	return orders, nil
}

// Orders lists every order newest first with the buyer joined in, for the
// admin dashboard. Product details ride on the snapshotted items.
func (s *Store) Orders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, storage(err, "failed to fetch orders")
	}
	return orders, nil
}

func (s *Store) Order(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		First(&order, id).Error
	if err != nil {
		return nil, firstErr(err, "order not found", "failed to fetch order")
	}
	return &order, nil
}

// UpdateOrderStatus moves an order to any enumerated status. No transition
// is rejected; Delivered and Cancelled are not terminal.
func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, storage(res.Error, "failed to update order status")
	}
	if res.RowsAffected == 0 {
		return nil, apperr.New(apperr.KindNotFound, "order not found")
	}
	return s.Order(ctx, id)
}

func (s *Store) DeleteOrder(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return storage(err, "failed to delete order items")
		}
		res := tx.Delete(&models.Order{}, id)
		if res.Error != nil {
			return storage(res.Error, "failed to delete order")
		}
		if res.RowsAffected == 0 {
			return apperr.New(apperr.KindNotFound, "order not found")
		}
		return nil
	})
}
