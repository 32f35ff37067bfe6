package store

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
)

func (s *Store) CartLines(ctx context.Context, userID string) ([]models.CartLine, error) {
	var lines []models.CartLine
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&lines).Error
	if err != nil {
		return nil, storage(err, "failed to fetch cart")
	}
	return lines, nil
}

// UpsertCartLine inserts a line or adds delta to the existing quantity in a
// single statement, so concurrent adds for the same product commute.
func (s *Store) UpsertCartLine(ctx context.Context, userID string, productID uint, delta int) error {
	line := models.CartLine{
		UserID:    userID,
		ProductID: productID,
		Quantity:  delta,
		AddedAt:   time.Now(),
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_lines.quantity + EXCLUDED.quantity"),
			"added_at": gorm.Expr("EXCLUDED.added_at"),
		}),
	}).Create(&line).Error
	return storage(err, "failed to upsert cart line")
}

// DecrementCartLine lowers a line by one, deleting it when it holds the last
// unit. A line must exist; decrementing an absent line is NotFound.
func (s *Store) DecrementCartLine(ctx context.Context, userID string, productID uint) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND quantity <= 1", userID, productID).
		Delete(&models.CartLine{})
	if res.Error != nil {
		return storage(res.Error, "failed to decrement cart line")
	}
	if res.RowsAffected > 0 {
		return nil
	}
	res = s.db.WithContext(ctx).Model(&models.CartLine{}).
		Where("user_id = ? AND product_id = ? AND quantity > 1", userID, productID).
		Update("quantity", gorm.Expr("quantity - 1"))
	if res.Error != nil {
		return storage(res.Error, "failed to decrement cart line")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "product not in cart")
	}
	return nil
}

// SetCartLineQuantity overwrites the quantity of an existing line. Creating
// lines is the upsert's job, so an absent line is NotFound.
func (s *Store) SetCartLineQuantity(ctx context.Context, userID string, productID uint, quantity int) error {
	res := s.db.WithContext(ctx).Model(&models.CartLine{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return storage(res.Error, "failed to set cart quantity")
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "product not in cart")
	}
	return nil
}

// RemoveCartLine deletes a line if present; deleting an absent line succeeds.
func (s *Store) RemoveCartLine(ctx context.Context, userID string, productID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartLine{}).Error
	return storage(err, "failed to remove cart line")
}

func (s *Store) ClearCart(ctx context.Context, userID string) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.CartLine{}).Error
	return storage(err, "failed to clear cart")
}
