// Package checkout converts a cart into an order exactly once: preconditions
// first, then price snapshot, order creation and cart clearing inside a
// single storage transaction.
package checkout

import (
	"context"
	"time"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
)

// Store bundles the persistence checkout touches. Transaction runs fn against
// a transaction-scoped Store; returning an error rolls everything back, so
// order creation and cart clearing land together or not at all.
type Store interface {
	User(ctx context.Context, id string) (*models.User, error)
	CartLines(ctx context.Context, userID string) ([]models.CartLine, error)
	Product(ctx context.Context, id uint) (*models.Product, error)
	CreateOrder(ctx context.Context, order *models.Order) error
	ClearCart(ctx context.Context, userID string) error
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type Engine struct {
	store Store
	now   func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Checkout validates payment method, non-empty cart and complete address (in
// that order — first failure wins), then snapshots each line's current
// catalog price into an order, totals it, persists the order with status
// Pending and clears the cart. A product that vanished from the catalog
// fails the whole checkout with NotFound rather than dropping the line.
func (e *Engine) Checkout(ctx context.Context, userID string, paymentMethod string) (*models.Order, error) {
	method, err := models.ParsePaymentMethod(paymentMethod)
	if err != nil {
		return nil, apperr.New(apperr.KindInvalidArgument, "payment method must be Cash or Online")
	}

	user, err := e.store.User(ctx, userID)
	if err != nil {
		return nil, err
	}
	lines, err := e.store.CartLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, apperr.New(apperr.KindPreconditionFailed, "cart is empty")
	}
	if missing := user.Address.Missing(); len(missing) > 0 {
		return nil, apperr.NewDetailed(apperr.KindPreconditionFailed, "incomplete address", missing)
	}

	var order *models.Order
	err = e.store.Transaction(ctx, func(tx Store) error {
		items := make([]models.OrderItem, 0, len(lines))
		var total float64
		for _, line := range lines {
			product, err := tx.Product(ctx, line.ProductID)
			if err != nil {
				if apperr.IsNotFound(err) {
					return apperr.Newf(apperr.KindNotFound, "product %d is no longer available", line.ProductID)
				}
				return err
			}
			items = append(items, models.OrderItem{
				ProductID:    product.ID,
				ProductName:  product.Name,
				ProductImage: product.Image,
				UnitPrice:    product.Price,
				Quantity:     line.Quantity,
			})
			total += product.Price * float64(line.Quantity)
		}

		order = &models.Order{
			UserID:        user.ID,
			Items:         items,
			TotalAmount:   total,
			PaymentMethod: method,
			Address:       user.Address,
			Status:        models.OrderStatusPending,
			CreatedAt:     e.now(),
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}
		return tx.ClearCart(ctx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
