// Package cart owns the per-user cart: one line per product, quantity >= 1,
// merged on duplicate adds. Mutations go through single atomic statements in
// the store so two rapid increments from the same client commute instead of
// racing a read-modify-write.
package cart

import (
	"context"
	"time"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
)

// Store is the slice of persistence the engine needs. Absent-line behavior
// is part of the contract: DecrementLine and SetLineQuantity return a
// NotFound error for a missing line, RemoveLine succeeds silently.
type Store interface {
	UserExists(ctx context.Context, userID string) (bool, error)
	CartLines(ctx context.Context, userID string) ([]models.CartLine, error)
	UpsertCartLine(ctx context.Context, userID string, productID uint, delta int) error
	DecrementCartLine(ctx context.Context, userID string, productID uint) error
	SetCartLineQuantity(ctx context.Context, userID string, productID uint, quantity int) error
	RemoveCartLine(ctx context.Context, userID string, productID uint) error
}

// Catalog is the read-only product lookup used for the display join.
type Catalog interface {
	Product(ctx context.Context, id uint) (*models.Product, error)
	ProductsByID(ctx context.Context, ids []uint) (map[uint]models.Product, error)
}

// Line is a cart line joined with current catalog data for display. Price
// here is live catalog price, not a snapshot — snapshots happen at checkout.
type Line struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

type Engine struct {
	store   Store
	catalog Catalog
}

func NewEngine(store Store, catalog Catalog) *Engine {
	return &Engine{store: store, catalog: catalog}
}

// AddOrMerge adds quantity of a product to the user's cart, merging into an
// existing line by summing quantities. The product must exist in the catalog.
func (e *Engine) AddOrMerge(ctx context.Context, userID string, productID uint, quantity int) ([]Line, error) {
	if quantity < 1 {
		return nil, apperr.New(apperr.KindInvalidArgument, "quantity must be at least 1")
	}
	if err := e.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := e.catalog.Product(ctx, productID); err != nil {
		return nil, err
	}
	if err := e.store.UpsertCartLine(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return e.Read(ctx, userID)
}

// Increment bumps an existing line by one, creating it if absent.
func (e *Engine) Increment(ctx context.Context, userID string, productID uint) ([]Line, error) {
	return e.AddOrMerge(ctx, userID, productID, 1)
}

// Decrement lowers an existing line by one; at quantity 1 the line is
// removed. Decrementing an absent line is an error, unlike Remove.
func (e *Engine) Decrement(ctx context.Context, userID string, productID uint) ([]Line, error) {
	if err := e.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := e.store.DecrementCartLine(ctx, userID, productID); err != nil {
		return nil, err
	}
	return e.Read(ctx, userID)
}

// SetQuantity overwrites a line's quantity exactly. Zero removes the line
// (no-op when absent); a positive quantity requires the line to exist —
// creating lines is AddOrMerge's job.
func (e *Engine) SetQuantity(ctx context.Context, userID string, productID uint, quantity int) ([]Line, error) {
	if quantity < 0 {
		return nil, apperr.New(apperr.KindInvalidArgument, "quantity must be an integer >= 0")
	}
	if err := e.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if quantity == 0 {
		if err := e.store.RemoveCartLine(ctx, userID, productID); err != nil {
			return nil, err
		}
		return e.Read(ctx, userID)
	}
	if err := e.store.SetCartLineQuantity(ctx, userID, productID, quantity); err != nil {
		return nil, err
	}
	return e.Read(ctx, userID)
}

// Remove deletes a line. Removing an absent line is not an error.
func (e *Engine) Remove(ctx context.Context, userID string, productID uint) ([]Line, error) {
	if err := e.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	if err := e.store.RemoveCartLine(ctx, userID, productID); err != nil {
		return nil, err
	}
	return e.Read(ctx, userID)
}

// Read returns the cart joined with current catalog data. The join is
// display-only: a product deleted from the catalog leaves its line with zero
// product fields rather than failing the whole read; checkout is where a
// vanished product becomes a hard error.
func (e *Engine) Read(ctx context.Context, userID string) ([]Line, error) {
	lines, err := e.store.CartLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ProductID)
	}
	products, err := e.catalog.ProductsByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		line := Line{ProductID: l.ProductID, Quantity: l.Quantity, AddedAt: l.AddedAt}
		if p, ok := products[l.ProductID]; ok {
			line.Name = p.Name
			line.Price = p.Price
			line.Image = p.Image
		}
		out = append(out, line)
	}
	return out, nil
}

func (e *Engine) checkUser(ctx context.Context, userID string) error {
	ok, err := e.store.UserExists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.New(apperr.KindNotFound, "user not found")
	}
	return nil
}
