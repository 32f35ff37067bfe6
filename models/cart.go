package models

import "time"

// CartLine is one product in a user's cart. The composite unique index keeps
// at most one line per (user, product); merges bump Quantity instead of
// appending. A persisted line always has Quantity >= 1 — a line that would
// reach zero is deleted.
type CartLine struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"-"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}
