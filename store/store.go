// Package store is the gorm/Postgres repository behind the engines. It
// translates gorm errors into apperr kinds so callers never see driver
// details, and keeps cart mutations as single conditional statements.
package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/checkout"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Transaction satisfies checkout.Store: fn runs against a transaction-scoped
// Store and an error from fn rolls the whole sequence back.
func (s *Store) Transaction(ctx context.Context, fn func(tx checkout.Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
	if err == nil {
		return nil
	}
	// fn's own apperr errors pass through untouched
	if apperr.KindOf(err) != apperr.KindUnknown {
		return err
	}
	return storage(err, "transaction failed")
}

func storage(err error, op string) error {
	if err == nil {
		return nil
	}
	return apperr.Wrap(apperr.KindStorage, err, op)
}

func firstErr(err error, notFoundMsg, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.KindNotFound, notFoundMsg)
	}
	return storage(err, op)
}
