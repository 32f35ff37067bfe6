package store

import (
	"context"

	"github.com/shopnest/storefront-api/models"
)

func (s *Store) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	err := s.db.WithContext(ctx).Create(admin).Error
	return storage(err, "failed to create admin")
}

func (s *Store) Admin(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		return nil, firstErr(err, "admin not found", "failed to fetch admin")
	}
	return &admin, nil
}

func (s *Store) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.WithContext(ctx).First(&admin, "email = ?", email).Error; err != nil {
		return nil, firstErr(err, "admin not found", "failed to fetch admin")
	}
	return &admin, nil
}
