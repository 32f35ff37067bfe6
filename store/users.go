package store

import (
	"context"

	"github.com/shopnest/storefront-api/models"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Create(user).Error
	return storage(err, "failed to create user")
}

func (s *Store) User(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, firstErr(err, "user not found", "failed to fetch user")
	}
	return &user, nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, firstErr(err, "user not found", "failed to fetch user")
	}
	return &user, nil
}

func (s *Store) UserExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, storage(err, "failed to check user")
	}
	return count > 0, nil
}

func (s *Store) SaveUser(ctx context.Context, user *models.User) error {
	err := s.db.WithContext(ctx).Save(user).Error
	return storage(err, "failed to save user")
}

// Users lists all users with public fields only, newest first.
func (s *Store) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Select("id", "name", "email", "phone", "created_at").
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, storage(err, "failed to fetch users")
	}
	return users, nil
}
