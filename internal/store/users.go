package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/example/pickles/internal/models"
	"github.com/example/pickles/internal/utils"
)

// Users verifies and creates storefront accounts.
type Users interface {
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
	Create(ctx context.Context, email, name, password string) (*models.User, error)
}

type gormUsers struct {
	db *gorm.DB
}

// NewUsers returns a Users backed by the given database.
func NewUsers(db *gorm.DB) Users {
	return &gormUsers{db: db}
}

// VerifyCredentials compares the digest of the submitted password
// byte-for-byte against the stored one. ErrUserNotFound and
// ErrCredentialMismatch stay distinct here.
func (s *gormUsers) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if user.Password != utils.HashPassword(password) {
		return nil, ErrCredentialMismatch
	}

	return &user, nil
}

// Create inserts a new account. The existence check and the insert are not
// atomic; concurrent signups for the same email can both pass the check.
func (s *gormUsers) Create(ctx context.Context, email, name, password string) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUser
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		Password: utils.HashPassword(password),
		Status:   models.UserStatusActive,
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return user, nil
}
