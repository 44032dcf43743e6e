package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/pickles/internal/models"
)

// Records is the append-only store for accepted submissions.
type Records interface {
	InsertOrder(ctx context.Context, order *models.Order) (string, error)
	InsertContact(ctx context.Context, contact *models.Contact) (string, error)
	Health(ctx context.Context) error
}

type gormRecords struct {
	db *gorm.DB
}

// NewRecords returns a Records backed by the given database.
func NewRecords(db *gorm.DB) Records {
	return &gormRecords{db: db}
}

func (s *gormRecords) InsertOrder(ctx context.Context, order *models.Order) (string, error) {
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		zap.S().Errorf("order insert failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return order.ID.String(), nil
}

func (s *gormRecords) InsertContact(ctx context.Context, contact *models.Contact) (string, error) {
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		zap.S().Errorf("contact insert failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return contact.ID.String(), nil
}

func (s *gormRecords) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
