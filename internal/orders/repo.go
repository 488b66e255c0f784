package orders

import (
	"context"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for orders.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) error
	FindByCode(ctx context.Context, code string) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an orders repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByCode returns the most recent order carrying the code; suffixes
// recur across days, so recency disambiguates.
func (r *repositoryImpl) FindByCode(ctx context.Context, code string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("code = ?", code).
		Order("created_at DESC").
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

func (r *repositoryImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repositoryImpl) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
