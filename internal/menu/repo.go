package menu

import (
	"context"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for menu items.
type Repository interface {
	Create(ctx context.Context, item *models.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	ListAvailable(ctx context.Context, category string) ([]models.MenuItem, error)
	ListAll(ctx context.Context) ([]models.MenuItem, error)
	UpdateFlags(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a menu repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repositoryImpl) ListAvailable(ctx context.Context, category string) ([]models.MenuItem, error) {
	query := r.db.WithContext(ctx).Where("available = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []models.MenuItem
	if err := query.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repositoryImpl) ListAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repositoryImpl) UpdateFlags(ctx context.Context, id uuid.UUID, updates map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.MenuItem{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
