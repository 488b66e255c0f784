package notices

import (
	"context"

	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for notices.
type Repository interface {
	Create(ctx context.Context, notice *models.Notice) error
	List(ctx context.Context) ([]models.Notice, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a notices repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, notice *models.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.Notice, error) {
	var notices []models.Notice
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}
