package reporting

import (
	"context"
	"database/sql"
	"time"

	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Repository exposes the aggregate reads behind the dashboard.
type Repository interface {
	OrderTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error)
	CountBookings(ctx context.Context, from, to time.Time) (int64, error)
	CountActiveNotices(ctx context.Context, now time.Time) (int64, error)
	PopularItems(ctx context.Context) ([]models.MenuItem, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a reporting repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

// OrderTotals returns revenue and order count over the half-open window
// [from, to).
func (r *repositoryImpl) OrderTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error) {
	var row struct {
		Revenue sql.NullString
		Count   int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, 0, err
	}
	if !row.Revenue.Valid || row.Revenue.String == "" {
		return decimal.Zero, row.Count, nil
	}
	revenue, err := decimal.NewFromString(row.Revenue.String)
	if err != nil {
		return decimal.Zero, 0, err
	}
	return revenue, row.Count, nil
}

func (r *repositoryImpl) CountBookings(ctx context.Context, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&count).Error
	return count, err
}

// CountActiveNotices honors the expiry field: a notice with no expiry is
// always active, an expired one is not.
func (r *repositoryImpl) CountActiveNotices(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Notice{}).
		Where("expiry IS NULL OR expiry > ?", now).
		Count(&count).Error
	return count, err
}

func (r *repositoryImpl) PopularItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).
		Where("popular = ?", true).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
