package slots

import (
	"context"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	"gorm.io/gorm"
)

// Repository exposes persistence helpers for time slots and bookings.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	FindByTime(ctx context.Context, slotTime string) (*models.TimeSlot, error)
	TryReserve(ctx context.Context, slotID uuid.UUID) (bool, error)
	Release(ctx context.Context, slotID uuid.UUID) (bool, error)
	SetGlobalCapacity(ctx context.Context, total int) (int64, error)
	List(ctx context.Context) ([]models.TimeSlot, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	FindBookingByCode(ctx context.Context, code string) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) error
	ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a slots repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) FindByTime(ctx context.Context, slotTime string) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).Where("time = ?", slotTime).First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// TryReserve consumes one unit of capacity with a conditional increment. A
// false return means the slot was full at the moment the row was locked.
func (r *repositoryImpl) TryReserve(ctx context.Context, slotID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ? AND booked < total", slotID).
		UpdateColumn("booked", gorm.Expr("booked + 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Release returns one unit of capacity, guarded so booked never underflows.
func (r *repositoryImpl) Release(ctx context.Context, slotID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ? AND booked > 0", slotID).
		UpdateColumn("booked", gorm.Expr("booked - 1"))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *repositoryImpl) SetGlobalCapacity(ctx context.Context, total int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("1 = 1").
		UpdateColumn("total", total)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *repositoryImpl) List(ctx context.Context) ([]models.TimeSlot, error) {
	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *repositoryImpl) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// FindBookingByCode returns the most recent booking carrying the code;
// suffixes recur across days, so recency disambiguates.
func (r *repositoryImpl) FindBookingByCode(ctx context.Context, code string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		Order("created_at DESC").
		First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repositoryImpl) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status enums.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		UpdateColumn("status", status).Error
}

func (r *repositoryImpl) ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repositoryImpl) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
