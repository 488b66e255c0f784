package slots

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/codes"
	"github.com/rlozano/campus-canteen-backend/pkg/db"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
	"gorm.io/gorm"
)

// Service is the slot inventory manager. Reservation consumes capacity and
// records the booking in one transaction, so a booking exists exactly when a
// capacity unit was consumed.
type Service interface {
	Reserve(ctx context.Context, userID uuid.UUID, req ReserveRequest) (*models.Booking, error)
	Cancel(ctx context.Context, userID uuid.UUID, bookingCode string) error
	SetGlobalCapacity(ctx context.Context, total int) (int64, error)
	List(ctx context.Context) ([]models.TimeSlot, error)
	ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListAllBookings(ctx context.Context) ([]models.Booking, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type service struct {
	runner txRunner
	repo   Repository
	now    func() time.Time
}

// NewService wires the slot inventory manager.
func NewService(client *db.Client, repo Repository) (Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "db client required")
	}
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "slots repository required")
	}
	return &service{runner: client, repo: repo, now: time.Now}, nil
}

func (s *service) Reserve(ctx context.Context, userID uuid.UUID, req ReserveRequest) (*models.Booking, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	slotTime := strings.TrimSpace(req.TimeSlot)
	if slotTime == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "time slot required")
	}

	var booking *models.Booking
	err := s.runner.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		slot, err := repo.FindByTime(ctx, slotTime)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "time slot not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load time slot")
		}

		reserved, err := repo.TryReserve(ctx, slot.ID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reserve capacity")
		}
		if !reserved {
			return pkgerrors.New(pkgerrors.CodeCapacityExceeded, "time slot is fully booked").
				WithDetails(map[string]any{"time_slot": slotTime})
		}

		booking = &models.Booking{
			ID:       uuid.New(),
			Code:     codes.Booking(s.now()),
			UserID:   userID,
			SlotID:   slot.ID,
			TimeSlot: slot.Time,
			Date:     strings.TrimSpace(req.Date),
			Status:   enums.BookingStatusConfirmed,
		}
		if err := repo.CreateBooking(ctx, booking); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create booking")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel flips a booking to cancelled and returns its capacity unit. Kept on
// the service surface for the upcoming cancellation endpoint.
func (s *service) Cancel(ctx context.Context, userID uuid.UUID, bookingCode string) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	code := strings.TrimSpace(bookingCode)
	if code == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "booking code required")
	}

	return s.runner.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		booking, err := repo.FindBookingByCode(ctx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load booking")
		}
		if booking.UserID != userID {
			return pkgerrors.New(pkgerrors.CodeForbidden, "booking belongs to another user")
		}
		if booking.Status == enums.BookingStatusCancelled {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "booking already cancelled")
		}

		if err := repo.UpdateBookingStatus(ctx, booking.ID, enums.BookingStatusCancelled); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cancel booking")
		}
		if _, err := repo.Release(ctx, booking.SlotID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "release capacity")
		}
		return nil
	})
}

func (s *service) SetGlobalCapacity(ctx context.Context, total int) (int64, error) {
	if total < 1 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "total must be at least 1")
	}
	updated, err := s.repo.SetGlobalCapacity(ctx, total)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update capacity")
	}
	return updated, nil
}

func (s *service) List(ctx context.Context) ([]models.TimeSlot, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list time slots")
	}
	return slots, nil
}

func (s *service) ListBookingsForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	bookings, err := s.repo.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return bookings, nil
}

func (s *service) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.repo.ListAllBookings(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bookings")
	}
	return bookings, nil
}
