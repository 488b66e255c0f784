package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
)

// Booking records one consumed unit of a slot's capacity. Code is the short
// identifier shown to the student (BOOK + 6 digits); the suffix recurs, so
// code lookups resolve to the most recent booking.
type Booking struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	Code      string              `gorm:"column:code;type:text;not null;index"`
	UserID    uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	SlotID    uuid.UUID           `gorm:"column:slot_id;type:uuid;not null"`
	TimeSlot  string              `gorm:"column:time_slot;not null"`
	Date      string              `gorm:"column:date;not null"`
	Status    enums.BookingStatus `gorm:"column:status;not null;default:'confirmed'"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime"`
}
