package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot is a bounded-capacity pickup window. Booked only moves through
// conditional updates so 0 <= booked <= total holds under concurrency.
type TimeSlot struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Time      string    `gorm:"column:time;type:text;not null;uniqueIndex"`
	Label     string    `gorm:"column:label;not null"`
	Booked    int       `gorm:"column:booked;not null;default:0"`
	Total     int       `gorm:"column:total;not null;default:20"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
