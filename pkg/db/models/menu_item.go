package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem is a purchasable dish. Only Available and Popular are mutable
// after creation.
type MenuItem struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Category    string          `gorm:"column:category;not null"`
	Description string          `gorm:"column:description;not null"`
	Emoji       string          `gorm:"column:emoji;not null;default:'🍽️'"`
	Available   bool            `gorm:"column:available;not null;default:true"`
	Popular     bool            `gorm:"column:popular;not null;default:false"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
