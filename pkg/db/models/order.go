package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Order is a placed food order. Code is the short identifier shown on the
// pickup screen (ORD + 6 digits); the suffix recurs, so code lookups resolve
// to the most recent order.
type Order struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Code      string            `gorm:"column:code;type:text;not null;index"`
	UserID    uuid.UUID         `gorm:"column:user_id;type:uuid;not null;index"`
	Items     []OrderItem       `gorm:"foreignKey:OrderID;references:ID"`
	Total     decimal.Decimal   `gorm:"column:total;type:numeric(10,2);not null"`
	Status    enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// OrderItem snapshots a line at purchase time; later menu edits do not
// rewrite history.
type OrderItem struct {
	ID       uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"column:order_id;type:uuid;not null;index"`
	Name     string          `gorm:"column:name;not null"`
	Price    decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Quantity int             `gorm:"column:quantity;not null"`
	Emoji    string          `gorm:"column:emoji;not null;default:''"`
}
