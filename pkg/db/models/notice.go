package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
)

// Notice is an owner-authored announcement. No update or delete surface.
type Notice struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Title     string           `gorm:"column:title;not null"`
	Message   string           `gorm:"column:message;not null"`
	Type      enums.NoticeType `gorm:"column:type;not null;default:'info'"`
	Urgent    bool             `gorm:"column:urgent;not null;default:false"`
	Expiry    *time.Time       `gorm:"column:expiry"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
}
