package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
)

// User represents the canonical identity entity. Usernames are stored
// lowercase; the same username may not exist twice regardless of role.
type User struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	Name         string     `gorm:"column:name;not null"`
	Email        string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	Username     string     `gorm:"column:username;type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Role         enums.Role `gorm:"column:role;not null"`
	StudentID    string     `gorm:"column:student_id;not null;default:''"`
	Phone        string     `gorm:"column:phone;not null;default:''"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
