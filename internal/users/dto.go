package users

import (
	"time"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
)

// UserDTO is the transport shape that omits sensitive credentials.
type UserDTO struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Role      enums.Role `json:"role"`
	StudentID string     `json:"student_id,omitempty"`
	Phone     string     `json:"phone,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Name         string
	Email        string
	Username     string
	PasswordHash string
	Role         enums.Role
	StudentID    string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Username:  u.Username,
		Role:      u.Role,
		StudentID: u.StudentID,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		ID:           uuid.New(),
		Name:         c.Name,
		Email:        c.Email,
		Username:     c.Username,
		PasswordHash: c.PasswordHash,
		Role:         c.Role,
		StudentID:    c.StudentID,
	}
}

// UpdateProfileDTO carries the only two profile fields a user may change.
type UpdateProfileDTO struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Phone string `json:"phone" validate:"max=32"`
}
