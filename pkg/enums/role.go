package enums

import "strings"

// Role identifies the two account types the canteen serves.
type Role string

const (
	RoleStudent Role = "student"
	RoleOwner   Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleOwner:
		return true
	}
	return false
}

// ParseRole normalizes and validates a raw role string.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if role.IsValid() {
		return role, true
	}
	return "", false
}
