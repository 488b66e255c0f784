package enums

import "strings"

// BookingStatus tracks a time-slot reservation.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// ParseBookingStatus normalizes and validates a raw status string.
func ParseBookingStatus(value string) (BookingStatus, bool) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.IsValid() {
		return status, true
	}
	return "", false
}
