package notices

import "time"

// CreateNoticeRequest captures an owner announcement.
type CreateNoticeRequest struct {
	Title   string     `json:"title" validate:"required,min=1,max=200"`
	Message string     `json:"message" validate:"required,max=2000"`
	Type    string     `json:"type"`
	Urgent  bool       `json:"urgent"`
	Expiry  *time.Time `json:"expiry"`
}
