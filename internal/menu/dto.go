package menu

import "github.com/shopspring/decimal"

// CreateItemRequest captures a new dish. Emoji falls back to the house glyph.
type CreateItemRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=120"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Category    string          `json:"category" validate:"required,min=1,max=60"`
	Description string          `json:"description" validate:"required,max=500"`
	Emoji       string          `json:"emoji"`
}

// UpdateItemRequest toggles the only two owner-mutable flags. Pointers keep
// "not sent" distinct from "set to false".
type UpdateItemRequest struct {
	Available *bool `json:"available"`
	Popular   *bool `json:"popular"`
}

// ListParams filters the student-facing listing.
type ListParams struct {
	Category string
}
