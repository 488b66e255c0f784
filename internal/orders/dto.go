package orders

import "github.com/shopspring/decimal"

// OrderItemInput is one line of a submitted order; values are snapshots from
// the client's cart, stored verbatim.
type OrderItemInput struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Quantity int             `json:"quantity" validate:"required,min=1"`
	Emoji    string          `json:"emoji"`
}

// CreateOrderRequest carries the cart and the client-computed total.
type CreateOrderRequest struct {
	Items []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	Total decimal.Decimal  `json:"total" validate:"required"`
}

// SetStatusRequest updates an order's kitchen status by external code.
type SetStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
