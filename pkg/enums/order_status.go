package enums

import "strings"

// OrderStatus tracks an order through the kitchen.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
)

// orderStatusRank orders the lifecycle for forward-only transition checks.
var orderStatusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPreparing: 1,
	OrderStatusReady:     2,
	OrderStatusCompleted: 3,
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanAdvanceTo reports whether moving from s to next is a forward transition.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, okFrom := orderStatusRank[s]
	to, okTo := orderStatusRank[next]
	return okFrom && okTo && to > from
}

// ParseOrderStatus normalizes and validates a raw status string.
func ParseOrderStatus(value string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.IsValid() {
		return status, true
	}
	return "", false
}
