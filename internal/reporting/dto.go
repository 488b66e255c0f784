package reporting

import (
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// Dashboard aggregates the owner's same-day view. Field names mirror the
// client dashboard payload.
type Dashboard struct {
	TodayRevenue  decimal.Decimal   `json:"todayRevenue"`
	TodayOrders   int64             `json:"todayOrders"`
	TodayBookings int64             `json:"todayBookings"`
	ActiveNotices int64             `json:"activeNotices"`
	PopularItems  []models.MenuItem `json:"popularItems"`
}
