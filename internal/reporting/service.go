package reporting

import (
	"context"
	"time"

	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Service computes same-day operational metrics for the owner dashboard.
type Service interface {
	Dashboard(ctx context.Context, asOf time.Time) (*Dashboard, error)
}

type service struct {
	repo Repository
}

// NewService wires reporting dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "reporting repository required")
	}
	return &service{repo: repo}, nil
}

// Dashboard attributes activity to the calendar day containing asOf in the
// server's local timezone, over the half-open window [midnight, midnight+24h).
func (s *service) Dashboard(ctx context.Context, asOf time.Time) (*Dashboard, error) {
	start := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	end := start.AddDate(0, 0, 1)

	revenue, orderCount, err := s.repo.OrderTotals(ctx, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate orders")
	}

	bookingCount, err := s.repo.CountBookings(ctx, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count bookings")
	}

	noticeCount, err := s.repo.CountActiveNotices(ctx, asOf)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count notices")
	}

	popular, err := s.repo.PopularItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load popular items")
	}
	if popular == nil {
		popular = []models.MenuItem{}
	}

	if revenue.IsZero() {
		revenue = decimal.Zero
	}

	return &Dashboard{
		TodayRevenue:  revenue,
		TodayOrders:   orderCount,
		TodayBookings: bookingCount,
		ActiveNotices: noticeCount,
		PopularItems:  popular,
	}, nil
}
