package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rlozano/campus-canteen-backend/pkg/codes"
	"github.com/rlozano/campus-canteen-backend/pkg/config"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service is the order lifecycle manager.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*models.Order, error)
	SetStatus(ctx context.Context, orderCode, status string) (*models.Order, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
}

type service struct {
	repo Repository
	cfg  config.OrdersConfig
	now  func() time.Time
}

// NewService wires the order lifecycle manager.
func NewService(repo Repository, cfg config.OrdersConfig) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "orders repository required")
	}
	return &service{repo: repo, cfg: cfg, now: time.Now}, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateOrderRequest) (*models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order needs at least one item")
	}

	if s.cfg.ValidateTotals {
		computed := decimal.Zero
		for _, item := range req.Items {
			computed = computed.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		if !computed.Equal(req.Total) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "total does not match line items").
				WithDetails(map[string]any{
					"submitted": req.Total.String(),
					"computed":  computed.String(),
				})
		}
	}

	order := &models.Order{
		ID:     uuid.New(),
		Code:   codes.Order(s.now()),
		UserID: userID,
		Total:  req.Total,
		Status: enums.OrderStatusPending,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:       uuid.New(),
			OrderID:  order.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Emoji:    item.Emoji,
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create order")
	}
	return order, nil
}

// SetStatus moves an order to the requested status. In strict mode only
// forward transitions through pending, preparing, ready, completed are
// accepted; otherwise staff may overwrite freely.
func (s *service) SetStatus(ctx context.Context, orderCode, status string) (*models.Order, error) {
	code := strings.TrimSpace(orderCode)
	if code == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order code required")
	}
	next, ok := enums.ParseOrderStatus(status)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid order status").
			WithDetails(map[string]any{"status": status})
	}

	order, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	if s.cfg.StrictFlow && next != order.Status && !order.Status.CanAdvanceTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "status cannot move backwards").
			WithDetails(map[string]any{
				"from": order.Status.String(),
				"to":   next.String(),
			})
	}

	if err := s.repo.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update order status")
	}
	order.Status = next
	return order, nil
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	orders, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}
	return orders, nil
}
