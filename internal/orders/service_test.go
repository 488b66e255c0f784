package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rlozano/campus-canteen-backend/pkg/config"
	"github.com/rlozano/campus-canteen-backend/pkg/db/models"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	pkgerrors "github.com/rlozano/campus-canteen-backend/pkg/errors"
)

type fakeOrdersRepo struct {
	orders []*models.Order
}

func newFakeOrdersRepo() *fakeOrdersRepo {
	return &fakeOrdersRepo{}
}

func (f *fakeOrdersRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeOrdersRepo) Create(ctx context.Context, order *models.Order) error {
	clone := *order
	f.orders = append(f.orders, &clone)
	return nil
}

// FindByCode mirrors the recency disambiguation of the real repository:
// the most recently created order wins when a code suffix recurs.
func (f *fakeOrdersRepo) FindByCode(ctx context.Context, code string) (*models.Order, error) {
	for i := len(f.orders) - 1; i >= 0; i-- {
		if f.orders[i].Code == code {
			clone := *f.orders[i]
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrdersRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	for _, order := range f.orders {
		if order.ID == id {
			order.Status = status
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeOrdersRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrdersRepo) ListAll(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		out = append(out, *order)
	}
	return out, nil
}

func newOrdersTestService(t *testing.T, repo Repository, cfg config.OrdersConfig) *service {
	t.Helper()
	svc, err := NewService(repo, cfg)
	require.NoError(t, err)
	impl, ok := svc.(*service)
	require.True(t, ok)
	impl.now = func() time.Time { return time.UnixMilli(1756700123456) }
	return impl
}

func validCart() CreateOrderRequest {
	return CreateOrderRequest{
		Items: []OrderItemInput{
			{Name: "Coffee", Price: decimal.RequireFromString("2.99"), Quantity: 2, Emoji: "☕"},
			{Name: "Pancakes", Price: decimal.RequireFromString("5.99"), Quantity: 1, Emoji: "🥞"},
		},
		Total: decimal.RequireFromString("11.97"),
	}
}

func TestCreateAssignsCodeAndPendingStatus(t *testing.T) {
	svc := newOrdersTestService(t, newFakeOrdersRepo(), config.OrdersConfig{ValidateTotals: true})

	order, err := svc.Create(context.Background(), uuid.New(), validCart())
	require.NoError(t, err)
	// Last six digits of the fixed unix-millis clock.
	require.Equal(t, "ORD123456", order.Code)
	require.Equal(t, enums.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)
	require.Equal(t, "Coffee", order.Items[0].Name)
	require.True(t, order.Total.Equal(decimal.RequireFromString("11.97")))
}

func TestCreateRejectsMismatchedTotal(t *testing.T) {
	svc := newOrdersTestService(t, newFakeOrdersRepo(), config.OrdersConfig{ValidateTotals: true})

	req := validCart()
	req.Total = decimal.RequireFromString("9.99")

	_, err := svc.Create(context.Background(), uuid.New(), req)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details, ok := typed.Details().(map[string]any)
	require.True(t, ok)
	require.Equal(t, "9.99", details["submitted"])
	require.Equal(t, "11.97", details["computed"])
}

func TestCreateAcceptsAnyTotalWhenValidationOff(t *testing.T) {
	svc := newOrdersTestService(t, newFakeOrdersRepo(), config.OrdersConfig{ValidateTotals: false})

	req := validCart()
	req.Total = decimal.RequireFromString("0.01")

	order, err := svc.Create(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.RequireFromString("0.01")))
}

func TestCreateRequiresItems(t *testing.T) {
	svc := newOrdersTestService(t, newFakeOrdersRepo(), config.OrdersConfig{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateOrderRequest{Total: decimal.NewFromInt(5)})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSetStatusPermissiveAllowsBackwardMoves(t *testing.T) {
	repo := newFakeOrdersRepo()
	svc := newOrdersTestService(t, repo, config.OrdersConfig{ValidateTotals: true})

	created, err := svc.Create(context.Background(), uuid.New(), validCart())
	require.NoError(t, err)

	order, err := svc.SetStatus(context.Background(), created.Code, "ready")
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusReady, order.Status)

	// Legacy behavior: staff may overwrite with an earlier status.
	order, err = svc.SetStatus(context.Background(), created.Code, "pending")
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusPending, order.Status)
}

func TestSetStatusStrictRejectsBackwardMoves(t *testing.T) {
	repo := newFakeOrdersRepo()
	svc := newOrdersTestService(t, repo, config.OrdersConfig{ValidateTotals: true, StrictFlow: true})

	created, err := svc.Create(context.Background(), uuid.New(), validCart())
	require.NoError(t, err)

	order, err := svc.SetStatus(context.Background(), created.Code, "preparing")
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusPreparing, order.Status)

	// Same-status writes stay idempotent even in strict mode.
	_, err = svc.SetStatus(context.Background(), created.Code, "preparing")
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), created.Code, "pending")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeStateConflict, typed.Code())
	details, ok := typed.Details().(map[string]any)
	require.True(t, ok)
	require.Equal(t, "preparing", details["from"])
	require.Equal(t, "pending", details["to"])

	stored, err := repo.FindByCode(context.Background(), created.Code)
	require.NoError(t, err)
	require.Equal(t, enums.OrderStatusPreparing, stored.Status)
}

func TestSetStatusUnknownCodeAndStatus(t *testing.T) {
	svc := newOrdersTestService(t, newFakeOrdersRepo(), config.OrdersConfig{})

	_, err := svc.SetStatus(context.Background(), "ORD000000", "ready")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())

	_, err = svc.SetStatus(context.Background(), "ORD000000", "cooked")
	typed = pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateAllowsRecurringCodeSuffixes(t *testing.T) {
	repo := newFakeOrdersRepo()
	svc := newOrdersTestService(t, repo, config.OrdersConfig{ValidateTotals: true})

	// Two creations exactly 10^6 ms apart share the millis-derived suffix.
	base := time.UnixMilli(1756700123456)
	stamps := []time.Time{base, base.Add(1000000 * time.Millisecond)}
	var calls int
	svc.now = func() time.Time {
		stamp := stamps[calls]
		calls++
		return stamp
	}

	first, err := svc.Create(context.Background(), uuid.New(), validCart())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), uuid.New(), validCart())
	require.NoError(t, err)
	require.Equal(t, first.Code, second.Code)

	// Status updates by the shared code resolve to the most recent order.
	updated, err := svc.SetStatus(context.Background(), second.Code, "ready")
	require.NoError(t, err)
	require.Equal(t, second.ID, updated.ID)

	require.Equal(t, enums.OrderStatusPending, repo.orders[0].Status)
	require.Equal(t, enums.OrderStatusReady, repo.orders[1].Status)
}
