package enums

import "testing"

func TestOrderStatusForwardTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusPreparing, true},
		{OrderStatusPending, OrderStatusCompleted, true},
		{OrderStatusPreparing, OrderStatusReady, true},
		{OrderStatusReady, OrderStatusCompleted, true},
		{OrderStatusPreparing, OrderStatusPending, false},
		{OrderStatusCompleted, OrderStatusReady, false},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatus("burnt"), OrderStatusReady, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanAdvanceTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestParseOrderStatusNormalizes(t *testing.T) {
	status, ok := ParseOrderStatus("  Ready ")
	if !ok || status != OrderStatusReady {
		t.Fatalf("expected ready, got %q ok=%v", status, ok)
	}
	if _, ok := ParseOrderStatus("cooked"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("OWNER")
	if !ok || role != RoleOwner {
		t.Fatalf("expected owner, got %q ok=%v", role, ok)
	}
	if _, ok := ParseRole("admin"); ok {
		t.Fatal("expected unknown role to be rejected")
	}
}

func TestParseNoticeType(t *testing.T) {
	noticeType, ok := ParseNoticeType("Special")
	if !ok || noticeType != NoticeTypeSpecial {
		t.Fatalf("expected special, got %q ok=%v", noticeType, ok)
	}
	if _, ok := ParseNoticeType("emergency"); ok {
		t.Fatal("expected unknown type to be rejected")
	}
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("Cancelled")
	if !ok || status != BookingStatusCancelled {
		t.Fatalf("expected cancelled, got %q ok=%v", status, ok)
	}
	if _, ok := ParseBookingStatus("held"); ok {
		t.Fatal("expected unknown status to be rejected")
	}
}
