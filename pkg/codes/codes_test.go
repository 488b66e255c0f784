package codes

import (
	"regexp"
	"testing"
	"time"
)

func TestBookingAndOrderCodesUseMillisSuffix(t *testing.T) {
	now := time.UnixMilli(1756700123456)

	if got := Booking(now); got != "BOOK123456" {
		t.Fatalf("unexpected booking code %q", got)
	}
	if got := Order(now); got != "ORD123456" {
		t.Fatalf("unexpected order code %q", got)
	}
}

func TestTimeSuffixPadsToSixDigits(t *testing.T) {
	now := time.UnixMilli(1756700000042)
	if got := Order(now); got != "ORD000042" {
		t.Fatalf("expected zero-padded suffix, got %q", got)
	}
}

func TestStudentIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^STU[1-9]\d{3}$`)
	for i := 0; i < 50; i++ {
		id, err := StudentID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("unexpected student id %q", id)
		}
	}
}
