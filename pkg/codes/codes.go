// Package codes generates the short human-facing identifiers printed on
// receipts and pickup screens. Codes embed the last six digits of the
// creation timestamp in unix milliseconds. The suffix recurs every ~16.7
// minutes, so codes are display identifiers, not unique keys: lookups by
// code resolve to the most recent record carrying it.
package codes

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const (
	BookingPrefix   = "BOOK"
	OrderPrefix     = "ORD"
	StudentIDPrefix = "STU"
)

// Booking returns a booking code such as BOOK483920.
func Booking(now time.Time) string {
	return BookingPrefix + timeSuffix(now)
}

// Order returns an order code such as ORD483920.
func Order(now time.Time) string {
	return OrderPrefix + timeSuffix(now)
}

// StudentID returns STU followed by four random digits. Collisions are not
// checked; the identifier is display-only.
func StudentID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("generating student id: %w", err)
	}
	return fmt.Sprintf("%s%d", StudentIDPrefix, 1000+n.Int64()), nil
}

func timeSuffix(now time.Time) string {
	millis := now.UnixMilli()
	return fmt.Sprintf("%06d", millis%1000000)
}
