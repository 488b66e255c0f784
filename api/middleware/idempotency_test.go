package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rlozano/campus-canteen-backend/pkg/logger"
)

type fakeIdempotencyStore struct {
	data map[string]string
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{data: make(map[string]string)}
}

func (f *fakeIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeIdempotencyStore) SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	if _, exists := f.data[key]; exists {
		return false, nil
	}
	f.data[key] = fmt.Sprint(value)
	return true, nil
}

func (f *fakeIdempotencyStore) IdempotencyKey(scope, id string) string {
	return "canteen:idempotency:" + scope + ":" + id
}

func (f *fakeIdempotencyStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

func idempotencyHandler(calls *int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt64(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"data":{"call":%d}}`, n)
	})
}

func postBooking(handler http.Handler, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	req = req.WithContext(WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIdempotencyReplaysStoredResponse(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	store := newFakeIdempotencyStore()
	var calls int64
	handler := Idempotency(store, logg)(idempotencyHandler(&calls))

	first := postBooking(handler, "key-1", `{"timeSlot":"9:00-10:00"}`)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", first.Code)
	}

	second := postBooking(handler, "key-1", `{"timeSlot":"9:00-10:00"}`)
	if second.Code != http.StatusCreated {
		t.Fatalf("expected replayed 201, got %d", second.Code)
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("expected identical replayed body, got %q vs %q", second.Body.String(), first.Body.String())
	}
	if calls != 1 {
		t.Fatalf("expected the handler to run once, ran %d times", calls)
	}
}

func TestIdempotencyRejectsKeyReuseWithDifferentBody(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	store := newFakeIdempotencyStore()
	var calls int64
	handler := Idempotency(store, logg)(idempotencyHandler(&calls))

	postBooking(handler, "key-1", `{"timeSlot":"9:00-10:00"}`)
	rec := postBooking(handler, "key-1", `{"timeSlot":"10:00-11:00"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 on body mismatch, got %d", rec.Code)
	}
	if calls != 1 {
		t.Fatalf("expected the handler to run once, ran %d times", calls)
	}
}

func TestIdempotencyRequiresHeaderOnGuardedRoutes(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	store := newFakeIdempotencyStore()
	var calls int64
	handler := Idempotency(store, logg)(idempotencyHandler(&calls))

	rec := postBooking(handler, "", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without the header, got %d", rec.Code)
	}
	if calls != 0 {
		t.Fatal("handler must not run without an idempotency key")
	}
}

func TestIdempotencyIgnoresUnguardedRoutes(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	store := newFakeIdempotencyStore()
	var calls int64
	handler := Idempotency(store, logg)(idempotencyHandler(&calls))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected pass-through, got %d", rec.Code)
	}
	if calls != 1 {
		t.Fatalf("expected one pass-through call, got %d", calls)
	}
	if len(store.data) != 0 {
		t.Fatal("unguarded routes must not write idempotency records")
	}
}

func TestIdempotencyScopesRecordsPerUser(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test"})
	store := newFakeIdempotencyStore()
	var calls int64
	handler := Idempotency(store, logg)(idempotencyHandler(&calls))

	body := `{"timeSlot":"9:00-10:00"}`
	postBooking(handler, "key-1", body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Idempotency-Key", "key-1")
	req = req.WithContext(WithUserID(req.Context(), "user-2"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected fresh 201 for a different user, got %d", rec.Code)
	}
	if calls != 2 {
		t.Fatalf("expected two distinct handler runs, got %d", calls)
	}
}
