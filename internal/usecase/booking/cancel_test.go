package booking

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/httperr"
	"github.com/fsw-barber/booking-api/internal/models"
)

func confirmedBooking() *models.Booking {
	return &models.Booking{
		ID:           10,
		Reference:    "ref-10",
		UserID:       7,
		ServiceID:    2,
		BarbershopID: 1,
		Date:         time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local),
		Status:       string(domain.StatusConfirmed),
	}
}

func TestCancelConfirmedBooking(t *testing.T) {
	store := newFakeStore()
	store.booking = confirmedBooking()
	views := newFakeViews()

	now := time.Date(2024, 5, 9, 18, 0, 0, 0, time.UTC)
	uc := NewCancel(store, views, nil, fixedClock{now}, zap.NewNop())

	bk, err := uc.Execute(context.Background(), 7, 10)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if bk.Status != string(domain.StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", bk.Status)
	}
	if bk.CancelledAt == nil || !bk.CancelledAt.Equal(now) {
		t.Fatalf("cancelled_at = %v, want %v", bk.CancelledAt, now)
	}
	if len(store.updated) != 1 {
		t.Fatalf("updated %d bookings, want 1", len(store.updated))
	}
	if len(views.invalidated) != 2 {
		t.Fatalf("invalidated = %v, want home + user bookings", views.invalidated)
	}
}

func TestCancelAlreadyCancelled(t *testing.T) {
	store := newFakeStore()
	bk := confirmedBooking()
	bk.Status = string(domain.StatusCancelled)
	store.booking = bk

	uc := NewCancel(store, newFakeViews(), nil, domain.RealClock{}, zap.NewNop())

	_, err := uc.Execute(context.Background(), 7, 10)
	if !httperr.IsBusiness(err, domain.CodeInvalidState) {
		t.Fatalf("err = %v, want %s", err, domain.CodeInvalidState)
	}
	if len(store.updated) != 0 {
		t.Fatal("cancelled booking must not be updated again")
	}
}

func TestCancelUnknownBooking(t *testing.T) {
	store := newFakeStore()
	uc := NewCancel(store, newFakeViews(), nil, domain.RealClock{}, zap.NewNop())

	_, err := uc.Execute(context.Background(), 7, 99)
	if !httperr.IsBusiness(err, domain.CodeBookingNotFound) {
		t.Fatalf("err = %v, want %s", err, domain.CodeBookingNotFound)
	}
}
