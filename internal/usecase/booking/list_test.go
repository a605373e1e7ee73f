package booking

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/models"
)

func TestListForUserReadThroughCache(t *testing.T) {
	store := newFakeStore()
	store.listing = []models.Booking{
		{
			ID:        10,
			Reference: "ref-10",
			UserID:    7,
			Date:      time.Date(2024, 5, 10, 14, 30, 0, 0, time.Local),
			Status:    string(domain.StatusConfirmed),
			Service:   models.Service{Name: "Corte de Cabelo", Price: 60},
			Barbershop: models.Barbershop{
				Name: "Vintage Barber",
			},
		},
	}
	views := newFakeViews()
	uc := NewListForUser(store, views, zap.NewNop())

	first, err := uc.Execute(context.Background(), 7)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("got %d bookings, want 1", len(first))
	}
	if first[0].PriceFormatted != "R$ 60,00" {
		t.Fatalf("price = %q, want formatted BRL", first[0].PriceFormatted)
	}

	storeCalls := len(store.calls)

	second, err := uc.Execute(context.Background(), 7)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if len(store.calls) != storeCalls {
		t.Fatalf("second call hit the store: %v", store.calls)
	}
	if len(second) != 1 || second[0].Reference != "ref-10" {
		t.Fatalf("cached listing mismatch: %+v", second)
	}
}

func TestListForUserCacheInvalidatedBySubmit(t *testing.T) {
	store := newFakeStore()
	views := newFakeViews()

	list := NewListForUser(store, views, zap.NewNop())
	if _, err := list.Execute(context.Background(), 7); err != nil {
		t.Fatal(err)
	}
	if views.data[domain.ViewUserBookings(7)] == nil {
		t.Fatal("listing should be cached after first read")
	}

	submit := newSubmit(store, views, nil)
	if _, err := submit.Execute(context.Background(), domain.NewAttempt(validSelection())); err != nil {
		t.Fatal(err)
	}

	if views.data[domain.ViewUserBookings(7)] != nil {
		t.Fatal("submit must drop the cached bookings listing")
	}
}
