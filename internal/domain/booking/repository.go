package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/fsw-barber/booking-api/internal/models"
)

// Store is the persistence collaborator behind the booking flow.
type Store interface {
	// -------- Barbershop / Service --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		serviceID uint,
		date time.Time,
	) error

	// -------- Booking (read / state change) --------
	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error

	ListBookingsForUser(
		ctx context.Context,
		userID uint,
	) ([]models.Booking, error)
}

// ViewCache is the collaborator behind listing pages: rendered
// payloads are served from it and marked stale after a submission.
type ViewCache interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Put(ctx context.Context, path string, payload []byte) error
	Invalidate(ctx context.Context, path string) error
}

// PaymentLinks creates a checkout link for a confirmed booking.
type PaymentLinks interface {
	LinkFor(ctx context.Context, svc *models.Service, reference string) (string, error)
}

// Clock abstracts time retrieval so the usecases are deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// ===============================
// View paths
// ===============================

// ViewHome is the public home listing.
const ViewHome = "/"

// ViewUserBookings is the per-customer bookings listing.
func ViewUserBookings(userID uint) string {
	return fmt.Sprintf("/bookings/%d", userID)
}
