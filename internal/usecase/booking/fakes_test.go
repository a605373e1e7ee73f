package booking

import (
	"context"
	"errors"
	"time"

	"github.com/fsw-barber/booking-api/internal/models"
)

// ===============================
// Store fake
// ===============================

type fakeStore struct {
	shop    *models.Barbershop
	svc     *models.Service
	booking *models.Booking

	createErr   error
	conflictErr error
	listErr     error

	calls    []string
	created  []*models.Booking
	updated  []*models.Booking
	listing  []models.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		shop: &models.Barbershop{
			ID:       1,
			Name:     "Vintage Barber",
			Slug:     "vintage-barber",
			Timezone: "America/Sao_Paulo",
		},
		svc: &models.Service{
			ID:           2,
			BarbershopID: 1,
			Name:         "Corte de Cabelo",
			Price:        60,
			Active:       true,
		},
	}
}

func (f *fakeStore) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	f.calls = append(f.calls, "GetBarbershopByID")
	if f.shop == nil || f.shop.ID != id {
		return nil, errors.New("record not found")
	}
	return f.shop, nil
}

func (f *fakeStore) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	f.calls = append(f.calls, "GetService")
	if f.svc == nil || f.svc.ID != serviceID || f.svc.BarbershopID != barbershopID {
		return nil, errors.New("record not found")
	}
	return f.svc, nil
}

func (f *fakeStore) CreateBooking(_ context.Context, bk *models.Booking) error {
	f.calls = append(f.calls, "CreateBooking")
	if f.createErr != nil {
		return f.createErr
	}
	bk.ID = uint(len(f.created) + 1)
	f.created = append(f.created, bk)
	return nil
}

func (f *fakeStore) AssertNoTimeConflict(_ context.Context, _ uint, _ time.Time) error {
	f.calls = append(f.calls, "AssertNoTimeConflict")
	return f.conflictErr
}

func (f *fakeStore) GetBookingForUser(_ context.Context, bookingID, userID uint) (*models.Booking, error) {
	f.calls = append(f.calls, "GetBookingForUser")
	if f.booking == nil || f.booking.ID != bookingID || f.booking.UserID != userID {
		return nil, errors.New("record not found")
	}
	return f.booking, nil
}

func (f *fakeStore) UpdateBooking(_ context.Context, bk *models.Booking) error {
	f.calls = append(f.calls, "UpdateBooking")
	f.updated = append(f.updated, bk)
	return nil
}

func (f *fakeStore) ListBookingsForUser(_ context.Context, _ uint) ([]models.Booking, error) {
	f.calls = append(f.calls, "ListBookingsForUser")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listing, nil
}

// ===============================
// View cache fake
// ===============================

type fakeViews struct {
	data        map[string][]byte
	invalidated []string
}

func newFakeViews() *fakeViews {
	return &fakeViews{data: map[string][]byte{}}
}

func (f *fakeViews) Get(_ context.Context, path string) ([]byte, error) {
	return f.data[path], nil
}

func (f *fakeViews) Put(_ context.Context, path string, payload []byte) error {
	f.data[path] = payload
	return nil
}

func (f *fakeViews) Invalidate(_ context.Context, path string) error {
	f.invalidated = append(f.invalidated, path)
	delete(f.data, path)
	return nil
}

// ===============================
// Payment links fake
// ===============================

type fakePayments struct {
	url string
	err error
}

func (f *fakePayments) LinkFor(_ context.Context, _ *models.Service, _ string) (string, error) {
	return f.url, f.err
}

// ===============================
// Clock fake
// ===============================

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }
