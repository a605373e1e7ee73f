package booking

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/dto"
	"github.com/fsw-barber/booking-api/internal/locale"
)

// ListForUser serves a customer's bookings page, read-through cached
// under the same view path Submit invalidates.
type ListForUser struct {
	store domain.Store
	views domain.ViewCache
	log   *zap.Logger
}

func NewListForUser(
	store domain.Store,
	views domain.ViewCache,
	log *zap.Logger,
) *ListForUser {
	return &ListForUser{
		store: store,
		views: views,
		log:   log,
	}
}

func (uc *ListForUser) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.BookingListDTO, error) {

	path := domain.ViewUserBookings(userID)

	if cached, err := uc.views.Get(ctx, path); err == nil && cached != nil {
		var out []dto.BookingListDTO
		if json.Unmarshal(cached, &out) == nil {
			return out, nil
		}
	}

	bookings, err := uc.store.ListBookingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		price, err := locale.FormatCurrency(bk.Service.Price)
		if err != nil {
			// Stored prices are finite; treat anything else as data
			// corruption and keep the listing alive.
			uc.log.Warn("unformattable service price",
				zap.Uint("service_id", bk.ServiceID))
			price = ""
		}

		out = append(out, dto.BookingListDTO{
			ID:             bk.ID,
			Reference:      bk.Reference,
			Date:           bk.Date,
			Status:         bk.Status,
			ServiceName:    bk.Service.Name,
			PriceFormatted: price,
			BarbershopName: bk.Barbershop.Name,
			PaymentURL:     bk.PaymentURL,
		})
	}

	if payload, err := json.Marshal(out); err == nil {
		if err := uc.views.Put(ctx, path, payload); err != nil {
			uc.log.Warn("bookings view cache write failed", zap.Error(err))
		}
	}

	return out, nil
}
