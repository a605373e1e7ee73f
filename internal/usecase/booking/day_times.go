package booking

import (
	"context"
	"time"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/httperr"
	"github.com/fsw-barber/booking-api/internal/timezone"
)

// DayTimes lists the bookable HH:mm labels of one calendar day at a
// barbershop. The list is recomputed on every call; nothing about it
// is cached or persisted.
type DayTimes struct {
	store domain.Store
}

func NewDayTimes(store domain.Store) *DayTimes {
	return &DayTimes{store: store}
}

func (uc *DayTimes) Execute(
	ctx context.Context,
	barbershopID uint,
	date time.Time,
) ([]string, error) {

	shop, err := uc.store.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeBarbershopNotFound)
	}

	loc := timezone.Location(shop.Timezone)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	return domain.GenerateDayTimeList(day), nil
}
