package booking

import (
	"context"

	"go.uber.org/zap"

	"github.com/fsw-barber/booking-api/internal/audit"
	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/httperr"
	"github.com/fsw-barber/booking-api/internal/models"
	"github.com/fsw-barber/booking-api/internal/timezone"
)

type Cancel struct {
	store domain.Store
	views domain.ViewCache
	audit *audit.Dispatcher // optional
	clock domain.Clock
	log   *zap.Logger
}

func NewCancel(
	store domain.Store,
	views domain.ViewCache,
	auditDispatcher *audit.Dispatcher,
	clock domain.Clock,
	log *zap.Logger,
) *Cancel {
	return &Cancel{
		store: store,
		views: views,
		audit: auditDispatcher,
		clock: clock,
		log:   log,
	}
}

func (uc *Cancel) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	bk, err := uc.store.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeBookingNotFound)
	}

	shop, err := uc.store.GetBarbershopByID(ctx, bk.BarbershopID)
	if err != nil {
		return nil, httperr.ErrBusiness(domain.CodeBarbershopNotFound)
	}

	now := uc.clock.Now().In(timezone.Location(shop.Timezone))

	status, cancelledAt, err := domain.Cancel(domain.Status(bk.Status), bk.CancelledAt, now)
	if err != nil {
		return nil, err
	}
	bk.Status = string(status)
	bk.CancelledAt = cancelledAt

	if err := uc.store.UpdateBooking(ctx, bk); err != nil {
		uc.log.Error("booking cancel failed",
			zap.Uint("booking_id", bk.ID),
			zap.Error(err))
		return nil, httperr.ErrBusiness(domain.CodePersistenceFailure)
	}

	// The listings show status, so both go stale on a cancel too.
	for _, path := range []string{domain.ViewHome, domain.ViewUserBookings(userID)} {
		if err := uc.views.Invalidate(ctx, path); err != nil {
			uc.log.Warn("view invalidation failed",
				zap.String("path", path),
				zap.Error(err))
		}
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: bk.BarbershopID,
			UserID:       &userID,
			Action:       "booking_cancelled",
			Entity:       "booking",
			EntityID:     &bk.ID,
		})
	}

	return bk, nil
}
