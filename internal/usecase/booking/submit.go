package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fsw-barber/booking-api/internal/audit"
	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/httperr"
	"github.com/fsw-barber/booking-api/internal/locale"
	"github.com/fsw-barber/booking-api/internal/models"
	"github.com/fsw-barber/booking-api/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

// Submit runs one booking attempt end to end: preconditions, timestamp
// composition, the single insert, view invalidation and the
// confirmation summary.
type Submit struct {
	store    domain.Store
	views    domain.ViewCache
	payments domain.PaymentLinks // optional
	audit    *audit.Dispatcher   // optional
	log      *zap.Logger
}

func NewSubmit(
	store domain.Store,
	views domain.ViewCache,
	payments domain.PaymentLinks,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *Submit {
	return &Submit{
		store:    store,
		views:    views,
		payments: payments,
		audit:    auditDispatcher,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Submit) Execute(
	ctx context.Context,
	attempt *domain.Attempt,
) (*domain.Confirmation, error) {

	if err := attempt.Begin(); err != nil {
		return nil, err
	}

	conf, err := uc.run(ctx, attempt)

	// Whatever happened, the attempt lands on a terminal state and
	// goes back to Idle with a cleared selection.
	attempt.Reset()

	return conf, err
}

func (uc *Submit) run(
	ctx context.Context,
	attempt *domain.Attempt,
) (*domain.Confirmation, error) {

	sel := attempt.Selection

	// --------------------------------------------------
	// 1. Preconditions, before any external call
	// --------------------------------------------------
	if !sel.Authenticated {
		_ = attempt.Finish(domain.StateRejectedUnauthenticated)
		return nil, httperr.ErrBusiness(domain.CodeAuthenticationRequired)
	}

	if !sel.Complete() {
		_ = attempt.Finish(domain.StateRejectedIncomplete)
		return nil, httperr.ErrBusiness(domain.CodeIncompleteSelection)
	}

	// --------------------------------------------------
	// 2. Barbershop + service
	// --------------------------------------------------
	shop, err := uc.store.GetBarbershopByID(ctx, sel.BarbershopID)
	if err != nil {
		_ = attempt.Finish(domain.StateFailed)
		return nil, httperr.ErrBusiness(domain.CodeBarbershopNotFound)
	}

	svc, err := uc.store.GetService(ctx, sel.BarbershopID, sel.ServiceID)
	if err != nil {
		_ = attempt.Finish(domain.StateFailed)
		return nil, httperr.ErrBusiness(domain.CodeServiceNotFound)
	}

	// --------------------------------------------------
	// 3. Compose the absolute timestamp: the selection's
	//    calendar day + the chosen HH:mm, in the shop's
	//    timezone. Any time-of-day already on the date is
	//    discarded.
	// --------------------------------------------------
	hm, err := time.Parse("15:04", *sel.Hour)
	if err != nil {
		_ = attempt.Finish(domain.StateRejectedIncomplete)
		return nil, httperr.ErrBusiness(domain.CodeInvalidTime)
	}

	d := *sel.Date
	start := time.Date(
		d.Year(), d.Month(), d.Day(),
		hm.Hour(), hm.Minute(), 0, 0,
		timezone.Location(shop.Timezone),
	)

	// --------------------------------------------------
	// 4. Payment link (optional, before the insert so the
	//    stored record already carries it)
	// --------------------------------------------------
	reference := uuid.NewString()

	var paymentURL string
	if uc.payments != nil {
		paymentURL, err = uc.payments.LinkFor(ctx, svc, reference)
		if err != nil {
			uc.log.Warn("payment link creation failed, booking continues",
				zap.String("reference", reference),
				zap.Error(err))
			paymentURL = ""
		}
	}

	// --------------------------------------------------
	// 5. Single-record insert
	// --------------------------------------------------
	if err := uc.store.AssertNoTimeConflict(ctx, svc.ID, start); err != nil {
		_ = attempt.Finish(domain.StateFailed)
		if httperr.IsBusiness(err, domain.CodeTimeConflict) {
			return nil, err
		}
		uc.log.Error("conflict check failed", zap.Error(err))
		return nil, httperr.ErrBusiness(domain.CodePersistenceFailure)
	}

	bk := &models.Booking{
		Reference:    reference,
		UserID:       sel.UserID,
		ServiceID:    svc.ID,
		BarbershopID: shop.ID,
		Date:         start,
		Status:       string(domain.InitialStatus()),
		PaymentURL:   paymentURL,
	}

	if err := uc.store.CreateBooking(ctx, bk); err != nil {
		_ = attempt.Finish(domain.StateFailed)
		uc.log.Error("booking insert failed",
			zap.Uint("user_id", sel.UserID),
			zap.Uint("service_id", svc.ID),
			zap.Error(err))
		return nil, httperr.ErrBusiness(domain.CodePersistenceFailure)
	}

	// --------------------------------------------------
	// 6. Mark the two listing views stale, once each
	// --------------------------------------------------
	uc.invalidate(ctx, domain.ViewHome)
	uc.invalidate(ctx, domain.ViewUserBookings(sel.UserID))

	// --------------------------------------------------
	// 7. Audit + confirmation
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: shop.ID,
			UserID:       &sel.UserID,
			Action:       "booking_created",
			Entity:       "booking",
			EntityID:     &bk.ID,
		})
	}

	_ = attempt.Finish(domain.StateConfirmed)

	return &domain.Confirmation{
		Reference: reference,
		Message: fmt.Sprintf(
			"%s agendado para %s na %s.",
			svc.Name,
			locale.FormatDateTime(start),
			shop.Name,
		),
		Date:       start,
		PaymentURL: paymentURL,
	}, nil
}

func (uc *Submit) invalidate(ctx context.Context, path string) {
	if err := uc.views.Invalidate(ctx, path); err != nil {
		uc.log.Warn("view invalidation failed",
			zap.String("path", path),
			zap.Error(err))
	}
}
