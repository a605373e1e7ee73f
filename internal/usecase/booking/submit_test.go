package booking

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/httperr"
	"github.com/fsw-barber/booking-api/internal/timezone"
)

func validSelection() domain.Selection {
	date := time.Date(2024, 5, 10, 8, 13, 0, 0, time.UTC) // stale time-of-day on purpose
	hour := "14:30"
	return domain.Selection{
		BarbershopID:  1,
		ServiceID:     2,
		UserID:        7,
		Date:          &date,
		Hour:          &hour,
		Authenticated: true,
	}
}

func newSubmit(store *fakeStore, views *fakeViews, payments domain.PaymentLinks) *Submit {
	return NewSubmit(store, views, payments, nil, zap.NewNop())
}

func TestSubmitUnauthenticatedNeverTouchesStore(t *testing.T) {
	store := newFakeStore()
	views := newFakeViews()
	uc := newSubmit(store, views, nil)

	sel := validSelection()
	sel.Authenticated = false
	attempt := domain.NewAttempt(sel)

	_, err := uc.Execute(context.Background(), attempt)
	if !httperr.IsBusiness(err, domain.CodeAuthenticationRequired) {
		t.Fatalf("err = %v, want %s", err, domain.CodeAuthenticationRequired)
	}

	if len(store.calls) != 0 {
		t.Fatalf("store was called: %v", store.calls)
	}
	if len(views.invalidated) != 0 {
		t.Fatalf("views were invalidated: %v", views.invalidated)
	}
	if attempt.State != domain.StateIdle {
		t.Fatalf("attempt state = %q, want idle after reset", attempt.State)
	}
}

func TestSubmitIncompleteSelectionIsNoOp(t *testing.T) {
	for name, mutate := range map[string]func(*domain.Selection){
		"missing hour": func(s *domain.Selection) { s.Hour = nil },
		"missing date": func(s *domain.Selection) { s.Date = nil },
	} {
		store := newFakeStore()
		views := newFakeViews()
		uc := newSubmit(store, views, nil)

		sel := validSelection()
		mutate(&sel)

		_, err := uc.Execute(context.Background(), domain.NewAttempt(sel))
		if !httperr.IsBusiness(err, domain.CodeIncompleteSelection) {
			t.Fatalf("%s: err = %v, want %s", name, err, domain.CodeIncompleteSelection)
		}
		if len(store.calls) != 0 {
			t.Fatalf("%s: store was called: %v", name, store.calls)
		}
	}
}

func TestSubmitComposesTimestampInShopTimezone(t *testing.T) {
	store := newFakeStore()
	views := newFakeViews()
	uc := newSubmit(store, views, nil)

	conf, err := uc.Execute(context.Background(), domain.NewAttempt(validSelection()))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(store.created) != 1 {
		t.Fatalf("created %d bookings, want 1", len(store.created))
	}

	loc := timezone.Location("America/Sao_Paulo")
	want := time.Date(2024, 5, 10, 14, 30, 0, 0, loc)

	got := store.created[0].Date
	if !got.Equal(want) {
		t.Fatalf("booking date = %v, want %v", got, want)
	}
	if !conf.Date.Equal(want) {
		t.Fatalf("confirmation date = %v, want %v", conf.Date, want)
	}
}

func TestSubmitInvalidatesExactlyTwoViews(t *testing.T) {
	store := newFakeStore()
	views := newFakeViews()
	uc := newSubmit(store, views, nil)

	if _, err := uc.Execute(context.Background(), domain.NewAttempt(validSelection())); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	want := []string{domain.ViewHome, domain.ViewUserBookings(7)}
	if !reflect.DeepEqual(views.invalidated, want) {
		t.Fatalf("invalidated = %v, want %v", views.invalidated, want)
	}
}

func TestSubmitConfirmationSummary(t *testing.T) {
	store := newFakeStore()
	uc := newSubmit(store, newFakeViews(), nil)

	conf, err := uc.Execute(context.Background(), domain.NewAttempt(validSelection()))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if conf.Reference == "" {
		t.Fatal("confirmation must carry a reference")
	}

	for _, part := range []string{"Corte de Cabelo", "10 de maio às 14:30", "Vintage Barber"} {
		if !strings.Contains(conf.Message, part) {
			t.Errorf("message %q is missing %q", conf.Message, part)
		}
	}
}

func TestSubmitPersistenceFailure(t *testing.T) {
	store := newFakeStore()
	store.createErr = errors.New("connection reset")
	views := newFakeViews()
	uc := newSubmit(store, views, nil)

	_, err := uc.Execute(context.Background(), domain.NewAttempt(validSelection()))
	if !httperr.IsBusiness(err, domain.CodePersistenceFailure) {
		t.Fatalf("err = %v, want %s", err, domain.CodePersistenceFailure)
	}

	if len(views.invalidated) != 0 {
		t.Fatalf("views invalidated on failure: %v", views.invalidated)
	}
}

func TestSubmitTimeConflict(t *testing.T) {
	store := newFakeStore()
	store.conflictErr = httperr.ErrBusiness(domain.CodeTimeConflict)
	views := newFakeViews()
	uc := newSubmit(store, views, nil)

	_, err := uc.Execute(context.Background(), domain.NewAttempt(validSelection()))
	if !httperr.IsBusiness(err, domain.CodeTimeConflict) {
		t.Fatalf("err = %v, want %s", err, domain.CodeTimeConflict)
	}

	if len(store.created) != 0 {
		t.Fatal("booking created despite conflict")
	}
	if len(views.invalidated) != 0 {
		t.Fatalf("views invalidated on conflict: %v", views.invalidated)
	}
}

func TestSubmitAttachesPaymentLink(t *testing.T) {
	store := newFakeStore()
	uc := newSubmit(store, newFakeViews(), &fakePayments{url: "https://mp.example/pref/123"})

	conf, err := uc.Execute(context.Background(), domain.NewAttempt(validSelection()))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if conf.PaymentURL != "https://mp.example/pref/123" {
		t.Fatalf("confirmation payment url = %q", conf.PaymentURL)
	}
	if store.created[0].PaymentURL != conf.PaymentURL {
		t.Fatal("stored booking should carry the payment link")
	}
}

func TestSubmitPaymentLinkFailureIsNonFatal(t *testing.T) {
	store := newFakeStore()
	uc := newSubmit(store, newFakeViews(), &fakePayments{err: errors.New("mp unavailable")})

	conf, err := uc.Execute(context.Background(), domain.NewAttempt(validSelection()))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if conf.PaymentURL != "" {
		t.Fatalf("payment url should be empty, got %q", conf.PaymentURL)
	}
	if len(store.created) != 1 {
		t.Fatal("booking must still be created")
	}
}

func TestSubmitBusyAttemptIsRejected(t *testing.T) {
	store := newFakeStore()
	uc := newSubmit(store, newFakeViews(), nil)

	attempt := domain.NewAttempt(validSelection())
	if err := attempt.Begin(); err != nil {
		t.Fatal(err)
	}

	_, err := uc.Execute(context.Background(), attempt)
	if !httperr.IsBusiness(err, domain.CodeSubmissionInProgress) {
		t.Fatalf("err = %v, want %s", err, domain.CodeSubmissionInProgress)
	}
	if len(store.calls) != 0 {
		t.Fatalf("store was called: %v", store.calls)
	}
}
