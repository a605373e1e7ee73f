package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	domain "github.com/fsw-barber/booking-api/internal/domain/booking"
	"github.com/fsw-barber/booking-api/internal/models"
)

// MercadoPago turns a confirmed booking into a checkout preference so
// the customer can prepay for the service.
type MercadoPago struct {
	prefs preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &MercadoPago{
		prefs: preference.NewClient(cfg),
	}, nil
}

func (mp *MercadoPago) LinkFor(
	ctx context.Context,
	svc *models.Service,
	reference string,
) (string, error) {

	req := preference.Request{
		ExternalReference: reference,
		Items: []preference.ItemRequest{
			{
				Title:       svc.Name,
				Description: svc.Description,
				Quantity:    1,
				CurrencyID:  "BRL",
				UnitPrice:   svc.Price,
			},
		},
	}

	resp, err := mp.prefs.Create(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}

// Compile-time check
var _ domain.PaymentLinks = (*MercadoPago)(nil)
