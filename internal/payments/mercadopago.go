package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Client gera um link de checkout (preference) do MercadoPago para o
// agendamento, para a barbearia cobrar sinal/antecipado. O pagamento
// é opcional: sem MP_ACCESS_TOKEN a rota fica desligada.
type Client struct {
	pref     preference.Client
	currency string
}

func New(accessToken, currency string) (*Client, error) {
	if accessToken == "" {
		return nil, errors.New("payments: access token is required")
	}
	if currency == "" {
		currency = "BRL"
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: mercadopago config: %w", err)
	}

	return &Client{
		pref:     preference.NewClient(cfg),
		currency: currency,
	}, nil
}

type PaymentLink struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}

func (c *Client) CreateBookingPreference(
	ctx context.Context,
	ap *models.Appointment,
) (*PaymentLink, error) {

	req := preference.Request{
		ExternalReference: ap.PublicID.String(),
		Items: []preference.ItemRequest{
			{
				ID:          strconv.FormatUint(uint64(ap.ServiceID), 10),
				Title:       ap.ServiceName,
				Description: ap.ServiceDescription,
				Quantity:    1,
				UnitPrice:   ap.ServicePrice,
				CurrencyID:  c.currency,
			},
		},
	}

	resp, err := c.pref.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("payments: create preference: %w", err)
	}

	return &PaymentLink{
		PreferenceID: resp.ID,
		InitPoint:    resp.InitPoint,
	}, nil
}
