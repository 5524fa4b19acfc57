package provider

import (
	"context"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"github.com/poster-shop/checkout-service/internal/config"
	"github.com/poster-shop/checkout-service/internal/entities"
)

// Single-currency shop, minor units everywhere.
const currency = "usd"

// StripeProvider creates hosted Checkout sessions. It carries its own
// key and backend instead of the SDK-global ones so the timeout and
// credential stay per-instance.
type StripeProvider struct {
	sessions   session.Client
	key        string
	successURL string
	cancelURL  string
}

func NewStripeProvider(cfg config.Stripe) *StripeProvider {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})

	return &StripeProvider{
		sessions:   session.Client{B: backend, Key: cfg.SecretKey},
		key:        cfg.SecretKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (p *StripeProvider) Ready() error {
	if p.key == "" {
		return entities.ErrNoSecretKey
	}
	return nil
}

// CreateSession submits all price lines as a one-time payment session and
// returns its redirect URL. Called at most once per checkout.
func (p *StripeProvider) CreateSession(ctx context.Context, lines []entities.PriceLine, idempotencyKey string) (entities.CheckoutSession, error) {
	if err := p.Ready(); err != nil {
		return entities.CheckoutSession{}, err
	}

	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, line := range lines {
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(currency),
				UnitAmount: stripe.Int64(line.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(line.Name),
				},
			},
			Quantity: stripe.Int64(line.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          items,
		SuccessURL:         stripe.String(p.successURL),
		CancelURL:          stripe.String(p.cancelURL),
	}
	params.Context = ctx
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	s, err := p.sessions.New(params)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	return entities.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}
