package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/poster-shop/checkout-service/internal/catalog"
	"github.com/poster-shop/checkout-service/internal/entities"
)

// PaymentProvider creates hosted payment sessions with an external
// processor. Ready reports whether the provider is usable at all, so a
// missing credential can be detected before any request body is read.
type PaymentProvider interface {
	Ready() error
	CreateSession(ctx context.Context, lines []entities.PriceLine, idempotencyKey string) (entities.CheckoutSession, error)
}

type checkoutService struct {
	logger   *slog.Logger
	products catalog.Catalog
	zones    catalog.Zones
	provider PaymentProvider
}

func NewCheckoutService(logger *slog.Logger, products catalog.Catalog, zones catalog.Zones, provider PaymentProvider) *checkoutService {
	return &checkoutService{
		logger:   logger.With(slog.String("service", "checkout")),
		products: products,
		zones:    zones,
		provider: provider,
	}
}

func (s *checkoutService) Ready() error {
	return s.provider.Ready()
}

// Checkout prices the order and creates a payment session. The provider
// is called at most once; there is no retry, the provider is the
// transactional boundary.
func (s *checkoutService) Checkout(ctx context.Context, order entities.CheckoutOrder) (entities.CheckoutSession, error) {
	lines, err := s.priceOrder(order)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	session, err := s.provider.CreateSession(ctx, lines, order.IdempotencyKey)
	if err != nil {
		return entities.CheckoutSession{}, err
	}

	s.logger.DebugContext(ctx, "checkout session created",
		slog.String("session_id", session.ID),
		slog.Int("lines", len(lines)),
	)
	return session, nil
}

// priceOrder turns order items into provider line items and appends the
// shipping line last. Pure function of the immutable catalog and zones.
func (s *checkoutService) priceOrder(order entities.CheckoutOrder) ([]entities.PriceLine, error) {
	if len(order.Items) == 0 {
		return nil, entities.ErrNoItems
	}

	lines := make([]entities.PriceLine, 0, len(order.Items)+1)
	var totalWeight float64

	for _, item := range order.Items {
		product, ok := s.products.Get(item.ProductID)
		if !ok {
			return nil, entities.UnknownProductError{ID: item.ProductID}
		}

		totalWeight += product.Weight * float64(item.Quantity)
		lines = append(lines, entities.PriceLine{
			Name:       product.Name,
			UnitAmount: product.Price,
			Quantity:   item.Quantity,
		})
	}

	zone := s.zones.Resolve(order.Country)
	lines = append(lines, entities.PriceLine{
		Name:       "Shipping",
		UnitAmount: shippingCost(zone, totalWeight),
		Quantity:   1,
	})

	return lines, nil
}

// shippingCost rounds half-up to a whole minor unit, fractional cents are
// invalid for the provider.
func shippingCost(zone entities.ShippingZone, totalWeight float64) int64 {
	return int64(math.Round(float64(zone.Base) + totalWeight*float64(zone.PerKg)))
}
