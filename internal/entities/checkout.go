package entities

import (
	"errors"
	"fmt"
)

// Product is a catalog entry. Price is in minor currency units (cents),
// Weight in kilograms.
type Product struct {
	Name   string
	Price  int64
	Weight float64
}

// ShippingZone holds the shipping policy for a region: a flat base fee
// plus a per-kilogram fee, both in minor units.
type ShippingZone struct {
	Base  int64
	PerKg int64
}

type OrderItem struct {
	ProductID string
	Quantity  int64
}

type CheckoutOrder struct {
	Items   []OrderItem
	Country string

	// IdempotencyKey is forwarded to the payment provider when set.
	IdempotencyKey string
}

// PriceLine is a single line item sent to the payment provider.
// UnitAmount is in minor units.
type PriceLine struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

// CheckoutSession is the provider-hosted payment flow. Only the redirect
// URL and the opaque ID are consumed.
type CheckoutSession struct {
	ID  string
	URL string
}

var (
	ErrNoItems     = errors.New("No items sent")
	ErrNoSecretKey = errors.New("Stripe secret key is not configured")
)

// UnknownProductError rejects an order line whose id is not in the catalog.
// The message is part of the HTTP contract.
type UnknownProductError struct {
	ID string
}

func (e UnknownProductError) Error() string {
	return fmt.Sprintf("Unknown product ID: %s", e.ID)
}
