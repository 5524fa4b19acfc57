package handler

import (
	"github.com/poster-shop/checkout-service/internal/entities"
)

// CheckoutRequest is the inbound order payload.
type CheckoutRequest struct {
	Items   []OrderItem `json:"items" validate:"required,min=1,dive"`
	Country string      `json:"country,omitempty"`
}

// OrderItem is a single requested line.
type OrderItem struct {
	ID       string `json:"id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

// CheckoutResponse carries the redirect URL of the hosted payment page.
type CheckoutResponse struct {
	URL string `json:"url"`
}

func CheckoutJSONToEntity(req CheckoutRequest) entities.CheckoutOrder {
	items := make([]entities.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.OrderItem{
			ProductID: it.ID,
			Quantity:  it.Quantity,
		})
	}

	return entities.CheckoutOrder{
		Items:   items,
		Country: req.Country,
	}
}
