package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/poster-shop/checkout-service/internal/entities"
	"github.com/poster-shop/checkout-service/pkg/utils"
)

type CheckoutService interface {
	Ready() error
	Checkout(ctx context.Context, order entities.CheckoutOrder) (entities.CheckoutSession, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewHTTPHandler(logger *slog.Logger, svc CheckoutService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Post("/checkout", h.CreateCheckout)
}

// CreateCheckout prices the posted order and responds with the redirect
// URL of a freshly created payment session. The credential check runs
// before the body is read so a misconfigured deployment fails the same
// way for every request.
func (h *HTTPHandler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.svc.Ready(); err != nil {
		h.logger.ErrorContext(ctx, "checkout rejected, provider not configured", slog.Any("error", err))
		checkoutsFailed.WithLabelValues("config").Inc()
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var req CheckoutRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		checkoutsFailed.WithLabelValues("client").Inc()
		utils.WriteError(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	if len(req.Items) == 0 {
		checkoutsFailed.WithLabelValues("client").Inc()
		utils.WriteError(w, "No items sent", http.StatusBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		checkoutsFailed.WithLabelValues("client").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	order := CheckoutJSONToEntity(req)
	order.IdempotencyKey = r.Header.Get("Idempotency-Key")

	session, err := h.svc.Checkout(ctx, order)

	var unknown entities.UnknownProductError
	if errors.As(err, &unknown) {
		checkoutsFailed.WithLabelValues("client").Inc()
		utils.WriteError(w, unknown.Error(), http.StatusBadRequest)
		return
	}

	if errors.Is(err, entities.ErrNoItems) {
		checkoutsFailed.WithLabelValues("client").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create checkout session", slog.Any("error", err))
		checkoutsFailed.WithLabelValues("provider").Inc()
		utils.WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sessionsCreated.Inc()
	utils.WriteJSON(w, CheckoutResponse{URL: session.URL}, http.StatusOK)
}
