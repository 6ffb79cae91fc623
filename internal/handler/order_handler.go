package handler

import (
	"encoding/json"
	"net/http"

	"shopzone/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles checkout and order-history HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// checkoutRequest is the payload for placing an order.
type checkoutRequest struct {
	UserID          string `json:"user_id"`
	ShippingAddress string `json:"shipping_address"`
}

// Checkout handles POST /api/checkout requests.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Checkout(r.Context(), req.UserID, req.ShippingAddress)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

// GetAll handles GET /api/orders requests. With a user_id query
// parameter the result is that user's history; without one it is every
// order.
func (h *OrderHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	if userID != "" {
		orders, err := h.service.OrdersForUser(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, orders)
		return
	}

	orders, err := h.service.All(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve orders", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request, orderID string) {
	order, err := h.service.Get(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
