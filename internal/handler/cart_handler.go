package handler

import (
	"encoding/json"
	"net/http"

	"shopzone/internal/currency"
	"shopzone/internal/model"
	"shopzone/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests. Every route takes
// the acting user explicitly; there is no implicit session lookup.
type CartHandler struct {
	service   service.CartService
	formatter *currency.Formatter
	logger    zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, formatter *currency.Formatter, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service:   service,
		formatter: formatter,
		logger:    logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is a user's cart with its running totals. DisplayTotal
// is the locale-formatted rendering of TotalAmount.
type cartResponse struct {
	Items        []model.CartItem `json:"items"`
	TotalAmount  int64            `json:"total_amount"`
	DisplayTotal string           `json:"display_total"`
	TotalItems   int              `json:"total_items"`
}

// addItemRequest is the payload for adding a product to a cart.
type addItemRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// updateItemRequest is the payload for changing an item quantity.
type updateItemRequest struct {
	UserID   string `json:"user_id"`
	Quantity int    `json:"quantity"`
}

// Get handles GET /api/cart?user_id={id} requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", h.logger)
		return
	}

	items, err := h.service.Items(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve cart", h.logger)
		return
	}

	totalAmount, err := h.service.TotalAmount(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute cart total", h.logger)
		return
	}

	totalItems, err := h.service.TotalItems(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute cart total", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, cartResponse{
		Items:        items,
		TotalAmount:  totalAmount,
		DisplayTotal: h.formatter.Format(totalAmount),
		TotalItems:   totalItems,
	})
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.service.Add(r.Context(), req.UserID, req.ProductID, req.Quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateItem handles PUT /api/cart/items/{id} requests.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request, itemID string) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", h.logger)
		return
	}

	if err := h.service.UpdateQuantity(r.Context(), req.UserID, itemID, req.Quantity); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/cart/items/{id}?user_id={uid} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request, itemID string) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), userID, itemID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles POST /api/cart/clear?user_id={uid} requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", h.logger)
		return
	}

	if err := h.service.Clear(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear cart", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
