package handler

import (
	"encoding/json"
	"net/http"

	"shopzone/internal/service"

	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist HTTP requests.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

// wishlistAddRequest is the payload for adding a wishlist item.
type wishlistAddRequest struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
}

// List handles GET /api/wishlist?user_id={id} requests.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", h.logger)
		return
	}

	products, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve wishlist", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

// Add handles POST /api/wishlist requests.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req wishlistAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", h.logger)
		return
	}

	if err := h.service.Add(r.Context(), req.UserID, req.ProductID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /api/wishlist/{productID}?user_id={uid} requests.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request, productID string) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "user_id is required", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), userID, productID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
