package handler

import (
	"encoding/json"
	"net/http"

	"shopzone/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles the admin dashboard and order management.
type AdminHandler struct {
	admin  service.AdminService
	orders service.OrderService
	logger zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(admin service.AdminService, orders service.OrderService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  admin,
		orders: orders,
		logger: logger.With().Str("handler", "admin").Logger(),
	}
}

// statusRequest is the payload for changing an order status.
type statusRequest struct {
	Status string `json:"status"`
}

// Stats handles GET /api/admin/stats requests.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.DashboardStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute dashboard stats", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// UpdateOrderStatus handles PUT /api/admin/orders/{id}/status requests.
// An unknown order id succeeds without effect, mirroring the store's
// no-op contract.
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request, orderID string) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.orders.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
