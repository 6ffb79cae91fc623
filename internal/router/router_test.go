package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopzone/internal/currency"
	"shopzone/internal/handler"
	"shopzone/internal/model"
	"shopzone/internal/service"
	"shopzone/internal/storage"
	"shopzone/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "router-test-key"

// newTestRouter wires real services over a memory-backed store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.Nop()
	ts := time.Now().UTC()

	st := store.New(storage.NewMemory(), logger)
	require.NoError(t, st.Init(context.Background(),
		[]model.Category{{ID: "cat-1", Name: "Electronics", CreatedAt: ts}},
		[]model.Product{{ID: "prod-1", Name: "Phone", Price: 134900, CategoryID: "cat-1", StockQuantity: 10, CreatedAt: ts, UpdatedAt: ts}},
	))

	catalogService := service.NewCatalogService(st, logger)
	orderService := service.NewOrderService(st, logger)

	h := Handlers{
		Product:  handler.NewProductHandler(catalogService, logger),
		Category: handler.NewCategoryHandler(catalogService, logger),
		Auth:     handler.NewAuthHandler(service.NewAuthService(st, logger), logger),
		Cart:     handler.NewCartHandler(service.NewCartService(st, logger), currency.Default(), logger),
		Order:    handler.NewOrderHandler(orderService, logger),
		Admin:    handler.NewAdminHandler(service.NewAdminService(st, logger), orderService, logger),
		Wishlist: handler.NewWishlistHandler(service.NewWishlistService(st, logger), logger),
	}

	return New(h, testAPIKey, logger)
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, rec.Body.String())
}

func TestRouter_StorefrontRoutesAreOpen(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{name: "list products", method: http.MethodGet, path: "/api/products", expectedStatus: http.StatusOK},
		{name: "get product", method: http.MethodGet, path: "/api/products/prod-1", expectedStatus: http.StatusOK},
		{name: "missing product", method: http.MethodGet, path: "/api/products/nope", expectedStatus: http.StatusNotFound},
		{name: "list categories", method: http.MethodGet, path: "/api/categories", expectedStatus: http.StatusOK},
		{name: "get cart", method: http.MethodGet, path: "/api/cart?user_id=user-1", expectedStatus: http.StatusOK},
		{name: "add cart item", method: http.MethodPost, path: "/api/cart/items", body: `{"user_id":"user-1","product_id":"prod-1","quantity":1}`, expectedStatus: http.StatusNoContent},
		{name: "list orders", method: http.MethodGet, path: "/api/orders", expectedStatus: http.StatusOK},
		{name: "wishlist", method: http.MethodGet, path: "/api/wishlist?user_id=user-1", expectedStatus: http.StatusOK},
		{name: "signup", method: http.MethodPost, path: "/api/auth/signup", body: `{"email":"a@b.com","password":"secret123"}`, expectedStatus: http.StatusCreated},
		{name: "wrong method", method: http.MethodPatch, path: "/api/products", expectedStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRouter_CatalogMutationsRequireAPIKey(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "create product", method: http.MethodPost, path: "/api/products", body: `{"name":"X","price":1,"category_id":"cat-1"}`},
		{name: "update product", method: http.MethodPut, path: "/api/products/prod-1", body: `{"name":"X"}`},
		{name: "delete product", method: http.MethodDelete, path: "/api/products/prod-1"},
		{name: "create category", method: http.MethodPost, path: "/api/categories", body: `{"name":"X"}`},
		{name: "admin stats", method: http.MethodGet, path: "/api/admin/stats"},
		{name: "order status", method: http.MethodPut, path: "/api/admin/orders/order-1/status", body: `{"status":"shipped"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name+" without key", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})

		t.Run(tt.name+" with key", func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("X-API-Key", testAPIKey)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_CheckoutFlow(t *testing.T) {
	router := newTestRouter(t)

	add := httptest.NewRequest(http.MethodPost, "/api/cart/items",
		strings.NewReader(`{"user_id":"user-1","product_id":"prod-1","quantity":2}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, add)
	require.Equal(t, http.StatusNoContent, rec.Code)

	checkout := httptest.NewRequest(http.MethodPost, "/api/checkout",
		strings.NewReader(`{"user_id":"user-1","shipping_address":"42 MG Road"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, checkout)
	require.Equal(t, http.StatusCreated, rec.Code)

	orders := httptest.NewRequest(http.MethodGet, "/api/orders?user_id=user-1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, orders)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_amount":269800`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
