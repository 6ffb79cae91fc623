package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopzone/internal/currency"
	"shopzone/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		items := []model.CartItem{
			{ID: "item-1", UserID: "user-1", ProductID: "prod-1", Quantity: 2},
		}

		mockService := new(MockCartService)
		mockService.On("Items", mock.Anything, "user-1").Return(items, nil)
		mockService.On("TotalAmount", mock.Anything, "user-1").Return(int64(269800), nil)
		mockService.On("TotalItems", mock.Anything, "user-1").Return(2, nil)

		h := NewCartHandler(mockService, currency.Default(), logger)
		req := httptest.NewRequest(http.MethodGet, "/api/cart?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got cartResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got.Items, 1)
		assert.Equal(t, int64(269800), got.TotalAmount)
		assert.Equal(t, 2, got.TotalItems)
		assert.Equal(t, "₹2,69,800", got.DisplayTotal)
		mockService.AssertExpectations(t)
	})

	t.Run("Missing user_id", func(t *testing.T) {
		mockService := new(MockCartService)
		h := NewCartHandler(mockService, currency.Default(), logger)

		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()

		h.Get(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "Items")
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		mockQuantity   int
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"user_id":"user-1","product_id":"prod-1","quantity":2}`,
			mockQuantity:   2,
			expectService:  true,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Quantity defaults to one",
			body:           `{"user_id":"user-1","product_id":"prod-1"}`,
			mockQuantity:   1,
			expectService:  true,
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Unknown product",
			body:           `{"user_id":"user-1","product_id":"missing","quantity":1}`,
			mockQuantity:   1,
			mockError:      model.ErrProductNotFound,
			expectService:  true,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Negative quantity",
			body:           `{"user_id":"user-1","product_id":"prod-1","quantity":-2}`,
			mockQuantity:   -2,
			mockError:      model.ErrInvalidQuantity,
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCartService)
			if tt.expectService {
				mockService.On("Add", mock.Anything, mock.Anything, mock.Anything, tt.mockQuantity).
					Return(tt.mockError)
			}

			h := NewCartHandler(mockService, currency.Default(), logger)
			req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.AddItem(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestCartHandler_UpdateItem(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCartService)
	mockService.On("UpdateQuantity", mock.Anything, "user-1", "item-1", 7).Return(nil)

	h := NewCartHandler(mockService, currency.Default(), logger)
	req := httptest.NewRequest(http.MethodPut, "/api/cart/items/item-1",
		strings.NewReader(`{"user_id":"user-1","quantity":7}`))
	rec := httptest.NewRecorder()

	h.UpdateItem(rec, req, "item-1")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCartService)
	mockService.On("Remove", mock.Anything, "user-1", "item-1").Return(nil)

	h := NewCartHandler(mockService, currency.Default(), logger)
	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/item-1?user_id=user-1", nil)
	rec := httptest.NewRecorder()

	h.RemoveItem(rec, req, "item-1")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}

func TestCartHandler_Clear(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockCartService)
	mockService.On("Clear", mock.Anything, "user-1").Return(nil)

	h := NewCartHandler(mockService, currency.Default(), logger)
	req := httptest.NewRequest(http.MethodPost, "/api/cart/clear?user_id=user-1", nil)
	rec := httptest.NewRecorder()

	h.Clear(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	mockService.AssertExpectations(t)
}
