package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopzone/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderHandler_Checkout(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Order
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "Success",
			body:           `{"user_id":"user-1","shipping_address":"42 MG Road"}`,
			mockReturn:     &model.Order{ID: "order-1", UserID: "user-1", TotalAmount: 269800, Status: model.OrderStatusPending},
			expectService:  true,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Empty cart",
			body:           `{"user_id":"user-1","shipping_address":"42 MG Road"}`,
			mockError:      model.ErrEmptyCart,
			expectService:  true,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Insufficient stock",
			body:           `{"user_id":"user-1","shipping_address":"42 MG Road"}`,
			mockError:      model.ErrInsufficientStock,
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
			mockService := new(MockOrderService)
			if tt.expectService {
				mockService.On("Checkout", mock.Anything, "user-1", "42 MG Road").
					Return(tt.mockReturn, tt.mockError)
			}

			h := NewOrderHandler(mockService, logger)
			req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Checkout(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				var got model.Order
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, "order-1", got.ID)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestOrderHandler_GetAll(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("All orders", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("All", mock.Anything).
			Return([]model.Order{{ID: "order-1"}, {ID: "order-2"}}, nil)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
		rec := httptest.NewRecorder()

		h.GetAll(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
		mockService.AssertNotCalled(t, "OrdersForUser")
	})

	t.Run("Filtered by user", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("OrdersForUser", mock.Anything, "user-1").
			Return([]model.Order{{ID: "order-1", UserID: "user-1"}}, nil)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		h.GetAll(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
		mockService.AssertNotCalled(t, "All")
	})
}

func TestOrderHandler_GetByID(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Found", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("Get", mock.Anything, "order-1").
			Return(&model.Order{ID: "order-1"}, nil)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders/order-1", nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req, "order-1")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		mockService := new(MockOrderService)
		mockService.On("Get", mock.Anything, "missing").Return(nil, model.ErrOrderNotFound)

		h := NewOrderHandler(mockService, logger)
		req := httptest.NewRequest(http.MethodGet, "/api/orders/missing", nil)
		rec := httptest.NewRecorder()

		h.GetByID(rec, req, "missing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
