package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardbazaar/order-service/internal/entities"
	"github.com/cardbazaar/order-service/internal/handler"
	"github.com/cardbazaar/order-service/internal/handler/mocks"
	"github.com/cardbazaar/order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, *mocks.MockOrderService, *mocks.MockProfileService) {
	t.Helper()

	orders := mocks.NewMockOrderService(t)
	profiles := mocks.NewMockProfileService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	handler.NewHTTPHandler(logger, orders, profiles).Init(r)
	return r, orders, profiles
}

func TestHTTPHandler_SubmitOrder(t *testing.T) {
	validBody := handler.SubmitOrderRequest{
		ListingKey:    "listing-1",
		AssetRef:      "asset-1",
		Price:         2.5,
		BuyerAddress:  "buyer-wallet",
		SellerAddress: "seller-wallet",
		BuyerEmail:    "buyer@example.com",
	}

	testCases := []struct {
		name         string
		body         any
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name: "OK",
			body: validBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					SubmitOrder(mock.Anything, handler.SubmitOrderToEntity(validBody)).
					Return(entities.Order{ListingKey: "listing-1", Status: entities.StatusPendingShipment}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing listing key fails validation",
			body: handler.SubmitOrderRequest{
				AssetRef:      "asset-1",
				BuyerAddress:  "buyer-wallet",
				SellerAddress: "seller-wallet",
				BuyerEmail:    "buyer@example.com",
			},
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "malformed email fails validation",
			body: func() handler.SubmitOrderRequest {
				b := validBody
				b.BuyerEmail = "not-an-email"
				return b
			}(),
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "no contact method",
			body: func() handler.SubmitOrderRequest {
				b := validBody
				b.BuyerEmail = ""
				return b
			}(),
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					SubmitOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, entities.ErrContactMethodRequired).
					Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: validBody,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					SubmitOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:         "invalid body",
			body:         "not json",
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders, _ := newTestRouter(t)
			tc.mockBehavior(orders)

			body, err := json.Marshal(tc.body)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var resp handler.Order
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, "listing-1", resp.ListingKey)
				assert.Equal(t, string(entities.StatusPendingShipment), resp.Status)
			}
		})
	}
}

func TestHTTPHandler_QueryOrders(t *testing.T) {
	sellerOrders := []entities.Order{
		{ListingKey: "listing-2", SellerAddress: "seller-wallet", Status: entities.StatusPendingShipment},
		{ListingKey: "listing-1", SellerAddress: "seller-wallet", Status: entities.StatusShipped},
	}

	t.Run("no filter", func(t *testing.T) {
		r, orders, _ := newTestRouter(t)
		orders.EXPECT().
			QueryOrders(mock.Anything, service.OrderFilter{}).
			Return(nil, entities.ErrEmptyFilter).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("by seller returns a list", func(t *testing.T) {
		r, orders, _ := newTestRouter(t)
		orders.EXPECT().
			QueryOrders(mock.Anything, service.OrderFilter{SellerAddress: "seller-wallet"}).
			Return(sellerOrders, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/orders?seller=seller-wallet", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []handler.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "listing-2", resp[0].ListingKey)
	})

	t.Run("by listing key returns a bare object", func(t *testing.T) {
		r, orders, _ := newTestRouter(t)
		orders.EXPECT().
			QueryOrders(mock.Anything, service.OrderFilter{ListingKey: "listing-1"}).
			Return([]entities.Order{{ListingKey: "listing-1", Status: entities.StatusShipped}}, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/orders?listing_key=listing-1", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.Order
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "listing-1", resp.ListingKey)
	})

	t.Run("listing key not found", func(t *testing.T) {
		r, orders, _ := newTestRouter(t)
		orders.EXPECT().
			QueryOrders(mock.Anything, service.OrderFilter{ListingKey: "missing"}).
			Return(nil, entities.ErrOrderNotFound).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/orders?listing_key=missing", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		status       string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
	}{
		{
			name:   "OK",
			status: "SHIPPED",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					UpdateStatus(mock.Anything, "listing-1", entities.StatusShipped).
					Return(entities.Order{ListingKey: "listing-1", Status: entities.StatusShipped}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "unknown status",
			status: "TELEPORTED",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					UpdateStatus(mock.Anything, "listing-1", entities.OrderStatus("TELEPORTED")).
					Return(entities.Order{}, entities.ErrInvalidStatus).
					Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "order not found",
			status: "SHIPPED",
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					UpdateStatus(mock.Anything, "listing-1", entities.StatusShipped).
					Return(entities.Order{}, entities.ErrOrderNotFound).
					Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, orders, _ := newTestRouter(t)
			tc.mockBehavior(orders)

			body, err := json.Marshal(handler.UpdateStatusRequest{Status: tc.status})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPatch, "/orders/listing-1/status", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHTTPHandler_Profiles(t *testing.T) {
	t.Run("submit OK", func(t *testing.T) {
		r, _, profiles := newTestRouter(t)
		reqBody := handler.SubmitProfileRequest{WalletAddress: "seller-wallet", Email: "seller@example.com"}
		profiles.EXPECT().
			SubmitProfile(mock.Anything, handler.SubmitProfileToEntity(reqBody)).
			Return(entities.SellerProfile{WalletAddress: "seller-wallet", Email: "seller@example.com"}, nil).
			Once()

		body, err := json.Marshal(reqBody)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.Profile
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "seller-wallet", resp.WalletAddress)
	})

	t.Run("submit without contact method", func(t *testing.T) {
		r, _, profiles := newTestRouter(t)
		profiles.EXPECT().
			SubmitProfile(mock.Anything, mock.Anything).
			Return(entities.SellerProfile{}, entities.ErrContactMethodRequired).
			Once()

		body, err := json.Marshal(handler.SubmitProfileRequest{WalletAddress: "seller-wallet"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/profiles", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("get OK", func(t *testing.T) {
		r, _, profiles := newTestRouter(t)
		profiles.EXPECT().
			GetProfile(mock.Anything, "seller-wallet").
			Return(entities.SellerProfile{WalletAddress: "seller-wallet", Social: "@seller"}, nil).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/profiles/seller-wallet", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp handler.Profile
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "@seller", resp.Social)
	})

	t.Run("get not found", func(t *testing.T) {
		r, _, profiles := newTestRouter(t)
		profiles.EXPECT().
			GetProfile(mock.Anything, "unknown-wallet").
			Return(entities.SellerProfile{}, entities.ErrProfileNotFound).
			Once()

		req := httptest.NewRequest(http.MethodGet, "/profiles/unknown-wallet", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
