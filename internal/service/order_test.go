package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/cardbazaar/order-service/internal/entities"
	"github.com/cardbazaar/order-service/internal/service"
	mocks "github.com/cardbazaar/order-service/internal/service/mocks"
	txMocks "github.com/cardbazaar/order-service/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validSubmission() entities.Order {
	return entities.Order{
		ListingKey:    "listing-1",
		AssetRef:      "asset-1",
		Price:         2.5,
		BuyerAddress:  "buyer-wallet",
		SellerAddress: "seller-wallet",
		BuyerEmail:    "buyer@example.com",
	}
}

func TestOrderService_SubmitOrder(t *testing.T) {
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		order        func() entities.Order
		mockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
	}{
		{
			name:  "OK",
			order: validSubmission,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().
					UpsertOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						assert.Equal(t, entities.StatusPendingShipment, o.Status)
						assert.False(t, o.CreatedAt.IsZero())
						return o, nil
					}).Once()
				cache.EXPECT().Delete("listing-1").Return().Once()
			},
		},
		{
			name: "social handle alone satisfies the contact invariant",
			order: func() entities.Order {
				o := validSubmission()
				o.BuyerEmail = ""
				o.BuyerSocial = "@buyer"
				return o
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().
					UpsertOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return o, nil
					}).Once()
				cache.EXPECT().Delete("listing-1").Return().Once()
			},
		},
		{
			name: "no contact method",
			order: func() entities.Order {
				o := validSubmission()
				o.BuyerEmail = "   "
				o.BuyerSocial = ""
				return o
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrContactMethodRequired,
		},
		{
			name: "missing listing key",
			order: func() entities.Order {
				o := validSubmission()
				o.ListingKey = ""
				return o
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name: "negative price",
			order: func() entities.Order {
				o := validSubmission()
				o.Price = -1
				return o
			},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:  "retry works (first attempt fails, second succeeds)",
			order: validSubmission,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().
					UpsertOrder(mock.Anything, mock.Anything).
					Once().Return(entities.Order{}, errors.New("temporary error"))
				repo.EXPECT().
					UpsertOrder(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
						return o, nil
					}).Once()
				cache.EXPECT().Delete("listing-1").Return().Once()
			},
		},
		{
			name:  "store keeps failing",
			order: validSubmission,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().
					UpsertOrder(mock.Anything, mock.Anything).
					Return(entities.Order{}, dbError)
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(logger, tx, repo, cache)

			got, err := svc.SubmitOrder(context.Background(), tc.order())

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entities.StatusPendingShipment, got.Status)
		})
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	existing := entities.Order{ListingKey: "listing-1", Status: entities.StatusPendingShipment}
	shipped := entities.Order{ListingKey: "listing-1", Status: entities.StatusShipped}

	testCases := []struct {
		name         string
		status       entities.OrderStatus
		mockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
		want         entities.Order
	}{
		{
			name:   "OK",
			status: entities.StatusShipped,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().
					GetOrderByListingKey(mock.Anything, "listing-1").
					Return(existing, nil).Once()
				repo.EXPECT().
					UpdateOrderStatus(mock.Anything, "listing-1", entities.StatusShipped).
					Return(shipped, nil).Once()
				cache.EXPECT().Delete("listing-1").Return().Once()
			},
			want: shipped,
		},
		{
			name:         "unknown status",
			status:       entities.OrderStatus("TELEPORTED"),
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name:   "order not found",
			status: entities.StatusShipped,
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().
					GetOrderByListingKey(mock.Anything, "listing-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					}).Maybe()

			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(logger, tx, repo, cache)

			got, err := svc.UpdateStatus(context.Background(), "listing-1", tc.status)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_QueryOrders(t *testing.T) {
	sellerOrders := []entities.Order{
		{ListingKey: "listing-2", SellerAddress: "seller-wallet"},
		{ListingKey: "listing-1", SellerAddress: "seller-wallet"},
	}
	single := entities.Order{ListingKey: "listing-1"}
	cachedData, err := single.Marshal()
	require.NoError(t, err)

	testCases := []struct {
		name         string
		filter       service.OrderFilter
		mockBehavior func(repo *mocks.MockOrderRepo, cache *mocks.MockCache)
		wantErr      error
		want         []entities.Order
	}{
		{
			name:         "empty filter",
			filter:       service.OrderFilter{},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {},
			wantErr:      entities.ErrEmptyFilter,
		},
		{
			name:   "by seller",
			filter: service.OrderFilter{SellerAddress: "seller-wallet"},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().
					ListOrdersBySeller(mock.Anything, "seller-wallet").
					Return(sellerOrders, nil).Once()
			},
			want: sellerOrders,
		},
		{
			name:   "by buyer",
			filter: service.OrderFilter{BuyerAddress: "buyer-wallet"},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				repo.EXPECT().
					ListOrdersByBuyer(mock.Anything, "buyer-wallet").
					Return(nil, nil).Once()
			},
			want: nil,
		},
		{
			name:   "by listing key from cache",
			filter: service.OrderFilter{ListingKey: "listing-1"},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("listing-1").Return(cachedData, true).Once()
			},
			want: []entities.Order{single},
		},
		{
			name:   "by listing key from repo, cached afterwards",
			filter: service.OrderFilter{ListingKey: "listing-1"},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("listing-1").Return(nil, false).Once()
				repo.EXPECT().
					GetOrderByListingKey(mock.Anything, "listing-1").
					Return(single, nil).Once()
				cache.EXPECT().Set("listing-1", cachedData).Return().Once()
			},
			want: []entities.Order{single},
		},
		{
			name:   "listing key not found",
			filter: service.OrderFilter{ListingKey: "missing"},
			mockBehavior: func(repo *mocks.MockOrderRepo, cache *mocks.MockCache) {
				cache.EXPECT().Get("missing").Return(nil, false).Once()
				repo.EXPECT().
					GetOrderByListingKey(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockOrderRepo(t)
			cache := mocks.NewMockCache(t)
			tx := txMocks.NewMockManager(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo, cache)

			svc := service.NewOrderService(logger, tx, repo, cache)

			got, err := svc.QueryOrders(context.Background(), tc.filter)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
