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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_SubmitProfile(t *testing.T) {
	testCases := []struct {
		name         string
		profile      entities.SellerProfile
		mockBehavior func(repo *mocks.MockProfileRepo)
		wantErr      error
	}{
		{
			name:    "OK",
			profile: entities.SellerProfile{WalletAddress: "seller-wallet", Email: "seller@example.com"},
			mockBehavior: func(repo *mocks.MockProfileRepo) {
				repo.EXPECT().
					UpsertProfile(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, p entities.SellerProfile) (entities.SellerProfile, error) {
						return p, nil
					}).Once()
			},
		},
		{
			name:    "social only",
			profile: entities.SellerProfile{WalletAddress: "seller-wallet", Social: "@seller"},
			mockBehavior: func(repo *mocks.MockProfileRepo) {
				repo.EXPECT().
					UpsertProfile(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, p entities.SellerProfile) (entities.SellerProfile, error) {
						return p, nil
					}).Once()
			},
		},
		{
			name:         "missing wallet",
			profile:      entities.SellerProfile{Email: "seller@example.com"},
			mockBehavior: func(repo *mocks.MockProfileRepo) {},
			wantErr:      entities.ErrInvalidOrder,
		},
		{
			name:         "no contact method",
			profile:      entities.SellerProfile{WalletAddress: "seller-wallet", Email: "  "},
			mockBehavior: func(repo *mocks.MockProfileRepo) {},
			wantErr:      entities.ErrContactMethodRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProfileRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			svc := service.NewProfileService(logger, repo)

			got, err := svc.SubmitProfile(context.Background(), tc.profile)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.profile, got)
		})
	}
}

func TestProfileService_GetProfile(t *testing.T) {
	dbError := errors.New("db error")
	stored := entities.SellerProfile{WalletAddress: "seller-wallet", Email: "seller@example.com"}

	testCases := []struct {
		name         string
		wallet       string
		mockBehavior func(repo *mocks.MockProfileRepo)
		wantErr      error
	}{
		{
			name:   "OK",
			wallet: "seller-wallet",
			mockBehavior: func(repo *mocks.MockProfileRepo) {
				repo.EXPECT().
					GetProfileByWallet(mock.Anything, "seller-wallet").
					Return(stored, nil).Once()
			},
		},
		{
			name:   "not found is not retried",
			wallet: "unknown-wallet",
			mockBehavior: func(repo *mocks.MockProfileRepo) {
				repo.EXPECT().
					GetProfileByWallet(mock.Anything, "unknown-wallet").
					Return(entities.SellerProfile{}, entities.ErrProfileNotFound).Once()
			},
			wantErr: entities.ErrProfileNotFound,
		},
		{
			name:   "transient failure then success",
			wallet: "seller-wallet",
			mockBehavior: func(repo *mocks.MockProfileRepo) {
				repo.EXPECT().
					GetProfileByWallet(mock.Anything, "seller-wallet").
					Once().Return(entities.SellerProfile{}, dbError)
				repo.EXPECT().
					GetProfileByWallet(mock.Anything, "seller-wallet").
					Once().Return(stored, nil)
			},
		},
		{
			name:         "empty wallet",
			wallet:       "  ",
			mockBehavior: func(repo *mocks.MockProfileRepo) {},
			wantErr:      entities.ErrInvalidOrder,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockProfileRepo(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tc.mockBehavior(repo)

			svc := service.NewProfileService(logger, repo)

			got, err := svc.GetProfile(context.Background(), tc.wallet)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored, got)
		})
	}
}
