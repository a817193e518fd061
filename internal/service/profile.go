package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cardbazaar/order-service/internal/entities"
	"github.com/cardbazaar/order-service/pkg/utils"
)

type ProfileRepo interface {
	UpsertProfile(ctx context.Context, p entities.SellerProfile) (entities.SellerProfile, error)
	GetProfileByWallet(ctx context.Context, walletAddress string) (entities.SellerProfile, error)
}

type profileService struct {
	logger *slog.Logger
	repo   ProfileRepo
}

func NewProfileService(logger *slog.Logger, repo ProfileRepo) *profileService {
	return &profileService{
		logger: logger.With(slog.String("service", "profile")),
		repo:   repo,
	}
}

// SubmitProfile creates or updates the seller's contact profile. The contact
// invariant is the same one orders are held to.
func (s *profileService) SubmitProfile(ctx context.Context, profile entities.SellerProfile) (entities.SellerProfile, error) {
	if strings.TrimSpace(profile.WalletAddress) == "" {
		return entities.SellerProfile{}, fmt.Errorf("%w: wallet address is required", entities.ErrInvalidOrder)
	}
	if err := requireContactMethod(profile.Email, profile.Social); err != nil {
		return entities.SellerProfile{}, err
	}

	var saved entities.SellerProfile
	fn := func() error {
		var err error
		saved, err = s.repo.UpsertProfile(ctx, profile)
		return err
	}
	if err := utils.Retry(retryCfg, fn); err != nil {
		return entities.SellerProfile{}, fmt.Errorf("failed to submit profile: %w", err)
	}

	s.logger.Debug("profile submitted", "wallet", saved.WalletAddress)
	return saved, nil
}

func (s *profileService) GetProfile(ctx context.Context, walletAddress string) (entities.SellerProfile, error) {
	if strings.TrimSpace(walletAddress) == "" {
		return entities.SellerProfile{}, fmt.Errorf("%w: wallet address is required", entities.ErrInvalidOrder)
	}

	var profile entities.SellerProfile
	fn := func() error {
		var err error
		profile, err = s.repo.GetProfileByWallet(ctx, walletAddress)
		return err
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrProfileNotFound); err != nil {
		return entities.SellerProfile{}, err
	}
	return profile, nil
}
