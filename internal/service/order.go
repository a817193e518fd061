package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cardbazaar/order-service/internal/entities"
	"github.com/cardbazaar/order-service/pkg/trm"
	"github.com/cardbazaar/order-service/pkg/utils"
)

type OrderRepo interface {
	// UpsertOrder is idempotent: ON CONFLICT (listing_key) DO UPDATE,
	// leaving status and created_at untouched on conflict.
	UpsertOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, listingKey string, status entities.OrderStatus) (entities.Order, error)
	GetOrderByListingKey(ctx context.Context, listingKey string) (entities.Order, error)
	ListOrdersBySeller(ctx context.Context, sellerAddress string) ([]entities.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerAddress string) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

// OrderFilter selects exactly one query dimension. When several are set the
// most specific one wins (listing key, then seller, then buyer).
type OrderFilter struct {
	ListingKey    string
	SellerAddress string
	BuyerAddress  string
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
	}
}

var retryCfg = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// SubmitOrder validates the submission and performs the idempotent upsert.
// A resubmission for the same listing key overwrites the mutable fields and
// keeps status and created_at from the first submission.
func (s *orderService) SubmitOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	if err := validateOrder(order); err != nil {
		return entities.Order{}, err
	}

	order.Status = entities.StatusPendingShipment
	order.CreatedAt = time.Now().UTC()

	var saved entities.Order
	fn := func() error {
		var err error
		saved, err = s.repo.UpsertOrder(ctx, order)
		return err
	}
	if err := utils.Retry(retryCfg, fn); err != nil {
		return entities.Order{}, fmt.Errorf("failed to submit order: %w", err)
	}

	s.cache.Delete(saved.ListingKey)
	s.logger.Debug("order submitted", "listing_key", saved.ListingKey, "seller", saved.SellerAddress)
	return saved, nil
}

// UpdateStatus overwrites the order status. The previous status is read in
// the same transaction so the transition can be logged consistently; no
// transition graph is enforced here.
func (s *orderService) UpdateStatus(ctx context.Context, listingKey string, status entities.OrderStatus) (entities.Order, error) {
	if !entities.ValidStatus(status) {
		return entities.Order{}, fmt.Errorf("%w: %q", entities.ErrInvalidStatus, status)
	}

	var updated entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		prev, err := s.repo.GetOrderByListingKey(ctx, listingKey)
		if err != nil {
			return err
		}

		updated, err = s.repo.UpdateOrderStatus(ctx, listingKey, status)
		if err != nil {
			return err
		}

		s.logger.Info("order status updated",
			slog.String("listing_key", listingKey),
			slog.String("from", string(prev.Status)),
			slog.String("to", string(status)),
		)
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(listingKey)
	return updated, nil
}

// QueryOrders returns orders for exactly one filter dimension. Listing-key
// lookups go through the cache; seller and buyer queries always hit the
// store and come back newest first.
func (s *orderService) QueryOrders(ctx context.Context, filter OrderFilter) ([]entities.Order, error) {
	switch {
	case filter.ListingKey != "":
		order, err := s.getOrderByListingKey(ctx, filter.ListingKey)
		if err != nil {
			return nil, err
		}
		return []entities.Order{order}, nil
	case filter.SellerAddress != "":
		return s.repo.ListOrdersBySeller(ctx, filter.SellerAddress)
	case filter.BuyerAddress != "":
		return s.repo.ListOrdersByBuyer(ctx, filter.BuyerAddress)
	default:
		return nil, entities.ErrEmptyFilter
	}
}

func (s *orderService) getOrderByListingKey(ctx context.Context, listingKey string) (entities.Order, error) {
	if data, ok := s.cache.Get(listingKey); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.String("listing_key", listingKey), slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByListingKey(ctx, listingKey)
		return err
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("listing_key", listingKey), slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(listingKey, data)
	return order, nil
}

func validateOrder(o entities.Order) error {
	switch {
	case strings.TrimSpace(o.ListingKey) == "":
		return fmt.Errorf("%w: listing key is required", entities.ErrInvalidOrder)
	case strings.TrimSpace(o.AssetRef) == "":
		return fmt.Errorf("%w: asset ref is required", entities.ErrInvalidOrder)
	case o.Price < 0:
		return fmt.Errorf("%w: price must be non-negative", entities.ErrInvalidOrder)
	case strings.TrimSpace(o.BuyerAddress) == "":
		return fmt.Errorf("%w: buyer address is required", entities.ErrInvalidOrder)
	case strings.TrimSpace(o.SellerAddress) == "":
		return fmt.Errorf("%w: seller address is required", entities.ErrInvalidOrder)
	}
	return requireContactMethod(o.BuyerEmail, o.BuyerSocial)
}

// requireContactMethod enforces the shared contact invariant: at least one
// of email and social handle must be non-blank after trimming.
func requireContactMethod(email, social string) error {
	if strings.TrimSpace(email) == "" && strings.TrimSpace(social) == "" {
		return entities.ErrContactMethodRequired
	}
	return nil
}
