package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cardbazaar/order-service/internal/entities"
	"github.com/cardbazaar/order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"listing_key", "asset_ref", "card_ref", "price",
	"buyer_address", "seller_address", "buyer_email", "buyer_social",
	"status", "created_at",
}

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// UpsertOrder inserts the order or, when a row for the listing key already
// exists, overwrites the mutable fields. Status and created_at are preserved
// on conflict, so a resubmission can never reset the lifecycle.
func (r *postgresRepo) UpsertOrder(ctx context.Context, o entities.Order) (entities.Order, error) {
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ListingKey, o.AssetRef, nullString(o.CardRef), o.Price,
			o.BuyerAddress, o.SellerAddress, nullString(o.BuyerEmail), nullString(o.BuyerSocial),
			string(o.Status), o.CreatedAt,
		).
		Suffix(`ON CONFLICT (listing_key) DO UPDATE SET
			asset_ref = EXCLUDED.asset_ref,
			card_ref = EXCLUDED.card_ref,
			price = EXCLUDED.price,
			buyer_address = EXCLUDED.buyer_address,
			seller_address = EXCLUDED.seller_address,
			buyer_email = EXCLUDED.buyer_email,
			buyer_social = EXCLUDED.buyer_social
		RETURNING ` + columnList()).
		MustSql()

	var saved Order
	if err := r.getContext(ctx, &saved, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to upsert order: %w", err)
	}
	return OrderToEntity(saved), nil
}

func (r *postgresRepo) UpdateOrderStatus(ctx context.Context, listingKey string, status entities.OrderStatus) (entities.Order, error) {
	query, args := r.qb.Update("orders").
		Set("status", string(status)).
		Where(sq.Eq{"listing_key": listingKey}).
		Suffix("RETURNING " + columnList()).
		MustSql()

	var updated Order
	err := r.getContext(ctx, &updated, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to update order status: %w", err)
	}
	return OrderToEntity(updated), nil
}

func (r *postgresRepo) GetOrderByListingKey(ctx context.Context, listingKey string) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"listing_key": listingKey}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return OrderToEntity(order), nil
}

func (r *postgresRepo) ListOrdersBySeller(ctx context.Context, sellerAddress string) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"seller_address": sellerAddress})
}

func (r *postgresRepo) ListOrdersByBuyer(ctx context.Context, buyerAddress string) ([]entities.Order, error) {
	return r.listOrders(ctx, sq.Eq{"buyer_address": buyerAddress})
}

func (r *postgresRepo) listOrders(ctx context.Context, where sq.Eq) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("created_at DESC").
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, OrderToEntity(order))
	}
	return result, nil
}

func (r *postgresRepo) UpsertProfile(ctx context.Context, p entities.SellerProfile) (entities.SellerProfile, error) {
	query, args := r.qb.Insert("seller_profiles").
		Columns("wallet_address", "email", "social").
		Values(p.WalletAddress, nullString(p.Email), nullString(p.Social)).
		Suffix(`ON CONFLICT (wallet_address) DO UPDATE SET
			email = EXCLUDED.email,
			social = EXCLUDED.social
		RETURNING wallet_address, email, social`).
		MustSql()

	var saved SellerProfile
	if err := r.getContext(ctx, &saved, query, args...); err != nil {
		return entities.SellerProfile{}, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return ProfileToEntity(saved), nil
}

func (r *postgresRepo) GetProfileByWallet(ctx context.Context, walletAddress string) (entities.SellerProfile, error) {
	query, args := r.qb.Select("wallet_address", "email", "social").
		From("seller_profiles").
		Where(sq.Eq{"wallet_address": walletAddress}).
		MustSql()

	var profile SellerProfile
	err := r.getContext(ctx, &profile, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.SellerProfile{}, entities.ErrProfileNotFound
	}
	if err != nil {
		return entities.SellerProfile{}, fmt.Errorf("failed to get profile: %w", err)
	}
	return ProfileToEntity(profile), nil
}

func columnList() string {
	list := orderColumns[0]
	for _, c := range orderColumns[1:] {
		list += ", " + c
	}
	return list
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.SelectContext(ctx, dest, query, args...)
	}
	return r.db.SelectContext(ctx, dest, query, args...)
}
