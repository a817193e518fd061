package repo

import (
	"database/sql"
	"time"

	"github.com/cardbazaar/order-service/internal/entities"
)

type Order struct {
	ListingKey    string         `db:"listing_key"`
	AssetRef      string         `db:"asset_ref"`
	CardRef       sql.NullString `db:"card_ref"`
	Price         float64        `db:"price"`
	BuyerAddress  string         `db:"buyer_address"`
	SellerAddress string         `db:"seller_address"`
	BuyerEmail    sql.NullString `db:"buyer_email"`
	BuyerSocial   sql.NullString `db:"buyer_social"`
	Status        string         `db:"status"`
	CreatedAt     time.Time      `db:"created_at"`
}

type SellerProfile struct {
	WalletAddress string         `db:"wallet_address"`
	Email         sql.NullString `db:"email"`
	Social        sql.NullString `db:"social"`
}

func OrderToEntity(o Order) entities.Order {
	return entities.Order{
		ListingKey:    o.ListingKey,
		AssetRef:      o.AssetRef,
		CardRef:       nullStringToString(o.CardRef),
		Price:         o.Price,
		BuyerAddress:  o.BuyerAddress,
		SellerAddress: o.SellerAddress,
		BuyerEmail:    nullStringToString(o.BuyerEmail),
		BuyerSocial:   nullStringToString(o.BuyerSocial),
		Status:        entities.OrderStatus(o.Status),
		CreatedAt:     o.CreatedAt,
	}
}

func ProfileToEntity(p SellerProfile) entities.SellerProfile {
	return entities.SellerProfile{
		WalletAddress: p.WalletAddress,
		Email:         nullStringToString(p.Email),
		Social:        nullStringToString(p.Social),
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
