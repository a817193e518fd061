package handler

import (
	"time"

	"github.com/cardbazaar/order-service/internal/entities"
)

// SubmitOrderRequest is a buyer's order submission. At least one of
// buyer_email and buyer_social must be non-blank.
type SubmitOrderRequest struct {
	ListingKey    string  `json:"listing_key" validate:"required"`
	AssetRef      string  `json:"asset_ref" validate:"required"`
	CardRef       string  `json:"card_ref,omitempty"`
	Price         float64 `json:"price" validate:"gte=0"`
	BuyerAddress  string  `json:"buyer_address" validate:"required"`
	SellerAddress string  `json:"seller_address" validate:"required"`
	BuyerEmail    string  `json:"buyer_email,omitempty" validate:"omitempty,email"`
	BuyerSocial   string  `json:"buyer_social,omitempty"`
}

// UpdateStatusRequest carries the target lifecycle status.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// SubmitProfileRequest creates or updates a seller contact profile.
type SubmitProfileRequest struct {
	WalletAddress string `json:"wallet_address" validate:"required"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Social        string `json:"social,omitempty"`
}

// Order is the wire representation of an order record.
type Order struct {
	ListingKey    string    `json:"listing_key"`
	AssetRef      string    `json:"asset_ref"`
	CardRef       string    `json:"card_ref,omitempty"`
	Price         float64   `json:"price"`
	BuyerAddress  string    `json:"buyer_address"`
	SellerAddress string    `json:"seller_address"`
	BuyerEmail    string    `json:"buyer_email,omitempty"`
	BuyerSocial   string    `json:"buyer_social,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Profile is the wire representation of a seller contact profile.
type Profile struct {
	WalletAddress string `json:"wallet_address"`
	Email         string `json:"email,omitempty"`
	Social        string `json:"social,omitempty"`
}

func OrderEntityToJSON(o entities.Order) Order {
	return Order{
		ListingKey:    o.ListingKey,
		AssetRef:      o.AssetRef,
		CardRef:       o.CardRef,
		Price:         o.Price,
		BuyerAddress:  o.BuyerAddress,
		SellerAddress: o.SellerAddress,
		BuyerEmail:    o.BuyerEmail,
		BuyerSocial:   o.BuyerSocial,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	}
}

func SubmitOrderToEntity(r SubmitOrderRequest) entities.Order {
	return entities.Order{
		ListingKey:    r.ListingKey,
		AssetRef:      r.AssetRef,
		CardRef:       r.CardRef,
		Price:         r.Price,
		BuyerAddress:  r.BuyerAddress,
		SellerAddress: r.SellerAddress,
		BuyerEmail:    r.BuyerEmail,
		BuyerSocial:   r.BuyerSocial,
	}
}

func ProfileEntityToJSON(p entities.SellerProfile) Profile {
	return Profile{
		WalletAddress: p.WalletAddress,
		Email:         p.Email,
		Social:        p.Social,
	}
}

func SubmitProfileToEntity(r SubmitProfileRequest) entities.SellerProfile {
	return entities.SellerProfile{
		WalletAddress: r.WalletAddress,
		Email:         r.Email,
		Social:        r.Social,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	return result
}
