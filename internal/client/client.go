package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cardbazaar/order-service/internal/entities"
	"github.com/cardbazaar/order-service/internal/handler"
)

// HTTPClient is a typed client for the order service API, used by the
// notifier and by operational tooling.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func New(baseURL string) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("order service url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// OrdersBySeller returns the seller's orders, newest first.
func (c *HTTPClient) OrdersBySeller(ctx context.Context, sellerAddress string) ([]entities.Order, error) {
	var orders []handler.Order
	if err := c.getJSON(ctx, "/orders", url.Values{"seller": {sellerAddress}}, &orders); err != nil {
		return nil, err
	}
	return ordersToEntities(orders), nil
}

// OrdersByBuyer returns the buyer's orders, newest first.
func (c *HTTPClient) OrdersByBuyer(ctx context.Context, buyerAddress string) ([]entities.Order, error) {
	var orders []handler.Order
	if err := c.getJSON(ctx, "/orders", url.Values{"buyer": {buyerAddress}}, &orders); err != nil {
		return nil, err
	}
	return ordersToEntities(orders), nil
}

// OrderByListingKey returns the single order for a listing.
func (c *HTTPClient) OrderByListingKey(ctx context.Context, listingKey string) (entities.Order, error) {
	var order handler.Order
	if err := c.getJSON(ctx, "/orders", url.Values{"listing_key": {listingKey}}, &order); err != nil {
		return entities.Order{}, err
	}
	return orderToEntity(order), nil
}

// SubmitOrder submits a buyer order. Resubmission for the same listing key
// is safe and updates the existing record.
func (c *HTTPClient) SubmitOrder(ctx context.Context, req handler.SubmitOrderRequest) (entities.Order, error) {
	var order handler.Order
	if err := c.postJSON(ctx, "/orders", req, &order); err != nil {
		return entities.Order{}, err
	}
	return orderToEntity(order), nil
}

// UpdateStatus moves an order to the given lifecycle status.
func (c *HTTPClient) UpdateStatus(ctx context.Context, listingKey string, status entities.OrderStatus) (entities.Order, error) {
	endpoint := c.endpoint("/orders/"+url.PathEscape(listingKey)+"/status", nil)

	body, err := json.Marshal(handler.UpdateStatusRequest{Status: string(status)})
	if err != nil {
		return entities.Order{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.Order{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var order handler.Order
	if err := c.do(req, &order); err != nil {
		return entities.Order{}, err
	}
	return orderToEntity(order), nil
}

// SubmitProfile creates or updates a seller contact profile.
func (c *HTTPClient) SubmitProfile(ctx context.Context, req handler.SubmitProfileRequest) (entities.SellerProfile, error) {
	var profile handler.Profile
	if err := c.postJSON(ctx, "/profiles", req, &profile); err != nil {
		return entities.SellerProfile{}, err
	}
	return entities.SellerProfile{
		WalletAddress: profile.WalletAddress,
		Email:         profile.Email,
		Social:        profile.Social,
	}, nil
}

// Profile fetches the seller contact profile for a wallet.
func (c *HTTPClient) Profile(ctx context.Context, walletAddress string) (entities.SellerProfile, error) {
	var profile handler.Profile
	if err := c.getJSON(ctx, "/profiles/"+url.PathEscape(walletAddress), nil, &profile); err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			return entities.SellerProfile{}, entities.ErrProfileNotFound
		}
		return entities.SellerProfile{}, err
	}
	return entities.SellerProfile{
		WalletAddress: profile.WalletAddress,
		Email:         profile.Email,
		Social:        profile.Social,
	}, nil
}

func (c *HTTPClient) endpoint(p string, query url.Values) string {
	endpoint := *c.baseURL
	endpoint.Path = endpoint.Path + p
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String()
}

func (c *HTTPClient) getJSON(ctx context.Context, p string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(p, query), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) postJSON(ctx context.Context, p string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(p, nil), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNotFound:
		return entities.ErrOrderNotFound
	case http.StatusBadRequest:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", entities.ErrInvalidOrder, string(body))
	default:
		return fmt.Errorf("order service returned status %d", resp.StatusCode)
	}
}

func orderToEntity(o handler.Order) entities.Order {
	return entities.Order{
		ListingKey:    o.ListingKey,
		AssetRef:      o.AssetRef,
		CardRef:       o.CardRef,
		Price:         o.Price,
		BuyerAddress:  o.BuyerAddress,
		SellerAddress: o.SellerAddress,
		BuyerEmail:    o.BuyerEmail,
		BuyerSocial:   o.BuyerSocial,
		Status:        entities.OrderStatus(o.Status),
		CreatedAt:     o.CreatedAt,
	}
}

func ordersToEntities(orders []handler.Order) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, orderToEntity(o))
	}
	return result
}
