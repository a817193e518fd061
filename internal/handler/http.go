package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cardbazaar/order-service/internal/entities"
	"github.com/cardbazaar/order-service/internal/service"
	"github.com/cardbazaar/order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	SubmitOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateStatus(ctx context.Context, listingKey string, status entities.OrderStatus) (entities.Order, error)
	QueryOrders(ctx context.Context, filter service.OrderFilter) ([]entities.Order, error)
}

type ProfileService interface {
	SubmitProfile(ctx context.Context, profile entities.SellerProfile) (entities.SellerProfile, error)
	GetProfile(ctx context.Context, walletAddress string) (entities.SellerProfile, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	orders   OrderService
	profiles ProfileService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, profiles ProfileService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		orders:   orders,
		profiles: profiles,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.SubmitOrder)
		r.Get("/", h.QueryOrders)
		r.Patch("/{listing_key}/status", h.UpdateStatus)
	})
	r.Route("/profiles", func(r chi.Router) {
		r.Post("/", h.SubmitProfile)
		r.Get("/{wallet_address}", h.GetProfile)
	})
}

// SubmitOrder creates or updates an order for a listing.
// @Summary      Submit an order
// @Description  Idempotent per listing key: a resubmission updates the mutable fields and preserves status and creation time
// @Tags         orders
// @Accept       json
// @Param        order  body  SubmitOrderRequest  true  "Order submission"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation failure"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /orders [post]
func (h *HTTPHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SubmitOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.SubmitOrder(ctx, SubmitOrderToEntity(req))
	if errors.Is(err, entities.ErrContactMethodRequired) {
		utils.WriteError(w, "at least one contact method (email or social handle) is required", http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrInvalidOrder) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to submit order", slog.Any("error", err), slog.String("listing_key", req.ListingKey))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersSubmitted.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// UpdateStatus overwrites the lifecycle status of an order.
// @Summary      Update order status
// @Tags         orders
// @Accept       json
// @Param        listing_key  path  string               true  "Listing key"
// @Param        status       body  UpdateStatusRequest  true  "Target status"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Unknown status"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /orders/{listing_key}/status [patch]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	listingKey := chi.URLParam(r, "listing_key")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.UpdateStatus(ctx, listingKey, entities.OrderStatus(req.Status))
	if errors.Is(err, entities.ErrInvalidStatus) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update status", slog.Any("error", err), slog.String("listing_key", listingKey))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// QueryOrders returns orders for one filter dimension.
// @Summary      Query orders
// @Description  Exactly one of seller, buyer or listing_key must be supplied. Seller and buyer queries return a list newest first; listing_key returns a single order.
// @Tags         orders
// @Param        seller       query  string  false  "Seller wallet address"
// @Param        buyer        query  string  false  "Buyer wallet address"
// @Param        listing_key  query  string  false  "Listing key"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse "No filter supplied"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /orders [get]
func (h *HTTPHandler) QueryOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := service.OrderFilter{
		ListingKey:    r.URL.Query().Get("listing_key"),
		SellerAddress: r.URL.Query().Get("seller"),
		BuyerAddress:  r.URL.Query().Get("buyer"),
	}

	orders, err := h.orders.QueryOrders(ctx, filter)
	if errors.Is(err, entities.ErrEmptyFilter) {
		utils.WriteError(w, "one of seller, buyer or listing_key is required", http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to query orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Listing-key lookups address a single order, so the response is the
	// bare object rather than a one-element list.
	if filter.ListingKey != "" {
		utils.WriteJSON(w, OrderEntityToJSON(orders[0]), http.StatusOK)
		return
	}
	utils.WriteJSON(w, OrdersEntityToJSON(orders), http.StatusOK)
}

// SubmitProfile creates or updates a seller contact profile.
// @Summary      Submit seller contact profile
// @Tags         profiles
// @Accept       json
// @Param        profile  body  SubmitProfileRequest  true  "Profile submission"
// @Success      200  {object}  Profile
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation failure"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /profiles [post]
func (h *HTTPHandler) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SubmitProfileRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	profile, err := h.profiles.SubmitProfile(ctx, SubmitProfileToEntity(req))
	if errors.Is(err, entities.ErrContactMethodRequired) {
		utils.WriteError(w, "at least one contact method (email or social handle) is required", http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrInvalidOrder) {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to submit profile", slog.Any("error", err), slog.String("wallet", req.WalletAddress))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProfileEntityToJSON(profile), http.StatusOK)
}

// GetProfile returns the seller contact profile for a wallet.
// @Summary      Fetch seller contact profile
// @Tags         profiles
// @Param        wallet_address  path  string  true  "Wallet address"
// @Success      200  {object}  Profile
// @Failure      404  {object}  utils.ErrorResponse "Profile not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal error"
// @Router       /profiles/{wallet_address} [get]
func (h *HTTPHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	walletAddress := chi.URLParam(r, "wallet_address")

	if err := h.validate.Var(walletAddress, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	profile, err := h.profiles.GetProfile(ctx, walletAddress)
	if errors.Is(err, entities.ErrProfileNotFound) {
		utils.WriteError(w, "profile not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get profile", slog.Any("error", err), slog.String("wallet", walletAddress))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, ProfileEntityToJSON(profile), http.StatusOK)
}
