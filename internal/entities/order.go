package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
	"time"
)

type OrderStatus string

const (
	StatusPendingShipment OrderStatus = "PENDING_SHIPMENT"
	StatusShipped         OrderStatus = "SHIPPED"
	StatusDelivered       OrderStatus = "DELIVERED"
	StatusCompleted       OrderStatus = "COMPLETED"
	StatusCancelled       OrderStatus = "CANCELLED"
)

// ValidStatus reports whether s belongs to the order lifecycle enumeration.
// Transition ordering is owned by downstream consumers of the store, not here.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPendingShipment, StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Order is one buyer/seller transaction for a listed card,
// keyed by the listing identifier. At most one order exists per listing.
type Order struct {
	ListingKey    string
	AssetRef      string
	CardRef       string
	Price         float64
	BuyerAddress  string
	SellerAddress string
	BuyerEmail    string
	BuyerSocial   string
	Status        OrderStatus
	CreatedAt     time.Time
}

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrProfileNotFound       = errors.New("seller profile not found")
	ErrInvalidOrder          = errors.New("invalid order")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrContactMethodRequired = errors.New("at least one contact method is required")
	ErrEmptyFilter           = errors.New("query filter is empty")
)

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(o)
}

func init() {
	gob.Register(Order{})
}
