package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Notifier configures the seller-side notification client.
type Notifier struct {
	Env string `validate:"required,oneof=development stage production"`

	ServerURL string `validate:"required,url"`

	// Wallet is the connected wallet address. Empty means no wallet is
	// connected and the poller must stay idle.
	Wallet string

	PollInterval time.Duration `validate:"gt=0"`

	// AckStorePath is where per-wallet acknowledgment state is persisted.
	AckStorePath string `validate:"required"`
}

func NewNotifier() Notifier {
	return Notifier{
		Env:          env("ENV", "development"),
		ServerURL:    env("ORDER_SERVICE_URL", "http://localhost:8080"),
		Wallet:       env("WALLET_ADDRESS", ""),
		PollInterval: envDuration("POLL_INTERVAL", 30*time.Second),
		AckStorePath: env("ACK_STORE_PATH", ".cardbazaar-ack.json"),
	}
}

func (c Notifier) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
