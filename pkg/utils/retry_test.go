package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	cfg := RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}

	t.Run("succeeds on a later attempt", func(t *testing.T) {
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error when attempts run out", func(t *testing.T) {
		wantErr := errors.New("still broken")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		permanent := errors.New("not found")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return permanent
		}, permanent)
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})

	t.Run("wrapped permanent errors are recognized", func(t *testing.T) {
		permanent := errors.New("not found")
		calls := 0
		err := Retry(cfg, func() error {
			calls++
			return errors.Join(errors.New("lookup failed"), permanent)
		}, permanent)
		assert.ErrorIs(t, err, permanent)
		assert.Equal(t, 1, calls)
	})
}
