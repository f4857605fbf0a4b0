package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingWithRetry(t *testing.T) {
	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := pingWithRetry(context.Background(), func(context.Context) error {
			calls++
			if calls < 2 {
				return errors.New("connection refused")
			}
			return nil
		}, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("returns last error when attempts run out", func(t *testing.T) {
		calls := 0
		err := pingWithRetry(context.Background(), func(context.Context) error {
			calls++
			return errors.New("connection refused")
		}, 1)
		require.EqualError(t, err, "connection refused")
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		err := pingWithRetry(ctx, func(context.Context) error {
			cancel()
			return errors.New("connection refused")
		}, 5)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
