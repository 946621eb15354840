package signal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler(t *testing.T) {
	t.Run("context valid initially", func(t *testing.T) {
		h := NewHandler(context.Background())
		defer h.Stop()

		assert.NoError(t, h.Context().Err())
		select {
		case <-h.Interrupted():
			t.Fatal("interrupted channel should be open initially")
		default:
		}
	})

	t.Run("signal cancels context and closes interrupted", func(t *testing.T) {
		h := NewHandler(context.Background())
		defer h.Stop()

		h.handleSignal()

		require.Error(t, h.Context().Err())
		assert.Equal(t, context.Canceled, h.Context().Err())
		select {
		case <-h.Interrupted():
		default:
			t.Fatal("interrupted channel should be closed after signal")
		}
	})

	t.Run("repeated signals are processed once", func(t *testing.T) {
		h := NewHandler(context.Background())
		defer h.Stop()

		h.handleSignal()
		h.handleSignal()
		h.handleSignal()

		require.Error(t, h.Context().Err())
		select {
		case <-h.Interrupted():
		default:
			t.Fatal("interrupted channel should be closed")
		}
	})

	t.Run("stop cancels context and is idempotent", func(t *testing.T) {
		h := NewHandler(context.Background())

		h.Stop()
		h.Stop()

		assert.Error(t, h.Context().Err())
	})

	t.Run("parent cancellation propagates", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		h := NewHandler(parent)
		defer h.Stop()

		cancel()

		assert.Error(t, h.Context().Err())
	})
}
