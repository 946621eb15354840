// Package signal cancels a context on SIGINT or SIGTERM so in-flight
// index writes and moves can stop at a safe point.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler wraps a context and cancels it on the first interrupt signal.
type Handler struct {
	ctx         context.Context //nolint:containedctx // the handler manages the context lifecycle
	cancel      context.CancelFunc
	interrupted chan struct{}
	done        chan struct{}
	once        sync.Once
	stopOnce    sync.Once
	sigChan     chan os.Signal
}

// NewHandler installs a listener for SIGINT and SIGTERM. The returned
// handler's Context is canceled when either arrives; callers must Stop
// it when done.
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:         ctx,
		cancel:      cancel,
		interrupted: make(chan struct{}),
		done:        make(chan struct{}),
		// Buffered so signal.Notify never drops a signal while the
		// listener is busy.
		sigChan: make(chan os.Signal, 1),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context returns the cancelable context. Pass it to every operation
// that should abort on Ctrl+C.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Interrupted returns a channel closed once an interrupt was received.
func (h *Handler) Interrupted() <-chan struct{} {
	return h.interrupted
}

// Stop unregisters the signal listener and cancels the context.
// Idempotent.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// handleSignal cancels the context exactly once regardless of how many
// signals arrive.
func (h *Handler) handleSignal() {
	h.once.Do(func() {
		h.cancel()
		close(h.interrupted)
	})
}

func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case <-h.sigChan:
			// Keep draining; only the first signal has an effect.
			h.handleSignal()
		}
	}
}
