// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled checks if the context has been canceled or exceeded its deadline.
// Returns the context error if done (Canceled or DeadlineExceeded), nil
// otherwise. Long-running operations such as tree loads and full remaps
// call this at function entry and between file writes.
//
// The implementation directly returns ctx.Err() because it already returns
// nil if Done is not yet closed.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
