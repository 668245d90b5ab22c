//go:build !tinygo && !cgo

package hal

import "context"

// RunWindow is unavailable without cgo; use the headless mode instead.
func RunWindow(ctx context.Context, h HAL, title string) error {
	_ = ctx
	_ = h
	_ = title
	return ErrNotImplemented
}
