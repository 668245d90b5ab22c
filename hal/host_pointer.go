//go:build !tinygo

package hal

import "sync"

// hostPointer stores the most recent mouse sample from the window goroutine.
// Read is called from the render task; the window polls concurrently.
type hostPointer struct {
	mu sync.Mutex
	st PointerState
}

func (p *hostPointer) Read() PointerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.st
}

func (p *hostPointer) set(st PointerState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.st = st
}
