package gui

import "sync/atomic"

// clock is the logical millisecond counter consumed by animations and
// input debouncing. Single writer (the tick callback), lock-free readers.
type clock struct {
	ms atomic.Uint32
}

func (c *clock) advance(ms uint32) {
	c.ms.Add(ms)
}

func (c *clock) now() uint32 {
	return c.ms.Load()
}
