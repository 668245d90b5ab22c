//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
)

// HostOptions configures the simulated device.
type HostOptions struct {
	Class  DisplayClass
	Width  int16
	Height int16
	Input  bool
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	fb     *hostFramebuffer
	disp   DisplayDriver
	ptr    *hostPointer
}

// NewHost returns a HAL that simulates the device on a desktop machine.
// The framebuffer can be presented in a window with RunWindow.
func NewHost(opts HostOptions) (HAL, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("hal: invalid host display size %dx%d", opts.Width, opts.Height)
	}

	logger := &hostLogger{w: os.Stdout}
	fb := newHostFramebuffer(int(opts.Width), int(opts.Height))

	var disp DisplayDriver
	switch opts.Class {
	case ColorDouble, ColorSingle:
		disp = &hostColorDisplay{fb: fb}
	case Mono:
		disp = &hostMonoDisplay{fb: fb}
	default:
		return nil, fmt.Errorf("hal: unknown display class %d", opts.Class)
	}

	h := &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		fb:     fb,
		disp:   disp,
	}
	if opts.Input {
		h.ptr = &hostPointer{}
	}
	return h, nil
}

func (h *hostHAL) Logger() Logger { return h.logger }
func (h *hostHAL) LED() LED       { return h.led }

func (h *hostHAL) Display() DisplayDriver { return h.disp }

func (h *hostHAL) Input() InputDriver {
	if h.ptr == nil {
		return nil
	}
	return h.ptr
}

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
	l.logger.WriteLineString("led: LOW")
}
