//go:build !tinygo

package hal

import "sync"

// hostFramebuffer is the simulated panel memory: a full RGB565
// little-endian frame that flushed regions land in and the window
// snapshots from.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

func (f *hostFramebuffer) setPixelRGB565(x, y int, pixel uint16) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	off := y*f.stride + x*2
	if off < 0 || off+1 >= len(f.buf) {
		return
	}
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}
