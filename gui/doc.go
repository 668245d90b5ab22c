// Package gui is a small software-rendered widget library for pixel
// displays.
//
// A UI instance owns a widget tree, a logical millisecond clock and the
// registered display plumbing. The library is not safe for concurrent use:
// all mutation must happen under one external lock, conventionally the
// render loop's. The two exceptions are TickInc and Ticks, which are
// atomic and may be called from timer context without the lock.
//
// Rendering is retained-mode with dirty regions: widgets invalidate the
// area they occupy, and one Process call redraws the merged dirty area
// band by band through the registered staging buffer(s), flushing each
// band to the display driver.
package gui
