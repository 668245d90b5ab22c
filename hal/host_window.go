//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that presents the simulated framebuffer
// and forwards mouse input as pointer state. It blocks until the window is
// closed or ctx is cancelled.
func RunWindow(ctx context.Context, h HAL, title string) error {
	hh, ok := h.(*hostHAL)
	if !ok {
		return errors.New("hal: RunWindow needs a host HAL")
	}

	g := &hostGame{ctx: ctx, h: hh}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(hh.fb.width*2, hh.fb.height*2)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type hostGame struct {
	ctx     context.Context
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
}

func (g *hostGame) Update() error {
	if g.ctx != nil && g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.h.ptr != nil {
		x, y := ebiten.CursorPosition()
		g.h.ptr.set(PointerState{
			X:       clampInt16(x, 0, g.h.fb.width-1),
			Y:       clampInt16(y, 0, g.h.fb.height-1),
			Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		})
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.scratch = make([]byte, len(fb.buf))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshotRGB565(g.scratch)

	src := g.scratch
	dst := g.img.Pix
	for i := 0; i+1 < len(src) && i/2*4+3 < len(dst); i += 2 {
		r, gg, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
		j := (i / 2) * 4
		dst[j+0] = r
		dst[j+1] = gg
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}

func clampInt16(v, lo, hi int) int16 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return int16(v)
}
