// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"image"
	"image/color"
	"testing"

	"gioui.org/gpu/headless"
	"gioui.org/op"
	"gioui.org/op/paint"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	red   = color.NRGBA{R: 0xff, A: 0xff}
)

// render draws f over a white background and returns the result.
func render(t *testing.T, f func(ops *op.Ops)) *image.RGBA {
	t.Helper()
	w, err := headless.NewWindow(64, 32)
	if err != nil {
		t.Skipf("failed to create headless window, skipping: %v", err)
	}
	defer w.Release()
	ops := new(op.Ops)
	paint.Fill(ops, white)
	f(ops)
	if err := w.Frame(ops); err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rectangle{Max: w.Size()})
	if err := w.Screenshot(img); err != nil {
		t.Fatal(err)
	}
	return img
}

func solidImage(w, h int, c color.NRGBA) paint.ImageOp {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return paint.NewImageOp(img)
}

func expectPixel(t *testing.T, img *image.RGBA, x, y int, want color.NRGBA) {
	t.Helper()
	got := img.RGBAAt(x, y)
	near := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d > -8 && d < 8
	}
	if !near(got.R, want.R) || !near(got.G, want.G) || !near(got.B, want.B) {
		t.Errorf("pixel (%d, %d): got %v, want %v", x, y, got, want)
	}
}

func TestPaintFade(t *testing.T) {
	b := newBehind(Left, 20)
	if err := b.SetFadeDegree(1); err != nil {
		t.Fatal(err)
	}
	content := frame(Left, 30, 20)
	img := render(t, func(ops *op.Ops) {
		b.PaintFade(ops, content, 0)
	})
	// The fade covers [10, 30) at full darkness.
	expectPixel(t, img, 20, 10, color.NRGBA{A: 0xff})
	expectPixel(t, img, 5, 10, white)
	expectPixel(t, img, 40, 10, white)

	b.SetFadeEnabled(false)
	img = render(t, func(ops *op.Ops) {
		b.PaintFade(ops, content, 0)
	})
	expectPixel(t, img, 20, 10, white)
}

func TestPaintShadow(t *testing.T) {
	b := newBehind(Right, 20)
	b.SetShadow(solidImage(1, 1, red))
	content := frame(Right, 10, 20)
	img := render(t, func(ops *op.Ops) {
		b.PaintShadow(ops, content)
	})
	// No width, no shadow.
	expectPixel(t, img, 32, 10, white)

	b.SetShadowWidth(6)
	img = render(t, func(ops *op.Ops) {
		b.PaintShadow(ops, content)
	})
	// The shadow is stretched over [30, 36).
	expectPixel(t, img, 32, 10, red)
	expectPixel(t, img, 28, 10, white)
	expectPixel(t, img, 38, 10, white)
}

func TestPaintSelector(t *testing.T) {
	item := new(int)
	b := newBehind(Left, 20)
	b.SetSelectorImage(solidImage(10, 10, red))
	b.SetTree(mapTree{item: image.Rect(0, 0, 20, 20)})
	b.SetSelectedView(item)
	content := frame(Left, 30, 20)
	img := render(t, func(ops *op.Ops) {
		b.PaintSelector(ops, content, 1)
	})
	// The glyph occupies [20, 30) x [5, 15).
	expectPixel(t, img, 25, 10, red)
	expectPixel(t, img, 25, 2, white)
	expectPixel(t, img, 32, 10, white)

	// Half open, only the half nearest the content shows.
	img = render(t, func(ops *op.Ops) {
		b.PaintSelector(ops, content, 0.5)
	})
	expectPixel(t, img, 22, 10, white)
	expectPixel(t, img, 27, 10, red)
}
