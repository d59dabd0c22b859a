// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// PaintShadow paints the shadow images, stretched over ShadowRegions.
func (b *Behind) PaintShadow(ops *op.Ops, content image.Rectangle) {
	for _, r := range b.ShadowRegions(content) {
		img := b.shadow
		if r.Secondary {
			img = b.secondaryShadow
		}
		paintStretched(ops, img, r.Rect)
	}
}

// PaintFade darkens FadeRegions with the alpha for openPercent.
func (b *Behind) PaintFade(ops *op.Ops, content image.Rectangle, openPercent float32) {
	regions := b.FadeRegions(content)
	if len(regions) == 0 {
		return
	}
	c := color.NRGBA{A: b.FadeAlpha(openPercent)}
	for _, r := range regions {
		paint.FillShape(ops, c, clip.Rect(r.Rect).Op())
	}
}

// PaintSelector paints the selector glyph at SelectorPosition.
func (b *Behind) PaintSelector(ops *op.Ops, content image.Rectangle, openPercent float32) {
	s, ok := b.SelectorPosition(content, openPercent)
	if !ok {
		return
	}
	glyph := image.Rectangle{Min: s.Pos, Max: s.Pos.Add(b.selector.Size())}
	defer clip.Rect(s.Clip.Intersect(glyph)).Push(ops).Pop()
	defer op.Offset(layout.FPt(s.Pos)).Push(ops).Pop()
	b.selector.Add(ops)
	paint.PaintOp{}.Add(ops)
}

func paintStretched(ops *op.Ops, img paint.ImageOp, r image.Rectangle) {
	sz := img.Size()
	if sz.X == 0 || sz.Y == 0 || r.Empty() {
		return
	}
	defer clip.Rect(r).Push(ops).Pop()
	scale := f32.Pt(float32(r.Dx())/float32(sz.X), float32(r.Dy())/float32(sz.Y))
	t := f32.Affine2D{}.Scale(f32.Point{}, scale).Offset(layout.FPt(r.Min))
	defer op.Affine(t).Push(ops).Pop()
	img.Add(ops)
	paint.PaintOp{}.Add(ops)
}
