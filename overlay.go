// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"image"
	"math"

	"gioui.org/op/paint"

	"git.sr.ht/~slidemenu/slidemenu/internal/axis"
)

// Region is an overlay rectangle. Secondary marks regions that belong
// to the secondary panel of a two-sided mode.
type Region struct {
	Rect      image.Rectangle
	Secondary bool
}

// Selector is the placement of the selector glyph. The glyph is drawn
// at Pos and clipped to Clip.
type Selector struct {
	Clip image.Rectangle
	Pos  image.Point
}

// ShadowRegions returns the strips along the content edges that face
// the behind panels. It returns nil if no shadow is configured.
func (b *Behind) ShadowRegions(content image.Rectangle) []Region {
	if b.shadowWidth <= 0 || !hasImage(b.shadow) {
		return nil
	}
	return b.edgeRegions(content, b.shadowWidth, hasImage(b.secondaryShadow))
}

// FadeRegions returns the areas darkened by the fade, one per behind
// panel. It returns nil if fading is disabled.
func (b *Behind) FadeRegions(content image.Rectangle) []Region {
	if !b.fadeEnabled {
		return nil
	}
	return b.edgeRegions(content, b.Extent(), true)
}

// FadeAlpha returns the alpha of the fade when the drawer is
// openPercent open.
func (b *Behind) FadeAlpha(openPercent float32) uint8 {
	a := math.Round(float64(b.fadeDegree) * 255 * math.Abs(1-float64(openPercent)))
	if a > 255 {
		a = 255
	}
	return uint8(a)
}

// edgeRegions returns the regions of the given thickness outside the
// content edges facing the behind panels.
func (b *Behind) edgeRegions(content image.Rectangle, thickness int, secondary bool) []Region {
	b.mustMeasure()
	a := b.mode.Axis()
	start, end := axis.Span(a, content)
	cross := b.crossSize()
	before := Region{Rect: axis.Rect(a, start-thickness, start, 0, cross)}
	after := Region{Rect: axis.Rect(a, end, end+thickness, 0, cross)}
	switch b.mode.Side() {
	case Start:
		return []Region{before}
	case End:
		return []Region{after}
	default:
		if !secondary {
			return []Region{before}
		}
		after.Secondary = true
		return []Region{before, after}
	}
}

// SelectorPosition returns the placement of the selector glyph next
// to the selected element. The glyph slides out of the content edge
// in proportion to openPercent. It reports false if there is nothing
// to draw, and clears the selection if the selected element is no
// longer attached.
func (b *Behind) SelectorPosition(content image.Rectangle, openPercent float32) (Selector, bool) {
	b.mustMeasure()
	if !b.selectorEnabled || b.selected == nil || b.tree == nil || !hasImage(b.selector) {
		return Selector{}, false
	}
	bounds, ok := b.tree.Bounds(b.selected)
	if !ok {
		b.selected = nil
		return Selector{}, false
	}
	a := b.mode.Axis()
	glyph := b.selector.Size()
	length := axis.Main(a, glyph)
	offset := int(float32(length) * openPercent)
	cs, ce := axis.CrossSpan(a, bounds)
	cross := cs + (ce-cs-axis.Cross(a, glyph))/2
	start, end := axis.Span(a, content)
	var s Selector
	switch b.mode.Side() {
	case Start:
		s.Clip = axis.Rect(a, start-offset, start, 0, b.crossSize())
		s.Pos = axis.Point(a, start-offset, cross)
	case End:
		s.Clip = axis.Rect(a, end, end+offset, 0, b.crossSize())
		s.Pos = axis.Point(a, end+offset-length, cross)
	default:
		return Selector{}, false
	}
	return s, true
}

func hasImage(img paint.ImageOp) bool {
	return img.Size() != (image.Point{})
}
