// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
)

// Layout measures the controller to fill the maximum constraints and
// lays out the visible behind panels, scrolled by the offset of the
// latest ScrollBehindTo. The secondary panel is only laid out in the
// two-sided modes; either widget may be nil.
func (b *Behind) Layout(gtx layout.Context, openPercent float32, primary, secondary layout.Widget) layout.Dimensions {
	size := gtx.Constraints.Max
	child := b.Measure(size)
	dims := layout.Dimensions{Size: size}
	if b.scroll.Visibility == Invisible {
		return dims
	}
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
	defer b.pushTransform(gtx.Ops, openPercent).Pop()
	off := b.scroll.Offset
	defer op.Offset(f32.Pt(float32(-off.X), float32(-off.Y))).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(child)
	if primary != nil && b.scroll.Primary == Visible {
		primary(gtx)
	}
	if secondary != nil && b.mode.TwoSided() && b.scroll.Secondary == Visible {
		secondary(gtx)
	}
	return dims
}
