// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"image"
	"image/color"

	"gioui.org/op/paint"
	"golang.org/x/image/draw"

	"git.sr.ht/~slidemenu/slidemenu/internal/axis"
)

// GradientShadow returns a shadow image for m that is dark at the
// content edge and fades out over width pixels towards the behind
// panel. Set secondary for the shadow of the secondary panel of a
// two-sided mode. The image is one pixel thick across the mode axis;
// PaintShadow stretches it.
func GradientShadow(m Mode, secondary bool, width int, dark color.NRGBA) paint.ImageOp {
	if width <= 0 {
		return paint.ImageOp{}
	}
	a := m.Axis()
	// The shadow of a panel before the content darkens towards its end.
	edge, outer := axis.Point(a, 1, 0), axis.Point(a, 0, 0)
	if m.Side() == End || secondary {
		edge, outer = outer, edge
	}
	src := image.NewNRGBA(image.Rectangle{Max: axis.Point(a, 2, 1)})
	src.SetNRGBA(edge.X, edge.Y, dark)
	src.SetNRGBA(outer.X, outer.Y, color.NRGBA{})
	dst := image.NewNRGBA(image.Rectangle{Max: axis.Point(a, width, 1)})
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return paint.NewImageOp(dst)
}
