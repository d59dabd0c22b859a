// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
)

// Transformer transforms the behind panels according to how far the
// drawer is open, from 0 (closed) to 1 (open).
type Transformer interface {
	Transform(openPercent float32) f32.Affine2D
}

// ScaleTransformer zooms the behind panels around Origin, from Min at
// the closed position to their natural size when open.
type ScaleTransformer struct {
	Origin f32.Point
	Min    float32
}

// SlideTransformer shifts the behind panels by Distance along Axis at
// the closed position, and not at all when open.
type SlideTransformer struct {
	Axis     layout.Axis
	Distance float32
}

func (s ScaleTransformer) Transform(openPercent float32) f32.Affine2D {
	f := s.Min + (1-s.Min)*clampUnit(openPercent)
	return f32.Affine2D{}.Scale(s.Origin, f32.Pt(f, f))
}

func (s SlideTransformer) Transform(openPercent float32) f32.Affine2D {
	d := s.Distance * (1 - clampUnit(openPercent))
	var off f32.Point
	if s.Axis == layout.Horizontal {
		off.X = d
	} else {
		off.Y = d
	}
	return f32.Affine2D{}.Offset(off)
}

// pushTransform applies the transformer, or the identity if there is
// none.
func (b *Behind) pushTransform(ops *op.Ops, openPercent float32) op.TransformStack {
	var t f32.Affine2D
	if b.transformer != nil {
		t = b.transformer.Transform(openPercent)
	}
	return op.Affine(t).Push(ops)
}

func clampUnit(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
