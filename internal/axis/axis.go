// SPDX-License-Identifier: Unlicense OR MIT

// Package axis projects points and rectangles onto a layout axis, so
// that geometry can be written once for both orientations.
package axis

import (
	"image"

	"gioui.org/f32"
	"gioui.org/layout"
)

// Main returns the coordinate of pt along a.
func Main(a layout.Axis, pt image.Point) int {
	if a == layout.Horizontal {
		return pt.X
	}
	return pt.Y
}

// Cross returns the coordinate of pt across a.
func Cross(a layout.Axis, pt image.Point) int {
	if a == layout.Horizontal {
		return pt.Y
	}
	return pt.X
}

// MainF is like Main for pointer positions.
func MainF(a layout.Axis, pt f32.Point) float32 {
	if a == layout.Horizontal {
		return pt.X
	}
	return pt.Y
}

// Point builds a point from its main and cross coordinates.
func Point(a layout.Axis, main, cross int) image.Point {
	if a == layout.Horizontal {
		return image.Point{X: main, Y: cross}
	}
	return image.Point{X: cross, Y: main}
}

// Span returns the start and end edges of r along a.
func Span(a layout.Axis, r image.Rectangle) (start, end int) {
	return Main(a, r.Min), Main(a, r.Max)
}

// CrossSpan returns the start and end edges of r across a.
func CrossSpan(a layout.Axis, r image.Rectangle) (start, end int) {
	return Cross(a, r.Min), Cross(a, r.Max)
}

// Rect returns the rectangle covering [start, end) along a and
// [cstart, cend) across it.
func Rect(a layout.Axis, start, end, cstart, cend int) image.Rectangle {
	return image.Rectangle{
		Min: Point(a, start, cstart),
		Max: Point(a, end, cend),
	}
}
