// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"image"
	"math"
	"testing"

	"gioui.org/io/event"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"

	"git.sr.ht/~slidemenu/slidemenu/internal/axis"
)

var allModes = []Mode{Left, Right, Top, Bottom, LeftRight, TopBottom}

// crossLength is the size of the test panels across the mode axis.
const crossLength = 600

// newBehind returns a measured controller in mode m whose behind
// panels are extent pixels long.
func newBehind(m Mode, extent int) *Behind {
	b := New(unit.Metric{PxPerDp: 1})
	b.SetMode(m)
	b.Measure(axis.Point(m.Axis(), extent, crossLength))
	return b
}

// frame returns a content frame starting at start along m's axis.
func frame(m Mode, start, length int) image.Rectangle {
	return axis.Rect(m.Axis(), start, start+length, 0, crossLength)
}

type recordingSurface struct {
	offset             image.Point
	vis                Visibility
	primary, secondary Visibility
	calls              int
}

func (s *recordingSurface) ScrollTo(offset image.Point) {
	s.offset = offset
	s.calls++
}

func (s *recordingSurface) SetVisibility(v Visibility) {
	s.vis = v
}

func (s *recordingSurface) SetPanelVisibility(primary, secondary Visibility) {
	s.primary, s.secondary = primary, secondary
}

type mapTree map[event.Tag]image.Rectangle

func (t mapTree) Bounds(tag event.Tag) (image.Rectangle, bool) {
	r, ok := t[tag]
	return r, ok
}

func TestNewDefaults(t *testing.T) {
	b := New(unit.Metric{PxPerDp: 2})
	if got, want := b.MarginThreshold(), 96; got != want {
		t.Errorf("margin threshold: got %d, want %d", got, want)
	}
	if b.Mode() != Left {
		t.Errorf("default mode: got %v, want left", b.Mode())
	}
	if b.TouchMode() != TouchMargin {
		t.Errorf("default touch mode: got %v, want margin", b.TouchMode())
	}
	if !b.InterceptsInput() {
		t.Error("children should not receive input by default")
	}
}

func TestUnmeasured(t *testing.T) {
	content := image.Rect(0, 0, 100, 100)
	tests := []struct {
		name string
		f    func(b *Behind)
	}{
		{"Bounds", func(b *Behind) { b.Bounds(content) }},
		{"FadeRegions", func(b *Behind) { b.FadeRegions(content) }},
		{"ShadowRegions", func(b *Behind) {
			b.SetShadowWidth(10)
			b.SetShadow(testImage(10, 1))
			b.ShadowRegions(content)
		}},
		{"SelectorPosition", func(b *Behind) { b.SelectorPosition(content, 1) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s before Measure did not panic", tc.name)
				}
			}()
			tc.f(New(unit.Metric{}))
		})
	}
}

func TestMeasureOffset(t *testing.T) {
	b := New(unit.Metric{})
	b.SetOffset(60)
	if got, want := b.Measure(image.Pt(400, 800)), image.Pt(340, 800); got != want {
		t.Errorf("horizontal child size: got %v, want %v", got, want)
	}
	if got, want := b.Extent(), 340; got != want {
		t.Errorf("horizontal extent: got %d, want %d", got, want)
	}
	b.SetMode(Top)
	if got, want := b.Measure(image.Pt(400, 800)), image.Pt(400, 740); got != want {
		t.Errorf("vertical child size: got %v, want %v", got, want)
	}
	// The vertical extent follows the height, not the width.
	if got, want := b.Extent(), 740; got != want {
		t.Errorf("vertical extent: got %d, want %d", got, want)
	}
}

func TestFadeDegreeRange(t *testing.T) {
	b := New(unit.Metric{})
	nan := float32(math.NaN())
	for _, d := range []float32{-0.1, 1.01, nan} {
		if err := b.SetFadeDegree(d); err == nil {
			t.Errorf("SetFadeDegree(%v) succeeded", d)
		}
	}
	if b.FadeDegree() != 0.33 {
		t.Errorf("rejected degree changed the fade degree to %v", b.FadeDegree())
	}
	for _, d := range []float32{0, 0.5, 1} {
		if err := b.SetFadeDegree(d); err != nil {
			t.Errorf("SetFadeDegree(%v): %v", d, err)
		}
	}
}

func TestSelectedView(t *testing.T) {
	b := New(unit.Metric{})
	attached, detached := new(int), new(int)
	b.SetTree(mapTree{attached: image.Rect(0, 0, 10, 10)})
	b.SetSelectedView(detached)
	if b.Selected() != nil {
		t.Error("detached element was selected")
	}
	b.SetSelectedView(attached)
	if b.Selected() != attached {
		t.Error("attached element was not selected")
	}
	b.SetSelectedView(nil)
	if b.Selected() != nil {
		t.Error("nil tag did not clear the selection")
	}
}

func TestLayout(t *testing.T) {
	b := New(unit.Metric{})
	b.SetScrollScale(1)
	var primary, secondary int
	pw := func(gtx layout.Context) layout.Dimensions {
		primary++
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	sw := func(gtx layout.Context) layout.Dimensions {
		secondary++
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	gtx := layout.Context{
		Ops:         new(op.Ops),
		Constraints: layout.Exact(image.Pt(300, 600)),
	}
	// Closed: nothing to lay out.
	b.Layout(gtx, 0, pw, sw)
	if primary != 0 {
		t.Errorf("closed drawer laid out the primary panel")
	}
	content := image.Rect(0, 0, 300, 600)
	b.ScrollBehindTo(content, image.Pt(-150, 0))
	dims := b.Layout(gtx, 0.5, pw, sw)
	if dims.Size != image.Pt(300, 600) {
		t.Errorf("dimensions: got %v, want (300,600)", dims.Size)
	}
	if primary != 1 || secondary != 0 {
		t.Errorf("got %d primary and %d secondary layouts, want 1 and 0", primary, secondary)
	}
	b.SetMode(LeftRight)
	b.ScrollBehindTo(content, image.Pt(150, 0))
	b.Layout(gtx, 0.5, pw, sw)
	if primary != 1 || secondary != 1 {
		t.Errorf("two-sided: got %d primary and %d secondary layouts, want 1 and 1", primary, secondary)
	}
}
