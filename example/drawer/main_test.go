// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"testing"

	"gioui.org/f32"
	"gioui.org/unit"

	"git.sr.ht/~slidemenu/slidemenu"
)

var testContent = image.Rect(0, 0, 300, 600)

func newTestDrawer(t *testing.T) *drawer {
	t.Helper()
	d := newDrawer()
	if err := d.configure(slidemenu.DefaultConfig(), unit.Metric{PxPerDp: 1}); err != nil {
		t.Fatal(err)
	}
	d.behind.Measure(testContent.Max)
	d.dragging = true
	return d
}

func TestDragWaitsForSlop(t *testing.T) {
	d := newTestDrawer(t)
	// A first move across the axis stays within the slop.
	d.drag(testContent, f32.Pt(0, 3))
	if !d.dragging || d.gated {
		t.Fatalf("drag ended inside the slop (dragging %v, gated %v)", d.dragging, d.gated)
	}
	d.drag(testContent, f32.Pt(20, 0))
	if !d.gated {
		t.Fatal("drag along the axis was not gated open")
	}
	if d.pos != -20 {
		t.Errorf("got position %d, want -20", d.pos)
	}
	for i := 0; i < 4; i++ {
		d.drag(testContent, f32.Pt(0.5, 0))
	}
	if d.pos != -22 {
		t.Errorf("sub-pixel moves: got position %d, want -22", d.pos)
	}
}

func TestDragRejected(t *testing.T) {
	tests := []struct {
		name string
		move f32.Point
	}{
		{"wrong direction", f32.Pt(-20, 0)},
		{"across the axis", f32.Pt(2, 20)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newTestDrawer(t)
			d.drag(testContent, tc.move)
			if d.dragging || d.pos != 0 {
				t.Errorf("got dragging %v at %d, want a dropped drag at 0", d.dragging, d.pos)
			}
		})
	}
}
