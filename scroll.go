// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"image"

	"git.sr.ht/~slidemenu/slidemenu/internal/axis"
)

// Visibility of a panel.
type Visibility uint8

const (
	Visible Visibility = iota
	Invisible
)

// Scroll is the state of the behind panels implied by a content
// position.
type Scroll struct {
	// Offset is the scroll offset of the behind panels.
	Offset image.Point
	// Visibility of the controller as a whole.
	Visibility Visibility
	// Primary and Secondary are the visibilities of the individual
	// panels. Secondary is always Invisible in single-sided modes.
	Primary, Secondary Visibility
}

// ComputeScroll returns the scroll state for the content scrolled to
// target. It has no side effects.
func (b *Behind) ComputeScroll(content image.Rectangle, target image.Point) Scroll {
	a := b.mode.Axis()
	t := axis.Main(a, target)
	edge := axis.Main(a, content.Min)
	s := Scroll{Visibility: Visible, Primary: Visible, Secondary: Invisible}
	var off int
	switch b.mode.Side() {
	case Start:
		if t >= edge {
			s.Visibility = Invisible
		}
		off = b.startOffset(t)
	case End:
		if t <= edge {
			s.Visibility = Invisible
		}
		off = b.endOffset(t)
	case Both:
		s.Primary = visibleIf(t < edge)
		s.Secondary = visibleIf(t > edge)
		s.Visibility = visibleIf(t != 0)
		if t <= edge {
			off = b.startOffset(t)
		} else {
			off = b.endOffset(t)
		}
	}
	s.Offset = axis.Point(a, off, axis.Cross(a, target))
	return s
}

// ScrollBehindTo computes the scroll state for target, records it and
// applies it to the surface, if any.
func (b *Behind) ScrollBehindTo(content image.Rectangle, target image.Point) Scroll {
	s := b.ComputeScroll(content, target)
	if s.Visibility == Invisible && b.scroll.Visibility == Visible {
		b.log.Trace().Msg("behind invisible")
	}
	b.scroll = s
	if b.surface != nil {
		b.surface.ScrollTo(s.Offset)
		b.surface.SetPanelVisibility(s.Primary, s.Secondary)
		b.surface.SetVisibility(s.Visibility)
	}
	return s
}

// Scroll returns the state recorded by the latest ScrollBehindTo.
func (b *Behind) Scroll() Scroll {
	return b.scroll
}

// startOffset aligns the behind panel with a content edge moving
// towards the start.
func (b *Behind) startOffset(t int) int {
	return int(float32(t+b.Extent()) * b.scrollScale)
}

// endOffset is the mirror of startOffset for the end side.
func (b *Behind) endOffset(t int) int {
	e := b.Extent()
	return int(float32(e-b.panelSize()) + float32(t-e)*b.scrollScale)
}

func visibleIf(v bool) Visibility {
	if v {
		return Visible
	}
	return Invisible
}

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "Visible"
	case Invisible:
		return "Invisible"
	default:
		panic("unreachable")
	}
}
