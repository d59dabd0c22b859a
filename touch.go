// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"fmt"
	"image"

	"gioui.org/f32"

	"git.sr.ht/~slidemenu/slidemenu/internal/axis"
)

// TouchMode controls where a touch may continue a drag of an open
// drawer.
type TouchMode uint8

const (
	// TouchMargin restricts touches to the content side of the
	// content edge.
	TouchMargin TouchMode = iota
	// TouchFullscreen accepts touches anywhere.
	TouchFullscreen
	// TouchNone rejects all touches.
	TouchNone
)

// MarginTouchAllowed reports whether pos lies within the margin
// threshold of an active content edge.
func (b *Behind) MarginTouchAllowed(content image.Rectangle, pos f32.Point) bool {
	a := b.mode.Axis()
	p := axis.MainF(a, pos)
	start, end := axis.Span(a, content)
	th := float32(b.threshold)
	nearStart := p >= float32(start) && p <= float32(start)+th
	nearEnd := p <= float32(end) && p >= float32(end)-th
	switch b.mode.Side() {
	case Start:
		return nearStart
	case End:
		return nearEnd
	default:
		return nearStart || nearEnd
	}
}

// MenuOpenTouchAllowed reports whether a touch at pos may continue a
// drag while page is showing.
func (b *Behind) MenuOpenTouchAllowed(content image.Rectangle, page int, pos f32.Point) bool {
	switch b.touchMode {
	case TouchFullscreen:
		return true
	case TouchMargin:
		return b.MenuTouchInQuickReturn(content, page, pos)
	default:
		return false
	}
}

// MenuTouchInQuickReturn reports whether pos is on the content side of
// the content edge that faces the showing behind panel.
func (b *Behind) MenuTouchInQuickReturn(content image.Rectangle, page int, pos f32.Point) bool {
	a := b.mode.Axis()
	p := axis.MainF(a, pos)
	start, end := axis.Span(a, content)
	side := b.mode.Side()
	switch {
	case side == Start || side == Both && page == PageStart:
		return p >= float32(start)
	case side == End || side == Both && page == PageEnd:
		return p <= float32(end)
	}
	return false
}

// MenuClosedSlideAllowed reports whether a drag by delta along the
// mode axis may open a closed drawer.
func (b *Behind) MenuClosedSlideAllowed(delta float32) bool {
	switch b.mode.Side() {
	case Start:
		return delta > 0
	case End:
		return delta < 0
	default:
		return true
	}
}

// MenuOpenSlideAllowed reports whether a drag by delta along the mode
// axis may close an open drawer.
func (b *Behind) MenuOpenSlideAllowed(delta float32) bool {
	switch b.mode.Side() {
	case Start:
		return delta < 0
	case End:
		return delta > 0
	default:
		return true
	}
}

func (m TouchMode) String() string {
	switch m {
	case TouchMargin:
		return "margin"
	case TouchFullscreen:
		return "fullscreen"
	case TouchNone:
		return "none"
	default:
		panic("unreachable")
	}
}

func (m TouchMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *TouchMode) UnmarshalText(text []byte) error {
	for c := TouchMargin; c <= TouchNone; c++ {
		if c.String() == string(text) {
			*m = c
			return nil
		}
	}
	return fmt.Errorf("slidemenu: unknown touch mode %q", text)
}
