// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"fmt"

	"gioui.org/layout"
)

// Mode selects the edge or edges of the content panel that
// reveal a behind panel.
type Mode uint8

// Side is the position of the behind panel relative to the
// content panel along the mode axis.
type Side uint8

const (
	Left Mode = iota
	Right
	Top
	Bottom
	LeftRight
	TopBottom
)

const (
	// Start means the behind panel precedes the content.
	Start Side = iota
	// End means the behind panel follows the content.
	End
	// Both means there is a behind panel on either side.
	Both
)

// Axis returns the axis along which the content slides.
func (m Mode) Axis() layout.Axis {
	switch m {
	case Left, Right, LeftRight:
		return layout.Horizontal
	case Top, Bottom, TopBottom:
		return layout.Vertical
	default:
		panic("unreachable")
	}
}

// Side returns the position of the behind panel.
func (m Mode) Side() Side {
	switch m {
	case Left, Top:
		return Start
	case Right, Bottom:
		return End
	case LeftRight, TopBottom:
		return Both
	default:
		panic("unreachable")
	}
}

// Resolve returns the mode's axis and side.
func (m Mode) Resolve() (layout.Axis, Side) {
	return m.Axis(), m.Side()
}

// TwoSided reports whether m has a secondary behind panel.
func (m Mode) TwoSided() bool {
	return m.Side() == Both
}

func (m Mode) String() string {
	switch m {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case LeftRight:
		return "left-right"
	case TopBottom:
		return "top-bottom"
	default:
		panic("unreachable")
	}
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	for c := Left; c <= TopBottom; c++ {
		if c.String() == string(text) {
			*m = c
			return nil
		}
	}
	return fmt.Errorf("slidemenu: unknown mode %q", text)
}

func (s Side) String() string {
	switch s {
	case Start:
		return "Start"
	case End:
		return "End"
	case Both:
		return "Both"
	default:
		panic("unreachable")
	}
}
