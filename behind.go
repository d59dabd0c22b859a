// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"fmt"
	"image"

	"gioui.org/io/event"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/rs/zerolog"

	"git.sr.ht/~slidemenu/slidemenu/internal/axis"
)

// Behind is the controller of the panels behind the content. It
// holds the drawer configuration and the most recent scroll state.
//
// A Behind is not safe for concurrent use; hosts call it from their
// event loop.
type Behind struct {
	mode        Mode
	touchMode   TouchMode
	scrollScale float32
	threshold   int
	// offset is the part of the panel kept clear for the content
	// when fully open.
	offset int

	size     image.Point
	measured bool

	shadow          paint.ImageOp
	secondaryShadow paint.ImageOp
	shadowWidth     int
	fadeEnabled     bool
	fadeDegree      float32

	selectorEnabled bool
	selector        paint.ImageOp
	tree            Tree
	selected        event.Tag

	transformer     Transformer
	childrenEnabled bool

	surface Surface
	scroll  Scroll
	log     zerolog.Logger
}

// Surface receives the effects of ScrollBehindTo. Hosts that render
// the behind panels themselves implement it.
type Surface interface {
	ScrollTo(offset image.Point)
	SetVisibility(v Visibility)
	SetPanelVisibility(primary, secondary Visibility)
}

// Tree resolves selection tags to the current bounds of the tagged
// element.
type Tree interface {
	// Bounds returns the bounds of the element identified by tag and
	// whether it is still attached.
	Bounds(tag event.Tag) (image.Rectangle, bool)
}

// defaultThreshold is the default margin threshold, in dp.
const defaultThreshold = 48

// New returns a controller in Left mode. The margin threshold
// defaults to 48dp converted with m.
func New(m unit.Metric) *Behind {
	return &Behind{
		touchMode:       TouchMargin,
		scrollScale:     0.33,
		threshold:       m.Px(unit.Dp(defaultThreshold)),
		fadeEnabled:     true,
		fadeDegree:      0.33,
		selectorEnabled: true,
		scroll:          Scroll{Visibility: Invisible, Primary: Visible, Secondary: Invisible},
		log:             zerolog.Nop(),
	}
}

// SetLogger replaces the logger; the default discards everything.
func (b *Behind) SetLogger(l zerolog.Logger) {
	b.log = l
}

// SetSurface sets the receiver of scroll effects. A nil surface
// disables them.
func (b *Behind) SetSurface(s Surface) {
	b.surface = s
}

// SetMode changes the mode. Previously computed geometry is stale
// afterwards, but the scroll position is left alone.
func (b *Behind) SetMode(m Mode) {
	m.Side() // Validate.
	if !m.TwoSided() {
		b.scroll.Primary = Visible
		b.scroll.Secondary = Invisible
		if b.surface != nil {
			b.surface.SetPanelVisibility(Visible, Invisible)
		}
	}
	b.log.Debug().Stringer("mode", m).Msg("behind mode changed")
	b.mode = m
}

func (b *Behind) Mode() Mode {
	return b.mode
}

func (b *Behind) SetTouchMode(m TouchMode) {
	b.touchMode = m
}

func (b *Behind) TouchMode() TouchMode {
	return b.touchMode
}

// SetScrollScale sets the parallax factor in [0, 1]. At 0 the behind
// panel stays put; at 1 it moves with the content.
func (b *Behind) SetScrollScale(s float32) {
	b.scrollScale = s
}

func (b *Behind) ScrollScale() float32 {
	return b.scrollScale
}

// SetMarginThreshold sets the distance in pixels from an edge within
// which a touch may start a drag.
func (b *Behind) SetMarginThreshold(px int) {
	b.threshold = px
}

func (b *Behind) MarginThreshold() int {
	return b.threshold
}

// SetOffset sets the length, in pixels along the mode axis, by which
// the behind panels are shorter than the controller.
func (b *Behind) SetOffset(px int) {
	b.offset = px
}

func (b *Behind) Offset() int {
	return b.offset
}

// SetShadow sets the shadow image drawn next to the content edge
// facing the primary panel.
func (b *Behind) SetShadow(img paint.ImageOp) {
	b.shadow = img
}

// SetSecondaryShadow sets the shadow for the secondary panel in the
// two-sided modes.
func (b *Behind) SetSecondaryShadow(img paint.ImageOp) {
	b.secondaryShadow = img
}

func (b *Behind) SetShadowWidth(px int) {
	b.shadowWidth = px
}

func (b *Behind) SetFadeEnabled(enabled bool) {
	b.fadeEnabled = enabled
}

// SetFadeDegree sets the darkness of the fade at the closed
// position. Values outside [0, 1] are rejected.
func (b *Behind) SetFadeDegree(degree float32) error {
	if !(degree >= 0 && degree <= 1) {
		return fmt.Errorf("slidemenu: fade degree %v outside [0, 1]", degree)
	}
	b.fadeDegree = degree
	return nil
}

func (b *Behind) FadeDegree() float32 {
	return b.fadeDegree
}

func (b *Behind) SetSelectorEnabled(enabled bool) {
	b.selectorEnabled = enabled
}

// SetSelectorImage sets the glyph drawn next to the selected element.
// The zero ImageOp removes it.
func (b *Behind) SetSelectorImage(img paint.ImageOp) {
	b.selector = img
}

// SetTree sets the tree that resolves selection tags.
func (b *Behind) SetTree(t Tree) {
	b.tree = t
	b.selected = nil
}

// SetSelectedView selects the element identified by tag. The
// selection is refused if the element is not attached, and a nil tag
// clears it.
func (b *Behind) SetSelectedView(tag event.Tag) {
	b.selected = nil
	if tag == nil || b.tree == nil {
		return
	}
	if _, ok := b.tree.Bounds(tag); ok {
		b.selected = tag
	}
}

// Selected returns the selected tag, or nil.
func (b *Behind) Selected() event.Tag {
	return b.selected
}

// SetTransformer sets the transformation applied to the behind panels
// as the content opens. A nil Transformer disables it.
func (b *Behind) SetTransformer(t Transformer) {
	b.transformer = t
}

// SetChildrenEnabled controls whether input reaches the behind
// panels' children.
func (b *Behind) SetChildrenEnabled(enabled bool) {
	b.childrenEnabled = enabled
}

// InterceptsInput reports whether the controller consumes input
// instead of its children.
func (b *Behind) InterceptsInput() bool {
	return !b.childrenEnabled
}

// Measure records the size of the controller and returns the size of
// each behind panel.
func (b *Behind) Measure(size image.Point) image.Point {
	b.size = size
	b.measured = true
	a := b.mode.Axis()
	main := axis.Main(a, size) - b.offset
	if main < 0 {
		main = 0
	}
	return axis.Point(a, main, axis.Cross(a, size))
}

// Size returns the size recorded by Measure.
func (b *Behind) Size() image.Point {
	return b.size
}

// Extent returns the length of a behind panel along the mode axis.
func (b *Behind) Extent() int {
	b.mustMeasure()
	e := axis.Main(b.mode.Axis(), b.size) - b.offset
	if e < 0 {
		return 0
	}
	return e
}

func (b *Behind) mustMeasure() {
	if !b.measured {
		panic("slidemenu: behind panel used before it was measured")
	}
}

// panelSize is the controller's own length along the mode axis.
func (b *Behind) panelSize() int {
	return axis.Main(b.mode.Axis(), b.size)
}

// crossSize is the controller's length across the mode axis.
func (b *Behind) crossSize() int {
	return axis.Cross(b.mode.Axis(), b.size)
}
