// SPDX-License-Identifier: Unlicense OR MIT

package slidemenu

import (
	"image"

	"git.sr.ht/~slidemenu/slidemenu/internal/axis"
)

// Pages of a drawer. The behind panels sit on pages 0 and 2, the
// content on page 1.
const (
	PageStart   = 0
	PageContent = 1
	PageEnd     = 2
)

// MenuPage clamps page to a valid page and, for single-sided modes,
// folds the behind pages onto the side the behind panel is on.
func (b *Behind) MenuPage(page int) int {
	switch {
	case page > PageContent:
		page = PageEnd
	case page < PageContent:
		page = PageStart
	}
	switch b.mode.Side() {
	case Start:
		if page == PageEnd {
			return PageStart
		}
	case End:
		if page == PageStart {
			return PageEnd
		}
	}
	return page
}

// MenuEdge returns the leading edge, along the mode axis, of the
// behind panel for page. The content page has no behind panel and
// yields the content edge.
func (b *Behind) MenuEdge(content image.Rectangle, page int) int {
	edge := axis.Main(b.mode.Axis(), content.Min)
	extent := b.Extent()
	switch page {
	case PageStart:
		if b.mode.Side() == End {
			return edge
		}
		return edge - extent
	case PageEnd:
		if b.mode.Side() == Start {
			return edge
		}
		return edge + extent
	}
	return edge
}

// Bounds returns the range of content positions reachable along the
// mode axis.
func (b *Behind) Bounds(content image.Rectangle) (min, max int) {
	edge := axis.Main(b.mode.Axis(), content.Min)
	extent := b.Extent()
	min, max = edge, edge
	switch b.mode.Side() {
	case Start:
		min -= extent
	case End:
		max += extent
	case Both:
		min -= extent
		max += extent
	}
	return min, max
}
