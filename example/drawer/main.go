// SPDX-License-Identifier: Unlicense OR MIT

// Command drawer shows a sliding drawer driven by package slidemenu.
//
// Usage:
//
//	drawer [-config drawer.toml]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"git.sr.ht/~slidemenu/slidemenu"
	"git.sr.ht/~slidemenu/slidemenu/internal/axis"
)

// touchSlop is the distance, in dp, a drag must move before it is
// assigned a direction.
const touchSlop = 8

var configFile = flag.String("config", "", "drawer configuration `file` (TOML)")

var (
	contentColor   = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	primaryColor   = color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0xff}
	secondaryColor = color.NRGBA{R: 0x00, G: 0x96, B: 0x88, A: 0xff}
	itemColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	shadowColor    = color.NRGBA{A: 0x60}
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("drawer: invalid configuration")
	}
	go func() {
		w := app.NewWindow(app.Title("Drawer"))
		if err := loop(w, cfg); err != nil {
			log.Fatal().Err(err).Msg("drawer: window failed")
		}
		os.Exit(0)
	}()
	app.Main()
}

func loadConfig(path string) (slidemenu.Config, error) {
	if path == "" {
		return slidemenu.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return slidemenu.Config{}, err
	}
	defer f.Close()
	return slidemenu.DecodeConfig(f)
}

func loop(w *app.Window, cfg slidemenu.Config) error {
	d := newDrawer()
	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			if !d.configured {
				if err := d.configure(cfg, gtx.Metric); err != nil {
					return err
				}
			}
			d.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}

// drawer is the host of a slidemenu.Behind: it captures the drag
// gesture, moves the content and paints the panels.
type drawer struct {
	behind     *slidemenu.Behind
	configured bool
	items      menu

	// pos is the scroll position of the content along the mode axis.
	pos  int
	page int

	dragging bool
	// gated is set once the drag moved past the touch slop along the
	// mode axis and passed the slide gates.
	gated bool
	pid   pointer.ID
	prev  f32.Point
	// moved is the movement since the press, until gated.
	moved f32.Point
	// rest is the sub-pixel remainder of the scroll.
	rest float32
	slop float32
}

// menu is the list of items in the primary panel. It resolves
// selection tags for the selector.
type menu struct {
	tags   []*int
	bounds []image.Rectangle
}

func newDrawer() *drawer {
	d := &drawer{page: slidemenu.PageContent}
	for i := 0; i < 6; i++ {
		d.items.tags = append(d.items.tags, new(int))
	}
	return d
}

func (d *drawer) configure(cfg slidemenu.Config, m unit.Metric) error {
	b := slidemenu.New(m)
	if err := b.Apply(cfg, m); err != nil {
		return fmt.Errorf("drawer: %w", err)
	}
	b.SetLogger(log.Logger)
	width := m.Px(unit.Dp(cfg.ShadowWidth))
	b.SetShadow(slidemenu.GradientShadow(cfg.Mode, false, width, shadowColor))
	b.SetSecondaryShadow(slidemenu.GradientShadow(cfg.Mode, true, width, shadowColor))
	b.SetSelectorImage(selectorGlyph(m.Px(unit.Dp(8)), m.Px(unit.Dp(24))))
	b.SetTree(&d.items)
	d.behind = b
	d.slop = float32(m.Px(unit.Dp(touchSlop)))
	d.configured = true
	log.Info().Stringer("mode", cfg.Mode).Msg("drawer configured")
	return nil
}

func (d *drawer) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	b := d.behind
	child := b.Measure(size)
	a := b.Mode().Axis()
	content := image.Rectangle{Max: size}
	d.update(gtx, content)

	d.items.layout(a, child)
	if b.Selected() == nil {
		b.SetSelectedView(d.items.tags[1])
	}

	b.ScrollBehindTo(content, axis.Point(a, d.pos, 0))
	open := d.openPercent()
	b.Layout(gtx, open, d.panel(primaryColor, true), d.panel(secondaryColor, false))

	// The content and its overlays are drawn in scrolled coordinates.
	scroll := axis.Point(a, -d.pos, 0)
	stack := op.Offset(layout.FPt(scroll)).Push(gtx.Ops)
	paint.FillShape(gtx.Ops, contentColor, clip.Rect(content).Op())
	b.PaintShadow(gtx.Ops, content)
	b.PaintFade(gtx.Ops, content, open)
	b.PaintSelector(gtx.Ops, content, open)
	stack.Pop()

	area := clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops)
	pointer.InputOp{
		Tag:   d,
		Grab:  d.dragging,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)
	area.Pop()
	return layout.Dimensions{Size: size}
}

// update processes pointer events.
func (d *drawer) update(gtx layout.Context, content image.Rectangle) {
	b := d.behind
	a := b.Mode().Axis()
	for _, ev := range gtx.Events(d) {
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		// Positions in content coordinates.
		pos := e.Position.Add(layout.FPt(axis.Point(a, d.pos, 0)))
		switch e.Type {
		case pointer.Press:
			if d.dragging {
				continue
			}
			var allowed bool
			if d.page == slidemenu.PageContent {
				allowed = b.MarginTouchAllowed(content, pos)
			} else {
				allowed = b.MenuOpenTouchAllowed(content, d.page, pos)
			}
			if !allowed {
				continue
			}
			d.dragging, d.gated = true, false
			d.pid = e.PointerID
			d.prev = e.Position
			d.moved, d.rest = f32.Point{}, 0
		case pointer.Drag:
			if !d.dragging || e.PointerID != d.pid {
				continue
			}
			d.drag(content, e.Position.Sub(d.prev))
			d.prev = e.Position
		case pointer.Release, pointer.Cancel:
			if !d.dragging || e.PointerID != d.pid {
				continue
			}
			d.dragging = false
			d.settle(content)
		}
	}
}

// drag moves the content by a pointer movement. Nothing scrolls until
// the drag leaves the touch slop. A drag that leaves it across the mode
// axis, or in a direction the slide gates reject, is dropped.
func (d *drawer) drag(content image.Rectangle, move f32.Point) {
	b := d.behind
	a := b.Mode().Axis()
	if !d.gated {
		d.moved = d.moved.Add(move)
		delta := axis.MainF(a, d.moved)
		main, cross := abs(delta), abs(d.moved.X+d.moved.Y-delta)
		if main <= d.slop && cross <= d.slop {
			return
		}
		if main <= cross {
			d.dragging = false
			return
		}
		if d.page == slidemenu.PageContent {
			d.gated = b.MenuClosedSlideAllowed(delta)
		} else {
			d.gated = b.MenuOpenSlideAllowed(delta)
		}
		if !d.gated {
			d.dragging = false
			return
		}
		// Apply the movement accumulated within the slop.
		move = d.moved
	}
	d.rest -= axis.MainF(a, move)
	n := int(d.rest)
	d.rest -= float32(n)
	d.scrollBy(content, n)
}

func (d *drawer) scrollBy(content image.Rectangle, delta int) {
	min, max := d.behind.Bounds(content)
	d.pos += delta
	if d.pos < min {
		d.pos = min
	}
	if d.pos > max {
		d.pos = max
	}
}

// settle snaps the content to the nearest page.
func (d *drawer) settle(content image.Rectangle) {
	b := d.behind
	d.page = slidemenu.PageContent
	if d.openPercent() >= 0.5 {
		d.page = slidemenu.PageEnd
		if d.pos < 0 {
			d.page = slidemenu.PageStart
		}
		d.page = b.MenuPage(d.page)
	}
	if d.page == slidemenu.PageContent {
		d.pos = 0
	} else {
		d.pos = b.MenuEdge(content, d.page)
	}
	log.Debug().Int("page", d.page).Int("pos", d.pos).Msg("drawer settled")
}

func (d *drawer) openPercent() float32 {
	e := d.behind.Extent()
	if e == 0 {
		return 0
	}
	p := float32(d.pos) / float32(e)
	if p < 0 {
		p = -p
	}
	return p
}

func (d *drawer) panel(c color.NRGBA, items bool) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		size := gtx.Constraints.Min
		paint.FillShape(gtx.Ops, c, clip.Rect(image.Rectangle{Max: size}).Op())
		if items {
			for _, r := range d.items.bounds {
				paint.FillShape(gtx.Ops, itemColor, clip.Rect(inset(r, 4)).Op())
			}
		}
		return layout.Dimensions{Size: size}
	}
}

// layout stacks the items across the mode axis of a panel of the
// given size.
func (m *menu) layout(a layout.Axis, size image.Point) {
	m.bounds = m.bounds[:0]
	main, cross := axis.Main(a, size), axis.Cross(a, size)
	step := cross / (len(m.tags) + 1)
	for i := range m.tags {
		c := step * (i + 1)
		m.bounds = append(m.bounds, axis.Rect(a, 0, main, c-step/2, c+step/2))
	}
}

func (m *menu) Bounds(tag event.Tag) (image.Rectangle, bool) {
	for i, t := range m.tags {
		if t == tag && i < len(m.bounds) {
			return m.bounds[i], true
		}
	}
	return image.Rectangle{}, false
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func inset(r image.Rectangle, n int) image.Rectangle {
	return image.Rect(r.Min.X+n, r.Min.Y+n, r.Max.X-n, r.Max.Y-n)
}

// selectorGlyph returns a solid bar for the selector.
func selectorGlyph(w, h int) paint.ImageOp {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, contentColor)
		}
	}
	return paint.NewImageOp(img)
}
