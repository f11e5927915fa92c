// Package game hosts the particle backdrop and page overlay in an ebiten window.
package game

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-backdrop/internal/animation"
	"github.com/iburimskiy/particle-backdrop/internal/config"
	"github.com/iburimskiy/particle-backdrop/internal/page"
)

const (
	wheelStep       = 40
	colorShiftSpeed = 0.01
)

type Game struct {
	driver *animation.Driver
	frames *animation.FrameRequest

	page   *page.Page
	view   *page.Viewport
	nav    *page.Navigator
	submit *page.Submitter

	log *slog.Logger

	// input state
	widgets   []page.Widget
	hover     page.Widget
	hovering  bool
	click     page.Click
	focus     *page.Field
	focusForm *page.Form
	runes     []rune

	width, height int
	colorPhase    float64
	lastErr       error
}

// New starts the animation at the configured window size and registers the
// page's form handlers. Both forms must exist.
func New(cfg *config.Config, notifier page.Notifier, log *slog.Logger) (*Game, error) {
	if log == nil {
		log = slog.Default()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	frames := &animation.FrameRequest{}
	driver := animation.NewDriver(frames, rand.New(rand.NewSource(seed)), cfg.ParticleCount,
		cfg.Background, cfg.ParticleColor, log.With("component", "animation"))
	if err := driver.Start(cfg.WindowWidth, cfg.WindowHeight); err != nil {
		return nil, err
	}

	p, err := page.Default()
	if err != nil {
		return nil, fmt.Errorf("build page: %w", err)
	}
	for _, id := range []string{page.ContactFormID, page.SubscribeFormID} {
		if _, err := p.Form(id); err != nil {
			return nil, fmt.Errorf("register form handler: %w", err)
		}
	}

	view := page.NewViewport(page.DefaultEasing)
	view.SetBounds(p.Height(), float64(cfg.WindowHeight-page.NavHeight))

	return &Game{
		driver: driver,
		frames: frames,
		page:   p,
		view:   view,
		nav:    page.NewNavigator(p.Anchors(), view),
		submit: page.NewSubmitter(notifier, log.With("component", "page")),
		log:    log,
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.driver.Reseed()
	}

	g.view.Step()
	g.colorPhase += colorShiftSpeed
	g.widgets = page.Layout(g.page, g.view.Offset())

	g.handleMouse()
	g.handleKeys()
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	g.hover, g.hovering = page.HitTest(g.widgets, image.Pt(mx, my))

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.view.ScrollBy(-dy * wheelStep)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click.Press(g.hover, g.hovering)
		if !g.hovering {
			g.focus, g.focusForm = nil, nil
		}
	}
	if !inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return
	}
	w, ok := g.click.Release(g.hover, g.hovering)
	if !ok {
		return
	}

	switch w.Kind {
	case page.WidgetLink:
		if err := g.nav.Follow(w.Href); err != nil {
			g.log.Warn("navigation failed", "href", w.Href, "error", err)
			g.lastErr = err
		}
	case page.WidgetField:
		g.focus, g.focusForm = w.Field, w.Form
	case page.WidgetSubmit:
		g.submitForm(w.Form)
	}
}

func (g *Game) handleKeys() {
	if g.focus == nil {
		return
	}

	g.runes = ebiten.AppendInputChars(g.runes[:0])
	g.focus.Value += string(g.runes)

	if repeating(ebiten.KeyBackspace) {
		g.focus.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.focusNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.submitForm(g.focusForm)
	}
}

func (g *Game) focusNext() {
	fields := g.focusForm.Fields
	for i, f := range fields {
		if f == g.focus {
			g.focus = fields[(i+1)%len(fields)]
			return
		}
	}
}

// submitForm blocks while the acknowledgement is shown, like the page's alert.
func (g *Game) submitForm(f *page.Form) {
	g.lastErr = g.submit.Submit(f)
	g.focus, g.focusForm = nil, nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frames.Take() {
		if err := g.driver.OnTick(screenCanvas{img: screen}); err != nil {
			g.lastErr = err
		}
	}

	g.drawSections(screen)
	g.drawControls(screen)
	g.drawNav(screen)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, g.height-20)
	}
}

func (g *Game) drawSections(screen *ebiten.Image) {
	for _, s := range g.page.Sections {
		y := page.SectionY(s, g.view.Offset())
		if y+int(s.Height) < page.NavHeight || y > g.height {
			continue
		}
		ebitenutil.DebugPrintAt(screen, s.Title, page.ContentX, y+8)
		for i, line := range s.Lines {
			ebitenutil.DebugPrintAt(screen, line, page.ContentX, y+page.TitleHeight+i*page.LineHeight)
		}
	}
}

func (g *Game) drawControls(screen *ebiten.Image) {
	for _, w := range g.widgets {
		r := w.Rect
		x, y := float32(r.Min.X), float32(r.Min.Y)
		width, height := float32(r.Dx()), float32(r.Dy())

		switch w.Kind {
		case page.WidgetField:
			ebitenutil.DebugPrintAt(screen, w.Label, page.ContentX, r.Min.Y+3)
			vector.DrawFilledRect(screen, x, y, width, height, color.RGBA{R: 20, G: 25, B: 35, A: 220}, false)
			border := color.RGBA{R: 60, G: 70, B: 90, A: 255}
			text := w.Field.Value
			if w.Field == g.focus {
				border = color.RGBA{R: 150, G: 170, B: 200, A: 255}
				text += "_"
			}
			vector.StrokeRect(screen, x, y, width, height, 1, border, false)
			ebitenutil.DebugPrintAt(screen, page.Tail(text, r.Dx()-8), r.Min.X+4, r.Min.Y+3)

		case page.WidgetSubmit:
			var bg color.Color
			hovered := g.hovering && g.hover.Rect == r
			if g.click.Pressing(w) && hovered {
				bg = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
			} else if hovered {
				bg = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
			} else {
				bg = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
			}
			vector.DrawFilledRect(screen, x, y, width, height, bg, false)
			vector.StrokeRect(screen, x, y, width, height, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)
			textX := r.Min.X + (r.Dx()-len(w.Label)*page.GlyphWidth)/2
			ebitenutil.DebugPrintAt(screen, w.Label, textX, r.Min.Y+(r.Dy()-16)/2)
		}
	}
}

func (g *Game) drawNav(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.width), page.NavHeight, color.RGBA{R: 10, G: 10, B: 14, A: 230}, false)
	for _, w := range g.widgets {
		if w.Kind != page.WidgetLink {
			continue
		}
		r := w.Rect
		ebitenutil.DebugPrintAt(screen, w.Label, r.Min.X+4, r.Min.Y+2)
		if g.hovering && g.hover.Rect == r {
			cr, cg, cb := hsvToRgb(g.colorPhase*360, 0.7, 0.9)
			vector.StrokeLine(screen, float32(r.Min.X), float32(r.Max.Y), float32(r.Max.X), float32(r.Max.Y), 2,
				color.RGBA{R: cr, G: cg, B: cb, A: 255}, false)
		}
	}
}

// Layout keeps the particle surface and scroll bounds in step with the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.driver.OnResize(outsideWidth, outsideHeight)
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.view.SetBounds(g.page.Height(), float64(outsideHeight-page.NavHeight))
	}
	return outsideWidth, outsideHeight
}
