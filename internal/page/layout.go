package page

import (
	"image"
	"unicode/utf8"
)

// Layout metrics in screen pixels.
const (
	NavHeight = 36

	LinkX       = 20
	LinkY       = 8
	LinkWidth   = 110
	LinkHeight  = 20
	LinkSpacing = 10

	ContentX    = 40
	TitleHeight = 28
	LineHeight  = 16

	FieldX       = 140
	FieldWidth   = 320
	FieldHeight  = 22
	FieldSpacing = 32
	formGap      = 16

	ButtonWidth  = 120
	ButtonHeight = 28

	// debug font cell width used by ebitenutil.DebugPrintAt
	GlyphWidth = 6
)

type WidgetKind int

const (
	WidgetLink WidgetKind = iota
	WidgetField
	WidgetSubmit
)

// Widget is an interactive rectangle on screen.
type Widget struct {
	Kind  WidgetKind
	Rect  image.Rectangle
	Href  string
	Label string
	Form  *Form
	Field *Field
}

// SectionY converts a section's page offset to a screen y under the nav bar.
func SectionY(s Section, offset float64) int {
	return NavHeight + int(s.Top-offset)
}

// Layout places the nav links and every form control for the given scroll
// offset. Controls scrolled under the nav bar are left out.
func Layout(p *Page, offset float64) []Widget {
	var ws []Widget
	for i, l := range p.links {
		x := LinkX + i*(LinkWidth+LinkSpacing)
		ws = append(ws, Widget{
			Kind:  WidgetLink,
			Rect:  image.Rect(x, LinkY, x+LinkWidth, LinkY+LinkHeight),
			Href:  l.Href,
			Label: l.Label,
		})
	}

	for _, s := range p.Sections {
		if s.FormID == "" {
			continue
		}
		f := p.forms[s.FormID]
		y := SectionY(s, offset) + TitleHeight + len(s.Lines)*LineHeight + formGap
		for _, fld := range f.Fields {
			r := image.Rect(FieldX, y, FieldX+FieldWidth, y+FieldHeight)
			if r.Min.Y >= NavHeight {
				ws = append(ws, Widget{Kind: WidgetField, Rect: r, Label: fld.Label, Form: f, Field: fld})
			}
			y += FieldSpacing
		}
		r := image.Rect(FieldX, y, FieldX+ButtonWidth, y+ButtonHeight)
		if r.Min.Y >= NavHeight {
			ws = append(ws, Widget{Kind: WidgetSubmit, Rect: r, Label: "Enviar", Form: f})
		}
	}
	return ws
}

// HitTest returns the first widget containing pt.
func HitTest(ws []Widget, pt image.Point) (Widget, bool) {
	for _, w := range ws {
		if pt.In(w.Rect) {
			return w, true
		}
	}
	return Widget{}, false
}

// Same reports whether w and o are the same control, even if scrolling moved
// it between frames.
func (w Widget) Same(o Widget) bool {
	return w.Kind == o.Kind && w.Href == o.Href && w.Form == o.Form && w.Field == o.Field
}

// Click pairs a mouse press with its release. A click lands only when both
// happen on the same widget.
type Click struct {
	pressed Widget
	armed   bool
}

// Press records the widget under the cursor, if any, when the button goes down.
func (c *Click) Press(w Widget, ok bool) {
	c.pressed, c.armed = w, ok
}

// Release returns the clicked widget when the button comes up over the
// widget that was pressed.
func (c *Click) Release(w Widget, ok bool) (Widget, bool) {
	armed := c.armed
	c.armed = false
	if !armed || !ok || !c.pressed.Same(w) {
		return Widget{}, false
	}
	return w, true
}

// Pressing reports whether w is held down.
func (c *Click) Pressing(w Widget) bool {
	return c.armed && c.pressed.Same(w)
}

// Tail keeps the last runes of s that fit in width pixels.
func Tail(s string, width int) string {
	fit := width / GlyphWidth
	if fit <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(s)
	if n <= fit {
		return s
	}
	r := []rune(s)
	return string(r[n-fit:])
}
