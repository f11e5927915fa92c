// Package page models the single page drawn over the particle backdrop: its
// sections, navigation links and forms.
package page

import (
	"errors"
	"fmt"
)

var ErrFormNotFound = errors.New("form not found")

const (
	ContactFormID   = "contact-form"
	SubscribeFormID = "subscribe-form"

	ContactAck   = "Gracias por contactarnos. Te responderemos pronto."
	SubscribeAck = "Gracias por suscribirte."
)

// formAliases maps alternate ids onto registered forms.
var formAliases = map[string]string{
	"newsletter": SubscribeFormID,
}

type Section struct {
	ID     string
	Title  string
	Lines  []string
	Height float64
	// FormID names the form rendered at the end of the section, if any.
	FormID string

	// Top is the section's offset from the top of the page, filled by New.
	Top float64
}

type Link struct {
	Label string
	Href  string
}

type Page struct {
	Sections []Section
	links    []Link
	forms    map[string]*Form
	height   float64
}

// New stacks sections top to bottom and registers forms by id. Every form a
// section refers to must be supplied.
func New(sections []Section, links []Link, forms ...*Form) (*Page, error) {
	p := &Page{
		Sections: make([]Section, len(sections)),
		links:    links,
		forms:    make(map[string]*Form, len(forms)),
	}
	for _, f := range forms {
		p.forms[f.ID] = f
	}

	var top float64
	for i, s := range sections {
		if s.FormID != "" {
			if _, ok := p.forms[s.FormID]; !ok {
				return nil, fmt.Errorf("section %q: %w: %s", s.ID, ErrFormNotFound, s.FormID)
			}
		}
		s.Top = top
		top += s.Height
		p.Sections[i] = s
	}
	p.height = top
	return p, nil
}

// Default builds the site's page.
func Default() (*Page, error) {
	contact := NewForm(ContactFormID, ContactAck,
		&Field{Name: "nombre", Label: "Nombre"},
		&Field{Name: "email", Label: "Email"},
		&Field{Name: "mensaje", Label: "Mensaje"},
	)
	subscribe := NewForm(SubscribeFormID, SubscribeAck,
		&Field{Name: "email", Label: "Email"},
	)

	return New([]Section{
		{
			ID:     "inicio",
			Title:  "Bienvenido",
			Lines:  []string{"Un fondo de particulas que rebotan,", "y una pagina sencilla encima."},
			Height: 420,
		},
		{
			ID:     "servicios",
			Title:  "Servicios",
			Lines:  []string{"Diseno web", "Desarrollo a medida", "Mantenimiento"},
			Height: 420,
		},
		{
			ID:     "contacto",
			Title:  "Contacto",
			Lines:  []string{"Escribenos y te responderemos pronto."},
			Height: 420,
			FormID: ContactFormID,
		},
		{
			ID:     "suscripcion",
			Title:  "Suscripcion",
			Lines:  []string{"Recibe novedades en tu correo."},
			Height: 420,
			FormID: SubscribeFormID,
		},
	}, []Link{
		{Label: "Inicio", Href: "#inicio"},
		{Label: "Servicios", Href: "#servicios"},
		{Label: "Contacto", Href: "#contacto"},
		{Label: "Suscribete", Href: "#suscripcion"},
	}, contact, subscribe)
}

func (p *Page) Height() float64 { return p.height }

func (p *Page) Links() []Link { return p.links }

// Anchors maps section ids to their page offsets.
func (p *Page) Anchors() map[string]float64 {
	anchors := make(map[string]float64, len(p.Sections))
	for _, s := range p.Sections {
		anchors[s.ID] = s.Top
	}
	return anchors
}

// Form resolves a form by id or alias.
func (p *Page) Form(id string) (*Form, error) {
	if alias, ok := formAliases[id]; ok {
		id = alias
	}
	f, ok := p.forms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormNotFound, id)
	}
	return f, nil
}
