package page

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrAnchorNotFound = errors.New("anchor not found")
	ErrInvalidHref    = errors.New("invalid href")
)

type Behavior int

const (
	Instant Behavior = iota
	Smooth
)

func (b Behavior) String() string {
	switch b {
	case Instant:
		return "instant"
	case Smooth:
		return "smooth"
	default:
		return "unknown"
	}
}

type Scroller interface {
	ScrollTo(y float64, b Behavior)
}

// Navigator turns in-page links into scrolls.
type Navigator struct {
	anchors  map[string]float64
	scroller Scroller
}

func NewNavigator(anchors map[string]float64, s Scroller) *Navigator {
	return &Navigator{anchors: anchors, scroller: s}
}

// Follow smooth-scrolls to the element a "#id" href points at. Nothing
// scrolls if the anchor does not exist.
func (n *Navigator) Follow(href string) error {
	id, ok := strings.CutPrefix(href, "#")
	if !ok || id == "" {
		return fmt.Errorf("%w: %q", ErrInvalidHref, href)
	}
	y, ok := n.anchors[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAnchorNotFound, id)
	}
	n.scroller.ScrollTo(y, Smooth)
	return nil
}

const (
	DefaultEasing = 0.2
	snapDistance  = 0.5
)

// Viewport is the scroll position over the page. Smooth scrolls close a
// fixed fraction of the remaining distance on every Step.
type Viewport struct {
	offset float64
	target float64
	max    float64
	easing float64
}

func NewViewport(easing float64) *Viewport {
	if easing <= 0 || easing > 1 {
		easing = DefaultEasing
	}
	return &Viewport{easing: easing}
}

func (v *Viewport) Offset() float64 { return v.offset }

// SetBounds limits scrolling so the page bottom never rises above the view.
func (v *Viewport) SetBounds(pageHeight, viewHeight float64) {
	v.max = math.Max(0, pageHeight-viewHeight)
	v.offset = v.clamp(v.offset)
	v.target = v.clamp(v.target)
}

func (v *Viewport) ScrollTo(y float64, b Behavior) {
	v.target = v.clamp(y)
	if b == Instant {
		v.offset = v.target
	}
}

// ScrollBy moves instantly, cancelling any smooth scroll in progress.
func (v *Viewport) ScrollBy(dy float64) {
	v.ScrollTo(v.offset+dy, Instant)
}

// Step advances a smooth scroll by one frame and reports whether it moved.
func (v *Viewport) Step() bool {
	if v.offset == v.target {
		return false
	}
	d := v.target - v.offset
	if math.Abs(d) <= snapDistance {
		v.offset = v.target
	} else {
		v.offset += d * v.easing
	}
	return true
}

func (v *Viewport) Scrolling() bool { return v.offset != v.target }

func (v *Viewport) clamp(y float64) float64 {
	return math.Min(math.Max(y, 0), v.max)
}
