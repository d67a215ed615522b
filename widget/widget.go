package widget

import (
	"errors"
	"fmt"
	"io"
	"net/url"
)

// Kind identifies a widget implementation.
type Kind string

const (
	// KindLineOverlay is the parameter-driven line overlay.
	KindLineOverlay Kind = "line-overlay"
	// KindClusters is the static cluster display.
	KindClusters Kind = "clusters"
)

// ErrUnknownKind is returned by Decode for a kind with no implementation.
var ErrUnknownKind = errors.New("widget: unknown kind")

// Valid reports whether k names a known widget.
func (k Kind) Valid() bool {
	switch k {
	case KindLineOverlay, KindClusters:
		return true
	default:
		return false
	}
}

// Widget is an interactive diagram with ephemeral state.
type Widget interface {
	// Kind returns the widget kind.
	Kind() Kind
	// Encode returns the canonical query encoding of the current state.
	Encode() url.Values
	// Controls describes the form inputs that drive the widget.
	Controls() []Control
	// Readouts returns the values displayed next to the drawing.
	Readouts() []Readout
	// Render writes the SVG drawing for the current state.
	Render(w io.Writer) error
}

// ControlType selects how a Control is rendered.
type ControlType string

const (
	ControlRange    ControlType = "range"
	ControlCheckbox ControlType = "checkbox"
	ControlButton   ControlType = "button"
)

// Control describes one form input.
//
// For ControlRange, Min/Max/Step bound the slider and Value is the current
// position. For ControlCheckbox, Checked is the current state. For
// ControlButton, Name/Value are submitted when the button is pressed.
type Control struct {
	Type    ControlType
	Name    string
	Label   string
	Value   string
	Min     string
	Max     string
	Step    string
	Checked bool
}

// Readout is a label/value pair shown next to the drawing.
type Readout struct {
	Label string
	Value string
}

// Decode builds a widget of the given kind from query parameters.
func Decode(kind Kind, q url.Values) (Widget, error) {
	switch kind {
	case KindLineOverlay:
		l := DecodeLineOverlay(q)
		return &l, nil
	case KindClusters:
		c := DecodeClusterDisplay(q)
		return &c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// Default returns a widget of the given kind in its initial state.
func Default(kind Kind) (Widget, error) {
	return Decode(kind, nil)
}
