package labeling

import (
	"strings"

	"github.com/google/uuid"
	"github.com/sellerdesk/backend/internal/domain/shared"
)

// LabelElement is one positioned, typed visual unit on a label. Elements
// belong to exactly one template through the element map keyed by template
// ID; their order within a template has no meaning, only position does.
type LabelElement struct {
	ID       uuid.UUID   `json:"id"`
	Type     ElementType `json:"type"`
	Label    string      `json:"label"`
	X        int         `json:"x"`
	Y        int         `json:"y"`
	Width    int         `json:"width"`
	Height   int         `json:"height"`
	FontSize int         `json:"fontSize"`
	Bold     bool        `json:"bold"`
}

// DefaultElementSize returns the initial pixel size for an element type
func DefaultElementSize(t ElementType) (width, height int) {
	switch t {
	case ElementTypeQR:
		return 60, 60
	case ElementTypeBarcode:
		return 160, 40
	default:
		return 120, 24
	}
}

// DefaultElementFontSize returns the initial font size for an element
// type. Barcodes carry no text, so their font size is zero.
func DefaultElementFontSize(t ElementType) int {
	if t == ElementTypeBarcode {
		return 0
	}
	return 12
}

// DefaultElementBold returns whether an element type starts out bold
func DefaultElementBold(t ElementType) bool {
	return t == ElementTypeText
}

// NewLabelElement creates an element of the given type at (x, y), sized
// per type and clamped into the label bounds.
func NewLabelElement(t ElementType, label string, x, y int, bounds Bounds) (*LabelElement, error) {
	if !t.IsValid() {
		return nil, shared.NewDomainError("INVALID_ELEMENT_TYPE", "Invalid element type")
	}

	width, height := DefaultElementSize(t)
	element := &LabelElement{
		ID:       uuid.New(),
		Type:     t,
		Label:    strings.TrimSpace(label),
		Width:    width,
		Height:   height,
		FontSize: DefaultElementFontSize(t),
		Bold:     DefaultElementBold(t),
	}
	element.MoveTo(x, y, bounds)

	return element, nil
}

// MoveTo places the element's top-left corner at (x, y), clamped so the
// element never extends past the printable area.
func (e *LabelElement) MoveTo(x, y int, bounds Bounds) {
	e.X = Clamp(x, 0, bounds.Width-e.Width)
	e.Y = Clamp(y, 0, bounds.Height-e.Height)
}

// Resize sets the element size and re-clamps its position
func (e *LabelElement) Resize(width, height int, bounds Bounds) error {
	if width < 1 || height < 1 {
		return shared.NewDomainError("INVALID_SIZE", "Element size must be positive")
	}
	e.Width = width
	e.Height = height
	e.MoveTo(e.X, e.Y, bounds)
	return nil
}

// SetLabel updates the element's display label
func (e *LabelElement) SetLabel(label string) {
	e.Label = strings.TrimSpace(label)
}

// SetFontSize updates the font size
func (e *LabelElement) SetFontSize(size int) error {
	if size < 0 {
		return shared.NewDomainError("INVALID_FONT_SIZE", "Font size cannot be negative")
	}
	e.FontSize = size
	return nil
}

// SetBold updates the bold flag
func (e *LabelElement) SetBold(bold bool) {
	e.Bold = bold
}
