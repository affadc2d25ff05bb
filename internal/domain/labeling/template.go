package labeling

import (
	"strings"
	"time"

	"github.com/sellerdesk/backend/internal/domain/shared"
)

// Default geometry for newly created templates. Sizes are millimeters,
// margins and gap are millimeters, font size is points.
const (
	DefaultColumns     = 3
	DefaultRows        = 5
	DefaultLabelWidth  = 50
	DefaultLabelHeight = 30
	DefaultFontSize    = 12
	DefaultMarginTop   = 2
	DefaultMarginLeft  = 2
	DefaultGap         = 1
)

// LabelTemplate represents a reusable label layout: the physical label
// size and grid plus print options. Positioned elements are owned by the
// element map keyed by template ID, not embedded here.
// It is the aggregate root for template-related operations.
type LabelTemplate struct {
	shared.BaseEntity
	Name        string    `json:"name"`
	PaperType   PaperType `json:"paperType"`
	Description string    `json:"description"`
	Columns     int       `json:"columns"`
	Rows        int       `json:"rows"`
	LabelWidth  int       `json:"labelWidth"`  // mm
	LabelHeight int       `json:"labelHeight"` // mm
	FontSize    int       `json:"fontSize"`
	MarginTop   int       `json:"marginTop"`
	MarginLeft  int       `json:"marginLeft"`
	Gap         int       `json:"gap"`
	AutoCut     bool      `json:"autoCut"`
	IsDefault   bool      `json:"isDefault"`
}

// NewLabelTemplate creates a new label template with default geometry
func NewLabelTemplate(name string) (*LabelTemplate, error) {
	if err := validateTemplateName(name); err != nil {
		return nil, err
	}

	return &LabelTemplate{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		PaperType:   PaperTypeRoll,
		Columns:     DefaultColumns,
		Rows:        DefaultRows,
		LabelWidth:  DefaultLabelWidth,
		LabelHeight: DefaultLabelHeight,
		FontSize:    DefaultFontSize,
		MarginTop:   DefaultMarginTop,
		MarginLeft:  DefaultMarginLeft,
		Gap:         DefaultGap,
		IsDefault:   false,
	}, nil
}

// TemplatePatch carries optional field updates for a template.
// Nil fields are left unchanged.
type TemplatePatch struct {
	Name        *string
	PaperType   *PaperType
	Description *string
	Columns     *int
	Rows        *int
	LabelWidth  *int
	LabelHeight *int
	FontSize    *int
	MarginTop   *int
	MarginLeft  *int
	Gap         *int
	AutoCut     *bool
}

// Apply merges the patch into the template
func (t *LabelTemplate) Apply(patch TemplatePatch) error {
	if patch.Name != nil {
		if err := validateTemplateName(*patch.Name); err != nil {
			return err
		}
		t.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.PaperType != nil {
		if !patch.PaperType.IsValid() {
			return shared.NewDomainError("INVALID_PAPER_TYPE", "Invalid paper type")
		}
		t.PaperType = *patch.PaperType
	}
	if patch.Description != nil {
		t.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Columns != nil {
		t.Columns = *patch.Columns
	}
	if patch.Rows != nil {
		t.Rows = *patch.Rows
	}
	if patch.LabelWidth != nil {
		t.LabelWidth = *patch.LabelWidth
	}
	if patch.LabelHeight != nil {
		t.LabelHeight = *patch.LabelHeight
	}
	if patch.FontSize != nil {
		t.FontSize = *patch.FontSize
	}
	if patch.MarginTop != nil {
		t.MarginTop = *patch.MarginTop
	}
	if patch.MarginLeft != nil {
		t.MarginLeft = *patch.MarginLeft
	}
	if patch.Gap != nil {
		t.Gap = *patch.Gap
	}
	if patch.AutoCut != nil {
		t.AutoCut = *patch.AutoCut
	}

	t.UpdatedAt = time.Now()

	return nil
}

// Duplicate deep-copies the template under a new identity. The copy is
// never the default, regardless of the source.
func (t *LabelTemplate) Duplicate() *LabelTemplate {
	copied := *t
	copied.BaseEntity = shared.NewBaseEntity()
	copied.Name = t.Name + " (복사본)"
	copied.IsDefault = false
	return &copied
}

// SetAsDefault marks this template as the collection default.
// The caller must clear the flag on every other template; the repository's
// SetDefault operation is the single place that enforces the invariant.
func (t *LabelTemplate) SetAsDefault() {
	if t.IsDefault {
		return
	}
	t.IsDefault = true
	t.UpdatedAt = time.Now()
}

// UnsetDefault removes the default flag from this template
func (t *LabelTemplate) UnsetDefault() {
	if !t.IsDefault {
		return
	}
	t.IsDefault = false
	t.UpdatedAt = time.Now()
}

// Bounds returns the printable pixel bounds of a single label
func (t *LabelTemplate) Bounds() Bounds {
	return BoundsForLabel(t.LabelWidth, t.LabelHeight)
}

func validateTemplateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	return nil
}
