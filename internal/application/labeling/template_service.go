package labeling

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/domain/labeling"
	"github.com/sellerdesk/backend/internal/domain/shared"
)

// TemplateService handles label template and element layout operations
type TemplateService struct {
	templateRepo labeling.TemplateRepository
	elementRepo  labeling.ElementRepository
	logger       *zap.Logger
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(
	templateRepo labeling.TemplateRepository,
	elementRepo labeling.ElementRepository,
	logger *zap.Logger,
) *TemplateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TemplateService{
		templateRepo: templateRepo,
		elementRepo:  elementRepo,
		logger:       logger,
	}
}

// =============================================================================
// Template Operations
// =============================================================================

// ListTemplates returns all templates, newest first
func (s *TemplateService) ListTemplates(ctx context.Context) ([]TemplateResponse, error) {
	templates, err := s.templateRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	out := make([]TemplateResponse, len(templates))
	for i := range templates {
		out[i] = toTemplateResponse(&templates[i])
	}
	return out, nil
}

// GetTemplate returns one template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*TemplateResponse, error) {
	template, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toTemplateResponse(template)
	return &resp, nil
}

// CreateTemplate creates a template with default geometry and prepends it
// to the collection so the console lists it first.
func (s *TemplateService) CreateTemplate(ctx context.Context, req CreateTemplateRequest) (*TemplateResponse, error) {
	template, err := labeling.NewLabelTemplate(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.templateRepo.Insert(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	s.logger.Info("label template created",
		zap.String("id", template.ID.String()),
		zap.String("name", template.Name))

	resp := toTemplateResponse(template)
	return &resp, nil
}

// UpdateTemplate applies a partial update to a template
func (s *TemplateService) UpdateTemplate(ctx context.Context, id uuid.UUID, req UpdateTemplateRequest) (*TemplateResponse, error) {
	template, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch := labeling.TemplatePatch{
		Name:        req.Name,
		Description: req.Description,
		Columns:     req.Columns,
		Rows:        req.Rows,
		LabelWidth:  req.LabelWidth,
		LabelHeight: req.LabelHeight,
		FontSize:    req.FontSize,
		MarginTop:   req.MarginTop,
		MarginLeft:  req.MarginLeft,
		Gap:         req.Gap,
		AutoCut:     req.AutoCut,
	}
	if req.PaperType != nil {
		paperType := labeling.PaperType(*req.PaperType)
		patch.PaperType = &paperType
	}

	if err := template.Apply(patch); err != nil {
		return nil, err
	}

	if err := s.templateRepo.Save(ctx, template); err != nil {
		return nil, fmt.Errorf("failed to save template: %w", err)
	}

	resp := toTemplateResponse(template)
	return &resp, nil
}

// DeleteTemplate removes a template and its element layout. The default
// template cannot be removed; pick another default first.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	template, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if template.IsDefault {
		return shared.NewDomainError("INVALID_STATE", "기본 템플릿은 삭제할 수 없습니다")
	}

	if err := s.templateRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if err := s.elementRepo.DeleteByTemplate(ctx, id); err != nil {
		return fmt.Errorf("failed to delete template elements: %w", err)
	}

	s.logger.Info("label template deleted",
		zap.String("id", id.String()),
		zap.String("name", template.Name))
	return nil
}

// DuplicateTemplate copies a template and its element layout under a new
// identity. The copy is prepended and never default.
func (s *TemplateService) DuplicateTemplate(ctx context.Context, id uuid.UUID) (*TemplateResponse, error) {
	source, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	copied := source.Duplicate()
	if err := s.templateRepo.Insert(ctx, copied); err != nil {
		return nil, fmt.Errorf("failed to save duplicated template: %w", err)
	}
	if err := s.elementRepo.CopyTemplate(ctx, source.ID, copied.ID); err != nil {
		return nil, fmt.Errorf("failed to copy template elements: %w", err)
	}

	s.logger.Info("label template duplicated",
		zap.String("sourceId", source.ID.String()),
		zap.String("copyId", copied.ID.String()))

	resp := toTemplateResponse(copied)
	return &resp, nil
}

// SetDefaultTemplate makes one template the default. Every other
// template loses the flag in the same operation.
func (s *TemplateService) SetDefaultTemplate(ctx context.Context, id uuid.UUID) error {
	if err := s.templateRepo.SetDefault(ctx, id); err != nil {
		return err
	}
	s.logger.Info("default template changed", zap.String("id", id.String()))
	return nil
}

// =============================================================================
// Element Operations
// =============================================================================

// ListElements returns a template's element layout
func (s *TemplateService) ListElements(ctx context.Context, templateID uuid.UUID) ([]ElementResponse, error) {
	if _, err := s.templateRepo.FindByID(ctx, templateID); err != nil {
		return nil, err
	}

	elements, err := s.elementRepo.FindByTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to list elements: %w", err)
	}

	out := make([]ElementResponse, len(elements))
	for i := range elements {
		out[i] = toElementResponse(&elements[i])
	}
	return out, nil
}

// AddElement places a new element on a template. Size and font default by
// element type; the position is clamped into the label bounds.
func (s *TemplateService) AddElement(ctx context.Context, templateID uuid.UUID, req AddElementRequest) (*ElementResponse, error) {
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	element, err := labeling.NewLabelElement(labeling.ElementType(req.Type), req.Label, req.X, req.Y, template.Bounds())
	if err != nil {
		return nil, err
	}

	if err := s.elementRepo.Save(ctx, templateID, element); err != nil {
		return nil, fmt.Errorf("failed to save element: %w", err)
	}

	resp := toElementResponse(element)
	return &resp, nil
}

// MoveElement repositions an element, clamped into its template's bounds
func (s *TemplateService) MoveElement(ctx context.Context, elementID uuid.UUID, req MoveElementRequest) (*ElementResponse, error) {
	element, templateID, err := s.elementRepo.FindByID(ctx, elementID)
	if err != nil {
		return nil, err
	}
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	element.MoveTo(req.X, req.Y, template.Bounds())

	if err := s.elementRepo.Save(ctx, templateID, element); err != nil {
		return nil, fmt.Errorf("failed to save element: %w", err)
	}

	resp := toElementResponse(element)
	return &resp, nil
}

// UpdateElement applies a partial update to an element. Resizing
// re-clamps the position so the element stays inside the label.
func (s *TemplateService) UpdateElement(ctx context.Context, elementID uuid.UUID, req UpdateElementRequest) (*ElementResponse, error) {
	element, templateID, err := s.elementRepo.FindByID(ctx, elementID)
	if err != nil {
		return nil, err
	}
	template, err := s.templateRepo.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		element.SetLabel(*req.Label)
	}
	if req.Width != nil || req.Height != nil {
		width := element.Width
		height := element.Height
		if req.Width != nil {
			width = *req.Width
		}
		if req.Height != nil {
			height = *req.Height
		}
		if err := element.Resize(width, height, template.Bounds()); err != nil {
			return nil, err
		}
	}
	if req.FontSize != nil {
		if err := element.SetFontSize(*req.FontSize); err != nil {
			return nil, err
		}
	}
	if req.Bold != nil {
		element.SetBold(*req.Bold)
	}

	if err := s.elementRepo.Save(ctx, templateID, element); err != nil {
		return nil, fmt.Errorf("failed to save element: %w", err)
	}

	resp := toElementResponse(element)
	return &resp, nil
}

// RemoveElement deletes an element from its template
func (s *TemplateService) RemoveElement(ctx context.Context, elementID uuid.UUID) error {
	return s.elementRepo.Delete(ctx, elementID)
}
