package labeling

import (
	"time"

	"github.com/google/uuid"

	"github.com/sellerdesk/backend/internal/domain/labeling"
)

// =============================================================================
// Template DTOs
// =============================================================================

// CreateTemplateRequest represents a request to create a label template
type CreateTemplateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// UpdateTemplateRequest carries optional template field updates.
// Nil fields are left unchanged.
type UpdateTemplateRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	PaperType   *string `json:"paperType" binding:"omitempty,papertype"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Columns     *int    `json:"columns" binding:"omitempty,min=1"`
	Rows        *int    `json:"rows" binding:"omitempty,min=1"`
	LabelWidth  *int    `json:"labelWidth" binding:"omitempty,min=1"`
	LabelHeight *int    `json:"labelHeight" binding:"omitempty,min=1"`
	FontSize    *int    `json:"fontSize" binding:"omitempty,min=1"`
	MarginTop   *int    `json:"marginTop" binding:"omitempty,min=0"`
	MarginLeft  *int    `json:"marginLeft" binding:"omitempty,min=0"`
	Gap         *int    `json:"gap" binding:"omitempty,min=0"`
	AutoCut     *bool   `json:"autoCut"`
}

// TemplateResponse represents a label template
type TemplateResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PaperType   string    `json:"paperType"`
	Description string    `json:"description"`
	Columns     int       `json:"columns"`
	Rows        int       `json:"rows"`
	LabelWidth  int       `json:"labelWidth"`
	LabelHeight int       `json:"labelHeight"`
	FontSize    int       `json:"fontSize"`
	MarginTop   int       `json:"marginTop"`
	MarginLeft  int       `json:"marginLeft"`
	Gap         int       `json:"gap"`
	AutoCut     bool      `json:"autoCut"`
	IsDefault   bool      `json:"isDefault"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toTemplateResponse(t *labeling.LabelTemplate) TemplateResponse {
	return TemplateResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		PaperType:   t.PaperType.String(),
		Description: t.Description,
		Columns:     t.Columns,
		Rows:        t.Rows,
		LabelWidth:  t.LabelWidth,
		LabelHeight: t.LabelHeight,
		FontSize:    t.FontSize,
		MarginTop:   t.MarginTop,
		MarginLeft:  t.MarginLeft,
		Gap:         t.Gap,
		AutoCut:     t.AutoCut,
		IsDefault:   t.IsDefault,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// =============================================================================
// Element DTOs
// =============================================================================

// AddElementRequest represents a request to place an element on a template
type AddElementRequest struct {
	Type  string `json:"type" binding:"required,elementtype"`
	Label string `json:"label" binding:"max=100"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}

// MoveElementRequest represents a request to move an element
type MoveElementRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// UpdateElementRequest carries optional element field updates
type UpdateElementRequest struct {
	Label    *string `json:"label" binding:"omitempty,max=100"`
	Width    *int    `json:"width" binding:"omitempty,min=1"`
	Height   *int    `json:"height" binding:"omitempty,min=1"`
	FontSize *int    `json:"fontSize" binding:"omitempty,min=0"`
	Bold     *bool   `json:"bold"`
}

// ElementResponse represents a positioned label element
type ElementResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Label    string `json:"label"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FontSize int    `json:"fontSize"`
	Bold     bool   `json:"bold"`
}

func toElementResponse(e *labeling.LabelElement) ElementResponse {
	return ElementResponse{
		ID:       e.ID.String(),
		Type:     e.Type.String(),
		Label:    e.Label,
		X:        e.X,
		Y:        e.Y,
		Width:    e.Width,
		Height:   e.Height,
		FontSize: e.FontSize,
		Bold:     e.Bold,
	}
}

// =============================================================================
// Queue DTOs
// =============================================================================

// EnqueueRequest represents a request to enqueue a catalog selection
type EnqueueRequest struct {
	SKUs       []string   `json:"skus" binding:"required"`
	TemplateID *uuid.UUID `json:"templateId"`
}

// UpdateQueueStatusRequest represents a batch status update
type UpdateQueueStatusRequest struct {
	IDs    []uuid.UUID `json:"ids" binding:"required"`
	Status string      `json:"status" binding:"required,queuestatus"`
}

// UpdateQuantityRequest represents a quantity change for one item
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// RemoveQueueItemsRequest represents a batch removal
type RemoveQueueItemsRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required"`
}

// QueueItemResponse represents one queued print job
type QueueItemResponse struct {
	ID            string    `json:"id"`
	ProductName   string    `json:"productName"`
	SanitizedName string    `json:"sanitizedName"`
	SKU           string    `json:"sku"`
	Quantity      int       `json:"quantity"`
	TemplateID    string    `json:"templateId"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toQueueItemResponse(q *labeling.QueueItem) QueueItemResponse {
	return QueueItemResponse{
		ID:            q.ID.String(),
		ProductName:   q.ProductName,
		SanitizedName: q.SanitizedName,
		SKU:           q.SKU,
		Quantity:      q.Quantity,
		TemplateID:    q.TemplateID.String(),
		Status:        q.Status.String(),
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

// BatchResult reports the outcome of a batch queue operation
type BatchResult struct {
	Affected int    `json:"affected"`
	Message  string `json:"message"`
}

// =============================================================================
// Code format DTOs
// =============================================================================

// CreateCodeFormatRequest represents a request to create a code format
type CreateCodeFormatRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=100"`
	Pattern string `json:"pattern" binding:"required,min=1,max=200"`
}

// UpdateCodeFormatRequest carries optional format field updates
type UpdateCodeFormatRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Pattern *string `json:"pattern" binding:"omitempty,min=1,max=200"`
}

// GenerateCodeRequest represents a request to generate the next code
type GenerateCodeRequest struct {
	SKU string `json:"sku"`
}

// CodeFormatResponse represents a code format
type CodeFormatResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pattern   string    `json:"pattern"`
	Seq       int64     `json:"seq"`
	CreatedAt time.Time `json:"createdAt"`
}

// GeneratedCodeResponse carries one generated code
type GeneratedCodeResponse struct {
	Code string `json:"code"`
	Seq  int64  `json:"seq"`
}

func toCodeFormatResponse(f *labeling.CodeFormat) CodeFormatResponse {
	return CodeFormatResponse{
		ID:        f.ID.String(),
		Name:      f.Name,
		Pattern:   f.Pattern,
		Seq:       f.Seq,
		CreatedAt: f.CreatedAt,
	}
}

// =============================================================================
// Cleanup rule DTOs
// =============================================================================

// CreateCleanupRuleRequest represents a request to add a cleanup rule
type CreateCleanupRuleRequest struct {
	Keyword     string `json:"keyword" binding:"required,min=1,max=100"`
	Description string `json:"description" binding:"max=200"`
}

// UpdateCleanupRuleRequest carries optional rule field updates
type UpdateCleanupRuleRequest struct {
	Keyword     *string `json:"keyword" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=200"`
	Enabled     *bool   `json:"enabled"`
}

// SanitizePreviewRequest represents a preview of the sanitizer output
type SanitizePreviewRequest struct {
	Name string `json:"name" binding:"required"`
}

// SanitizePreviewResponse shows a raw name and its sanitized form
type SanitizePreviewResponse struct {
	Original  string `json:"original"`
	Sanitized string `json:"sanitized"`
}

// CleanupRuleResponse represents a cleanup rule
type CleanupRuleResponse struct {
	ID          string    `json:"id"`
	Keyword     string    `json:"keyword"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toCleanupRuleResponse(r *labeling.CleanupRule) CleanupRuleResponse {
	return CleanupRuleResponse{
		ID:          r.ID.String(),
		Keyword:     r.Keyword,
		Description: r.Description,
		Enabled:     r.Enabled,
		CreatedAt:   r.CreatedAt,
	}
}

// =============================================================================
// Shipper and rule DTOs
// =============================================================================

// CreateShipperRequest represents a request to register a shipper
type CreateShipperRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
	Code string `json:"code" binding:"required,min=1,max=20"`
}

// UpdateShipperRequest carries optional shipper field updates
type UpdateShipperRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"isActive"`
}

// ConditionDTO represents one rule condition
type ConditionDTO struct {
	Field    string   `json:"field" binding:"required"`
	Operator string   `json:"operator" binding:"required,ruleoperator"`
	Value    string   `json:"value"`
	Values   []string `json:"values"`
}

// CreateRuleRequest represents a request to add a barcode rule
type CreateRuleRequest struct {
	TemplateID uuid.UUID      `json:"templateId" binding:"required"`
	Priority   int            `json:"priority"`
	Conditions []ConditionDTO `json:"conditions"`
}

// UpdateRuleRequest carries optional rule field updates
type UpdateRuleRequest struct {
	TemplateID *uuid.UUID     `json:"templateId"`
	Priority   *int           `json:"priority"`
	Conditions []ConditionDTO `json:"conditions"`
	IsActive   *bool          `json:"isActive"`
}

// RuleResponse represents a barcode rule
type RuleResponse struct {
	ID         string         `json:"id"`
	ShipperID  string         `json:"shipperId"`
	TemplateID string         `json:"templateId"`
	Priority   int            `json:"priority"`
	Conditions []ConditionDTO `json:"conditions"`
	IsActive   bool           `json:"isActive"`
}

// ShipperResponse represents a shipper and its rules
type ShipperResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Code         string         `json:"code"`
	IsActive     bool           `json:"isActive"`
	BarcodeRules []RuleResponse `json:"barcodeRules"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// SelectTemplateRequest asks which template a shipper's rules pick for a product
type SelectTemplateRequest struct {
	SKU string `json:"sku" binding:"required"`
}

// SelectionResponse is the outcome of rule-based template selection.
// Matched false means no rule applies; that is a result, not an error.
type SelectionResponse struct {
	Matched  bool              `json:"matched"`
	RuleID   string            `json:"ruleId,omitempty"`
	Template *TemplateResponse `json:"template,omitempty"`
}

func toRuleResponse(r *labeling.BarcodeRule) RuleResponse {
	conditions := make([]ConditionDTO, len(r.Conditions))
	for i, c := range r.Conditions {
		conditions[i] = ConditionDTO{
			Field:    c.Field.String(),
			Operator: c.Operator.String(),
			Value:    c.Value,
			Values:   c.Values,
		}
	}
	return RuleResponse{
		ID:         r.ID.String(),
		ShipperID:  r.ShipperID.String(),
		TemplateID: r.TemplateID.String(),
		Priority:   r.Priority,
		Conditions: conditions,
		IsActive:   r.IsActive,
	}
}

func toShipperResponse(s *labeling.Shipper) ShipperResponse {
	rules := make([]RuleResponse, len(s.BarcodeRules))
	for i := range s.BarcodeRules {
		rules[i] = toRuleResponse(&s.BarcodeRules[i])
	}
	return ShipperResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		Code:         s.Code,
		IsActive:     s.IsActive,
		BarcodeRules: rules,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
