package labeling

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/domain/catalog"
	"github.com/sellerdesk/backend/internal/domain/labeling"
	"github.com/sellerdesk/backend/internal/domain/shared"
)

// RuleService manages shippers, their barcode rules and rule-based
// template selection.
type RuleService struct {
	shipperRepo  labeling.ShipperRepository
	templateRepo labeling.TemplateRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewRuleService creates a new RuleService
func NewRuleService(
	shipperRepo labeling.ShipperRepository,
	templateRepo labeling.TemplateRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *RuleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleService{
		shipperRepo:  shipperRepo,
		templateRepo: templateRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// =============================================================================
// Shipper Operations
// =============================================================================

// ListShippers returns all shippers with their rules
func (s *RuleService) ListShippers(ctx context.Context) ([]ShipperResponse, error) {
	shippers, err := s.shipperRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shippers: %w", err)
	}

	out := make([]ShipperResponse, len(shippers))
	for i := range shippers {
		out[i] = toShipperResponse(&shippers[i])
	}
	return out, nil
}

// GetShipper returns one shipper by ID
func (s *RuleService) GetShipper(ctx context.Context, id uuid.UUID) (*ShipperResponse, error) {
	shipper, err := s.shipperRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toShipperResponse(shipper)
	return &resp, nil
}

// CreateShipper registers an active shipper with no rules
func (s *RuleService) CreateShipper(ctx context.Context, req CreateShipperRequest) (*ShipperResponse, error) {
	shipper, err := labeling.NewShipper(req.Name, req.Code)
	if err != nil {
		return nil, err
	}

	if err := s.shipperRepo.Append(ctx, shipper); err != nil {
		return nil, fmt.Errorf("failed to save shipper: %w", err)
	}

	s.logger.Info("shipper created",
		zap.String("id", shipper.ID.String()),
		zap.String("code", shipper.Code))

	resp := toShipperResponse(shipper)
	return &resp, nil
}

// UpdateShipper changes a shipper's name or active flag
func (s *RuleService) UpdateShipper(ctx context.Context, id uuid.UUID, req UpdateShipperRequest) (*ShipperResponse, error) {
	shipper, err := s.shipperRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		shipper.Name = *req.Name
	}
	if req.IsActive != nil {
		shipper.IsActive = *req.IsActive
	}
	shipper.Touch()

	if err := s.shipperRepo.Save(ctx, shipper); err != nil {
		return nil, fmt.Errorf("failed to save shipper: %w", err)
	}

	resp := toShipperResponse(shipper)
	return &resp, nil
}

// DeleteShipper removes a shipper and its rules
func (s *RuleService) DeleteShipper(ctx context.Context, id uuid.UUID) error {
	return s.shipperRepo.Delete(ctx, id)
}

// =============================================================================
// Rule Operations
// =============================================================================

// AddRule attaches a barcode rule to a shipper. The target template must
// exist; dangling rules would silently never print the right label.
func (s *RuleService) AddRule(ctx context.Context, shipperID uuid.UUID, req CreateRuleRequest) (*RuleResponse, error) {
	shipper, err := s.shipperRepo.FindByID(ctx, shipperID)
	if err != nil {
		return nil, err
	}
	if _, err := s.templateRepo.FindByID(ctx, req.TemplateID); err != nil {
		return nil, err
	}

	conditions, err := toConditions(req.Conditions)
	if err != nil {
		return nil, err
	}

	rule, err := labeling.NewBarcodeRule(shipper.ID, req.TemplateID, req.Priority, conditions)
	if err != nil {
		return nil, err
	}

	shipper.AddRule(*rule)
	if err := s.shipperRepo.Save(ctx, shipper); err != nil {
		return nil, fmt.Errorf("failed to save shipper: %w", err)
	}

	s.logger.Info("barcode rule added",
		zap.String("shipperId", shipper.ID.String()),
		zap.String("ruleId", rule.ID.String()),
		zap.Int("priority", rule.Priority))

	resp := toRuleResponse(rule)
	return &resp, nil
}

// UpdateRule changes a rule's template, priority, conditions or active flag
func (s *RuleService) UpdateRule(ctx context.Context, shipperID, ruleID uuid.UUID, req UpdateRuleRequest) (*RuleResponse, error) {
	shipper, err := s.shipperRepo.FindByID(ctx, shipperID)
	if err != nil {
		return nil, err
	}

	rule := shipper.FindRule(ruleID)
	if rule == nil {
		return nil, shared.ErrNotFound
	}

	if req.TemplateID != nil {
		if _, err := s.templateRepo.FindByID(ctx, *req.TemplateID); err != nil {
			return nil, err
		}
		rule.TemplateID = *req.TemplateID
	}
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	if req.Conditions != nil {
		conditions, err := toConditions(req.Conditions)
		if err != nil {
			return nil, err
		}
		rule.Conditions = conditions
	}
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := s.shipperRepo.Save(ctx, shipper); err != nil {
		return nil, fmt.Errorf("failed to save shipper: %w", err)
	}

	resp := toRuleResponse(rule)
	return &resp, nil
}

// RemoveRule detaches a rule from its shipper
func (s *RuleService) RemoveRule(ctx context.Context, shipperID, ruleID uuid.UUID) error {
	shipper, err := s.shipperRepo.FindByID(ctx, shipperID)
	if err != nil {
		return err
	}

	if !shipper.RemoveRule(ruleID) {
		return shared.ErrNotFound
	}

	if err := s.shipperRepo.Save(ctx, shipper); err != nil {
		return fmt.Errorf("failed to save shipper: %w", err)
	}
	return nil
}

// =============================================================================
// Selection
// =============================================================================

// SelectTemplate evaluates a shipper's active rules against a product and
// returns the matched rule's template. No matching rule is a normal
// outcome reported as Matched false, not an error.
func (s *RuleService) SelectTemplate(ctx context.Context, shipperID uuid.UUID, req SelectTemplateRequest) (*SelectionResponse, error) {
	shipper, err := s.shipperRepo.FindByID(ctx, shipperID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindBySKU(ctx, req.SKU)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "상품을 찾을 수 없습니다: "+req.SKU)
		}
		return nil, fmt.Errorf("failed to load product %s: %w", req.SKU, err)
	}

	rule := shipper.SelectRule(product)
	if rule == nil {
		return &SelectionResponse{Matched: false}, nil
	}

	template, err := s.templateRepo.FindByID(ctx, rule.TemplateID)
	if err != nil {
		return nil, err
	}

	templateResp := toTemplateResponse(template)
	return &SelectionResponse{
		Matched:  true,
		RuleID:   rule.ID.String(),
		Template: &templateResp,
	}, nil
}

func toConditions(dtos []ConditionDTO) ([]labeling.BarcodeCondition, error) {
	conditions := make([]labeling.BarcodeCondition, len(dtos))
	for i, dto := range dtos {
		c := labeling.BarcodeCondition{
			Field:    catalog.ConditionField(dto.Field),
			Operator: labeling.Operator(dto.Operator),
			Value:    dto.Value,
			Values:   dto.Values,
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		conditions[i] = c
	}
	return conditions, nil
}
