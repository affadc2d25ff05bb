package labeling

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/domain/labeling"
)

// CleanupService manages the sanitizer's rule list and previews its output
type CleanupService struct {
	ruleRepo labeling.CleanupRuleRepository
	logger   *zap.Logger
}

// NewCleanupService creates a new CleanupService
func NewCleanupService(ruleRepo labeling.CleanupRuleRepository, logger *zap.Logger) *CleanupService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CleanupService{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

// ListRules returns all cleanup rules in application order
func (s *CleanupService) ListRules(ctx context.Context) ([]CleanupRuleResponse, error) {
	rules, err := s.ruleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cleanup rules: %w", err)
	}

	out := make([]CleanupRuleResponse, len(rules))
	for i := range rules {
		out[i] = toCleanupRuleResponse(&rules[i])
	}
	return out, nil
}

// CreateRule appends an enabled rule to the end of the list
func (s *CleanupService) CreateRule(ctx context.Context, req CreateCleanupRuleRequest) (*CleanupRuleResponse, error) {
	rule := labeling.NewCleanupRule(req.Keyword, req.Description)

	if err := s.ruleRepo.Append(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to save cleanup rule: %w", err)
	}

	s.logger.Info("cleanup rule created",
		zap.String("id", rule.ID.String()),
		zap.String("keyword", rule.Keyword))

	resp := toCleanupRuleResponse(rule)
	return &resp, nil
}

// UpdateRule changes a rule's keyword, description or enabled flag
func (s *CleanupService) UpdateRule(ctx context.Context, id uuid.UUID, req UpdateCleanupRuleRequest) (*CleanupRuleResponse, error) {
	rule, err := s.ruleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := rule.Apply(labeling.CleanupRulePatch{
		Keyword:     req.Keyword,
		Description: req.Description,
		Enabled:     req.Enabled,
	}); err != nil {
		return nil, err
	}

	if err := s.ruleRepo.Save(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to save cleanup rule: %w", err)
	}

	resp := toCleanupRuleResponse(rule)
	return &resp, nil
}

// DeleteRule removes a rule from the list
func (s *CleanupService) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return s.ruleRepo.Delete(ctx, id)
}

// Preview runs the sanitizer over a raw name with the current rules
// without touching any state.
func (s *CleanupService) Preview(ctx context.Context, req SanitizePreviewRequest) (*SanitizePreviewResponse, error) {
	rules, err := s.ruleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cleanup rules: %w", err)
	}

	return &SanitizePreviewResponse{
		Original:  req.Name,
		Sanitized: labeling.Sanitize(req.Name, rules),
	}, nil
}
