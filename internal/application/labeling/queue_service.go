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

// QueueService handles print queue operations
type QueueService struct {
	queueRepo    labeling.QueueRepository
	templateRepo labeling.TemplateRepository
	cleanupRepo  labeling.CleanupRuleRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewQueueService creates a new QueueService
func NewQueueService(
	queueRepo labeling.QueueRepository,
	templateRepo labeling.TemplateRepository,
	cleanupRepo labeling.CleanupRuleRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *QueueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QueueService{
		queueRepo:    queueRepo,
		templateRepo: templateRepo,
		cleanupRepo:  cleanupRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// ListQueue returns the whole queue in insertion order
func (s *QueueService) ListQueue(ctx context.Context) ([]QueueItemResponse, error) {
	items, err := s.queueRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}

	out := make([]QueueItemResponse, len(items))
	for i := range items {
		out[i] = toQueueItemResponse(&items[i])
	}
	return out, nil
}

// Enqueue adds one pending item per selected product. Names are sanitized
// with the current cleanup rules at enqueue time; the template is the
// request's or the collection default. An empty selection changes nothing.
func (s *QueueService) Enqueue(ctx context.Context, req EnqueueRequest) (*BatchResult, error) {
	if len(req.SKUs) == 0 {
		return nil, shared.NewDomainError("EMPTY_SELECTION", "추가할 상품을 선택해주세요")
	}

	templateID, err := s.resolveTemplate(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	rules, err := s.cleanupRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cleanup rules: %w", err)
	}

	items := make([]labeling.QueueItem, 0, len(req.SKUs))
	for _, sku := range req.SKUs {
		product, err := s.productRepo.FindBySKU(ctx, sku)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND", "상품을 찾을 수 없습니다: "+sku)
			}
			return nil, fmt.Errorf("failed to load product %s: %w", sku, err)
		}

		item, err := labeling.NewQueueItem(product.Name, labeling.Sanitize(product.Name, rules), product.SKU, templateID)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	if err := s.queueRepo.Append(ctx, items); err != nil {
		return nil, fmt.Errorf("failed to append queue items: %w", err)
	}

	s.logger.Info("products enqueued",
		zap.Int("count", len(items)),
		zap.String("templateId", templateID.String()))

	return &BatchResult{
		Affected: len(items),
		Message:  fmt.Sprintf("%d개 상품이 인쇄 대기열에 추가되었습니다", len(items)),
	}, nil
}

// UpdateStatus sets the status on every selected item. Backward moves are
// allowed so completed items can be re-printed. An empty selection
// changes nothing.
func (s *QueueService) UpdateStatus(ctx context.Context, req UpdateQueueStatusRequest) (*BatchResult, error) {
	if len(req.IDs) == 0 {
		return nil, shared.NewDomainError("EMPTY_SELECTION", "변경할 항목을 선택해주세요")
	}

	status := labeling.QueueStatus(req.Status)
	affected := 0
	for _, id := range req.IDs {
		item, err := s.queueRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if err := item.SetStatus(status); err != nil {
			return nil, err
		}
		if err := s.queueRepo.Save(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to save queue item: %w", err)
		}
		affected++
	}

	return &BatchResult{
		Affected: affected,
		Message:  fmt.Sprintf("%d개 항목이 %s 상태로 변경되었습니다", affected, status.String()),
	}, nil
}

// UpdateQuantity changes how many labels one item prints
func (s *QueueService) UpdateQuantity(ctx context.Context, id uuid.UUID, req UpdateQuantityRequest) (*QueueItemResponse, error) {
	item, err := s.queueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := item.SetQuantity(req.Quantity); err != nil {
		return nil, err
	}
	if err := s.queueRepo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save queue item: %w", err)
	}

	resp := toQueueItemResponse(item)
	return &resp, nil
}

// Remove deletes the selected items. An empty selection changes nothing.
func (s *QueueService) Remove(ctx context.Context, req RemoveQueueItemsRequest) (*BatchResult, error) {
	if len(req.IDs) == 0 {
		return nil, shared.NewDomainError("EMPTY_SELECTION", "삭제할 항목을 선택해주세요")
	}

	removed, err := s.queueRepo.Remove(ctx, req.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to remove queue items: %w", err)
	}

	s.logger.Info("queue items removed", zap.Int("count", removed))

	return &BatchResult{
		Affected: removed,
		Message:  fmt.Sprintf("%d개 항목이 삭제되었습니다", removed),
	}, nil
}

// Clear empties the whole queue
func (s *QueueService) Clear(ctx context.Context) (*BatchResult, error) {
	items, err := s.queueRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queue: %w", err)
	}
	if err := s.queueRepo.Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear queue: %w", err)
	}

	s.logger.Info("print queue cleared", zap.Int("count", len(items)))

	return &BatchResult{
		Affected: len(items),
		Message:  "인쇄 대기열이 비워졌습니다",
	}, nil
}

// resolveTemplate returns the requested template's ID after checking it
// exists, or the collection default when the request names none.
func (s *QueueService) resolveTemplate(ctx context.Context, requested *uuid.UUID) (uuid.UUID, error) {
	if requested != nil {
		template, err := s.templateRepo.FindByID(ctx, *requested)
		if err != nil {
			return uuid.Nil, err
		}
		return template.ID, nil
	}

	template, err := s.templateRepo.FindDefault(ctx)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return uuid.Nil, shared.NewDomainError("NOT_FOUND", "기본 템플릿이 없습니다")
		}
		return uuid.Nil, err
	}
	return template.ID, nil
}
