package labeling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sellerdesk/backend/internal/domain/labeling"
)

// CodeFormatService handles code format management and code generation
type CodeFormatService struct {
	formatRepo labeling.CodeFormatRepository
	logger     *zap.Logger
	now        func() time.Time
}

// NewCodeFormatService creates a new CodeFormatService
func NewCodeFormatService(formatRepo labeling.CodeFormatRepository, logger *zap.Logger) *CodeFormatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CodeFormatService{
		formatRepo: formatRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// ListFormats returns all code formats
func (s *CodeFormatService) ListFormats(ctx context.Context) ([]CodeFormatResponse, error) {
	formats, err := s.formatRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list code formats: %w", err)
	}

	out := make([]CodeFormatResponse, len(formats))
	for i := range formats {
		out[i] = toCodeFormatResponse(&formats[i])
	}
	return out, nil
}

// CreateFormat creates a code format with its sequence at 1
func (s *CodeFormatService) CreateFormat(ctx context.Context, req CreateCodeFormatRequest) (*CodeFormatResponse, error) {
	format, err := labeling.NewCodeFormat(req.Name, req.Pattern)
	if err != nil {
		return nil, err
	}

	if err := s.formatRepo.Append(ctx, format); err != nil {
		return nil, fmt.Errorf("failed to save code format: %w", err)
	}

	s.logger.Info("code format created",
		zap.String("id", format.ID.String()),
		zap.String("pattern", format.Pattern))

	resp := toCodeFormatResponse(format)
	return &resp, nil
}

// UpdateFormat renames a format or changes its pattern. The sequence is
// never reset by an update; a new counter means a new format.
func (s *CodeFormatService) UpdateFormat(ctx context.Context, id uuid.UUID, req UpdateCodeFormatRequest) (*CodeFormatResponse, error) {
	format, err := s.formatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := format.Apply(labeling.CodeFormatPatch{
		Name:    req.Name,
		Pattern: req.Pattern,
	}); err != nil {
		return nil, err
	}

	if err := s.formatRepo.Save(ctx, format); err != nil {
		return nil, fmt.Errorf("failed to save code format: %w", err)
	}

	resp := toCodeFormatResponse(format)
	return &resp, nil
}

// DeleteFormat removes a format and its sequence
func (s *CodeFormatService) DeleteFormat(ctx context.Context, id uuid.UUID) error {
	return s.formatRepo.Delete(ctx, id)
}

// GenerateNext renders the next code for a format and advances its
// sequence, persisting the new value before the code is returned. A
// missing format is an explicit NOT_FOUND, never a silent empty code.
func (s *CodeFormatService) GenerateNext(ctx context.Context, id uuid.UUID, req GenerateCodeRequest) (*GeneratedCodeResponse, error) {
	format, err := s.formatRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	code := format.Render(s.now(), req.SKU)
	seq := format.Seq
	format.Advance()

	if err := s.formatRepo.Save(ctx, format); err != nil {
		return nil, fmt.Errorf("failed to persist advanced sequence: %w", err)
	}

	s.logger.Debug("code generated",
		zap.String("formatId", format.ID.String()),
		zap.Int64("seq", seq))

	return &GeneratedCodeResponse{Code: code, Seq: seq}, nil
}
