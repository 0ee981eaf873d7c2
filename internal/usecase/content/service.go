package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/lucasmrdev/meeting-planner/errors"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/domain/repositories"
)

// Service handles field-scoped content updates for the autosave protocol.
type Service struct {
	contentRepo repositories.ContentRepository
	logger      *zap.Logger
}

// NewService creates a new content service
func NewService(contentRepo repositories.ContentRepository, logger *zap.Logger) *Service {
	return &Service{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// UpdateField persists a single named content field for a meeting. The
// field name is validated against the fixed set before touching storage.
func (s *Service) UpdateField(ctx context.Context, meetingID uuid.UUID, field, value string) error {
	if !entities.IsContentField(field) {
		return apperrors.ErrUnknownContentField(field)
	}

	if err := s.contentRepo.UpdateField(ctx, meetingID, field, value); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContentNotFound(meetingID.String())
		}
		s.logger.Error("content.update_field.failed",
			zap.String("meeting_id", meetingID.String()),
			zap.String("field", field),
			zap.Error(err),
		)
		return fmt.Errorf("failed to update content field: %w", err)
	}

	s.logger.Info("content.field_saved",
		zap.String("meeting_id", meetingID.String()),
		zap.String("field", field),
		zap.Int("length", len(value)),
	)
	return nil
}

// Get retrieves the meeting's content
func (s *Service) Get(ctx context.Context, meetingID uuid.UUID) (*entities.Content, error) {
	content, err := s.contentRepo.FindByMeeting(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContentNotFound(meetingID.String())
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return content, nil
}
