package decision

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/lucasmrdev/meeting-planner/errors"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/domain/repositories"
)

// Service handles decision business logic.
type Service struct {
	decisionRepo repositories.DecisionRepository
	logger       *zap.Logger
}

// NewService creates a new decision service
func NewService(decisionRepo repositories.DecisionRepository, logger *zap.Logger) *Service {
	return &Service{
		decisionRepo: decisionRepo,
		logger:       logger,
	}
}

// CreateInput represents input for recording a decision
type CreateInput struct {
	MeetingID   uuid.UUID
	Description string
	Status      string
}

// Create validates and records a decision on a meeting
func (s *Service) Create(ctx context.Context, input CreateInput) (*entities.Decision, error) {
	fieldErrors := make(map[string]string)
	if input.Description == "" {
		fieldErrors["description"] = "não pode ficar em branco"
	}

	status := entities.DecisionStatusPending
	if input.Status != "" {
		status = entities.DecisionStatus(input.Status)
		if !status.IsValid() {
			fieldErrors["status"] = "não está incluído na lista"
		}
	}

	if len(fieldErrors) > 0 {
		return nil, apperrors.ErrValidation(fieldErrors)
	}

	decision := &entities.Decision{
		MeetingID:   input.MeetingID,
		Description: input.Description,
		Status:      status,
	}

	if err := s.decisionRepo.Create(ctx, decision); err != nil {
		return nil, fmt.Errorf("failed to create decision: %w", err)
	}

	s.logger.Info("decision.recorded",
		zap.String("decision_id", decision.ID.String()),
		zap.String("meeting_id", input.MeetingID.String()),
	)
	return decision, nil
}

// List retrieves a meeting's decisions, newest first
func (s *Service) List(ctx context.Context, meetingID uuid.UUID) ([]*entities.Decision, error) {
	decisions, err := s.decisionRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}
	return decisions, nil
}
