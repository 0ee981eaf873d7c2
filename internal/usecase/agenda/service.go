package agenda

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

// Service handles agenda business logic, including the reorder protocol.
type Service struct {
	agendaRepo  repositories.AgendaRepository
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
}

// NewService creates a new agenda service
func NewService(agendaRepo repositories.AgendaRepository, meetingRepo repositories.MeetingRepository, logger *zap.Logger) *Service {
	return &Service{
		agendaRepo:  agendaRepo,
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

// PositionInput is one submitted {id, position} pair.
type PositionInput struct {
	ID       uuid.UUID
	Position int
}

// Reorder applies the client-submitted ordering transactionally and
// returns the full agenda re-read in position order, so the caller can
// reconcile without trusting its own optimistic state. Positions are
// applied verbatim; contiguity and uniqueness are not enforced.
func (s *Service) Reorder(ctx context.Context, meetingID uuid.UUID, positions []PositionInput) ([]*entities.Agenda, error) {
	if len(positions) == 0 {
		return nil, apperrors.ErrInvalidArgument("no positions submitted")
	}
	for _, p := range positions {
		if p.Position < 1 {
			return nil, apperrors.ErrInvalidArgument(fmt.Sprintf("position must be a positive integer, got %d", p.Position))
		}
	}

	pairs := make([]repositories.AgendaPosition, len(positions))
	for i, p := range positions {
		pairs[i] = repositories.AgendaPosition{ID: p.ID, Position: p.Position}
	}

	if err := s.agendaRepo.Reorder(ctx, meetingID, pairs); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("agenda.reorder.unknown_item",
				zap.String("meeting_id", meetingID.String()),
			)
			return nil, apperrors.ErrAgendaNotFound("")
		}
		s.logger.Error("agenda.reorder.failed",
			zap.String("meeting_id", meetingID.String()),
			zap.Error(err),
		)
		return nil, apperrors.ErrReorderFailed(err)
	}

	agendas, err := s.agendaRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read agenda: %w", err)
	}

	s.logger.Info("agenda.reordered",
		zap.String("meeting_id", meetingID.String()),
		zap.Int("items", len(positions)),
	)

	return agendas, nil
}

// UpdateInput carries the editable fields of one agenda.
type UpdateInput struct {
	Title       *string
	Description *string
	Position    *int
	Check       *bool
}

// Update edits a single agenda scoped to its meeting
func (s *Service) Update(ctx context.Context, meetingID, id uuid.UUID, input UpdateInput) (*entities.Agenda, error) {
	agenda, err := s.find(ctx, meetingID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		agenda.Title = *input.Title
	}
	if input.Description != nil {
		agenda.Description = *input.Description
	}
	if input.Position != nil {
		agenda.Position = *input.Position
	}
	if input.Check != nil {
		agenda.Check = *input.Check
	}

	if err := s.agendaRepo.Update(ctx, agenda); err != nil {
		return nil, fmt.Errorf("failed to update agenda: %w", err)
	}
	return agenda, nil
}

// ToggleCheck sets the discussed flag of an agenda
func (s *Service) ToggleCheck(ctx context.Context, meetingID, id uuid.UUID, check bool) (*entities.Agenda, error) {
	agenda, err := s.find(ctx, meetingID, id)
	if err != nil {
		return nil, err
	}

	agenda.Check = check
	if err := s.agendaRepo.Update(ctx, agenda); err != nil {
		return nil, fmt.Errorf("failed to toggle agenda check: %w", err)
	}
	return agenda, nil
}

// Delete removes an agenda scoped to its meeting
func (s *Service) Delete(ctx context.Context, meetingID, id uuid.UUID) error {
	if err := s.agendaRepo.Delete(ctx, meetingID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAgendaNotFound(id.String())
		}
		return fmt.Errorf("failed to delete agenda: %w", err)
	}
	return nil
}

// List retrieves a meeting's agendas in position order
func (s *Service) List(ctx context.Context, meetingID uuid.UUID) ([]*entities.Agenda, error) {
	agendas, err := s.agendaRepo.ListByMeeting(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list agendas: %w", err)
	}
	return agendas, nil
}

func (s *Service) find(ctx context.Context, meetingID, id uuid.UUID) (*entities.Agenda, error) {
	agenda, err := s.agendaRepo.FindByID(ctx, meetingID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgendaNotFound(id.String())
		}
		return nil, fmt.Errorf("failed to find agenda: %w", err)
	}
	return agenda, nil
}
