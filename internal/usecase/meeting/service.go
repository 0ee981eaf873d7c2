package meeting

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
	"github.com/lucasmrdev/meeting-planner/pkg/datetime"
)

// Service handles meeting business logic, including the step wizard.
type Service struct {
	meetingRepo repositories.MeetingRepository
	logger      *zap.Logger
}

// NewService creates a new meeting service
func NewService(meetingRepo repositories.MeetingRepository, logger *zap.Logger) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		logger:      logger,
	}
}

// CreateInput represents input for creating a meeting
type CreateInput struct {
	Title         string
	Description   string
	StartDatetime string
	EndDatetime   string
	Location      string
	CreatorID     uuid.UUID
}

// Create validates and creates a meeting together with its empty content
// and seed agenda. The bootstrap is atomic: if any part fails, nothing
// persists.
func (s *Service) Create(ctx context.Context, input CreateInput) (*entities.Meeting, error) {
	fieldErrors := make(map[string]string)

	meeting := &entities.Meeting{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Status:      entities.MeetingStatusScheduled,
		CreatorID:   input.CreatorID,
	}

	if input.StartDatetime != "" {
		if t, err := datetime.Parse(input.StartDatetime); err != nil {
			fieldErrors["start_datetime"] = "não é uma data válida"
		} else {
			meeting.StartDatetime = t
		}
	}
	if input.EndDatetime != "" {
		if t, err := datetime.Parse(input.EndDatetime); err != nil {
			fieldErrors["end_datetime"] = "não é uma data válida"
		} else {
			meeting.EndDatetime = t
		}
	}

	if err := validateAggregate(meeting, fieldErrors); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.CreateWithBootstrap(ctx, meeting); err != nil {
		s.logger.Error("meeting.create.bootstrap_failed",
			zap.String("title", input.Title),
			zap.Error(err),
		)
		return nil, apperrors.ErrMeetingBootstrapFailed(err)
	}

	s.logger.Info("meeting.created",
		zap.String("meeting_id", meeting.ID.String()),
		zap.String("creator_id", input.CreatorID.String()),
	)

	return meeting, nil
}

// Get retrieves a meeting aggregate
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMeetingNotFound(id.String())
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return meeting, nil
}

// List retrieves all meetings created by a user
func (s *Service) List(ctx context.Context, creatorID uuid.UUID) ([]*entities.Meeting, error) {
	meetings, err := s.meetingRepo.FindByCreator(ctx, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return meetings, nil
}

// EditData is the payload the edit view renders for one wizard step.
type EditData struct {
	Meeting *entities.Meeting
	Step    Step
}

// Edit loads the meeting scoped to the requested step. The content is
// built in memory when absent so the content step always has something
// to render.
func (s *Service) Edit(ctx context.Context, id uuid.UUID, rawStep string) (*EditData, error) {
	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	step := ParseStep(rawStep)
	if step == StepContent && meeting.Content == nil {
		meeting.Content = &entities.Content{MeetingID: meeting.ID}
	}

	return &EditData{Meeting: meeting, Step: step}, nil
}

// UpdateStep runs one submission of the wizard state machine: the whole
// aggregate is validated and persisted via a single partial update, and
// the result names the step navigation proceeds to.
func (s *Service) UpdateStep(ctx context.Context, id uuid.UUID, rawStep string, input UpdateInput) (*StepResult, error) {
	step := ParseStep(rawStep)

	meeting, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fieldErrors := make(map[string]string)
	applyBasicFields(meeting, input, fieldErrors)
	applyContent(meeting, input.Content)
	destroyIDs := applyAgendas(meeting, input.Agendas)

	if input.Status != nil {
		if err := applyStatus(meeting, *input.Status); err != nil {
			return nil, err
		}
	}

	if err := validateAggregate(meeting, fieldErrors); err != nil {
		return nil, err
	}

	if err := s.meetingRepo.SaveAggregate(ctx, meeting, destroyIDs); err != nil {
		s.logger.Error("meeting.update_step.save_failed",
			zap.String("meeting_id", id.String()),
			zap.String("step", string(step)),
			zap.Error(err),
		)
		return nil, apperrors.ErrDBTransactionFailed(err)
	}

	s.logger.Info("meeting.step_saved",
		zap.String("meeting_id", id.String()),
		zap.String("step", string(step)),
		zap.String("next_step", string(step.Next())),
	)

	result := &StepResult{
		Meeting:  meeting,
		Step:     step,
		NextStep: step.Next(),
		Notice:   step.Notice(),
	}
	if step == StepAgenda {
		result.AgendaID = newestAgenda(meeting)
	}
	return result, nil
}

// Delete removes a meeting and everything it owns
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.meetingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meeting: %w", err)
	}
	return nil
}
