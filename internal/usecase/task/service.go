package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/lucasmrdev/meeting-planner/errors"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/domain/repositories"
	"github.com/lucasmrdev/meeting-planner/pkg/datetime"
)

// Service handles task business logic, including the kanban status
// protocol.
type Service struct {
	taskRepo repositories.TaskRepository
	logger   *zap.Logger
}

// NewService creates a new task service
func NewService(taskRepo repositories.TaskRepository, logger *zap.Logger) *Service {
	return &Service{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateInput represents input for creating a task
type CreateInput struct {
	Description string
	Deadline    string
	MeetingID   uuid.UUID
	OwnerID     uuid.UUID
}

// Create validates and creates a task
func (s *Service) Create(ctx context.Context, input CreateInput) (*entities.Task, error) {
	fieldErrors := make(map[string]string)
	if input.Description == "" {
		fieldErrors["description"] = "não pode ficar em branco"
	}

	var deadline time.Time
	if input.Deadline == "" {
		fieldErrors["deadline"] = "não pode ficar em branco"
	} else {
		t, err := datetime.ParseDate(input.Deadline)
		if err != nil {
			fieldErrors["deadline"] = "não é uma data válida"
		} else {
			deadline = t
		}
	}

	if len(fieldErrors) > 0 {
		return nil, apperrors.ErrValidation(fieldErrors)
	}

	task := &entities.Task{
		Description: input.Description,
		Deadline:    datatypes.Date(deadline),
		Status:      entities.TaskStatusPending,
		MeetingID:   input.MeetingID,
		OwnerID:     input.OwnerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Info("task.created",
		zap.String("task_id", task.ID.String()),
		zap.String("meeting_id", input.MeetingID.String()),
	)
	return task, nil
}

// UpdateStatus moves a task to another kanban column. The submitted
// status is validated against the fixed set before anything is
// persisted, so an unknown value never reaches storage.
func (s *Service) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, rawStatus string) (*entities.Task, error) {
	status := entities.TaskStatus(rawStatus)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus(rawStatus)
	}

	task, err := s.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if task.Status == status {
		return task, nil
	}

	if err := s.taskRepo.UpdateStatus(ctx, ownerID, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound(id.String())
		}
		s.logger.Error("task.update_status.failed",
			zap.String("task_id", id.String()),
			zap.String("status", rawStatus),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	task.Status = status

	s.logger.Info("task.status_updated",
		zap.String("task_id", id.String()),
		zap.String("status", rawStatus),
	)
	return task, nil
}

// UpdateInput carries the editable fields of a task.
type UpdateInput struct {
	Description *string
	Deadline    *string
}

// Update edits a task scoped to its owner
func (s *Service) Update(ctx context.Context, ownerID, id uuid.UUID, input UpdateInput) (*entities.Task, error) {
	task, err := s.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	fieldErrors := make(map[string]string)
	if input.Description != nil {
		if *input.Description == "" {
			fieldErrors["description"] = "não pode ficar em branco"
		} else {
			task.Description = *input.Description
		}
	}
	if input.Deadline != nil {
		t, err := datetime.ParseDate(*input.Deadline)
		if err != nil {
			fieldErrors["deadline"] = "não é uma data válida"
		} else {
			task.Deadline = datatypes.Date(t)
		}
	}
	if len(fieldErrors) > 0 {
		return nil, apperrors.ErrValidation(fieldErrors)
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

// Delete removes a task scoped to its owner
func (s *Service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound(id.String())
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// Get retrieves a single task scoped to its owner
func (s *Service) Get(ctx context.Context, ownerID, id uuid.UUID) (*entities.Task, error) {
	return s.find(ctx, ownerID, id)
}

// List retrieves the owner's tasks ordered by deadline
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Column is one kanban column with its tasks in deadline order.
type Column struct {
	Status entities.TaskStatus
	Label  string
	Tasks  []*entities.Task
}

// Columns groups the owner's tasks into the fixed kanban columns,
// preserving the repository's deadline ordering within each column.
func (s *Service) Columns(ctx context.Context, ownerID uuid.UUID) ([]Column, error) {
	tasks, err := s.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	byStatus := make(map[entities.TaskStatus][]*entities.Task, len(entities.KanbanStatuses))
	for _, t := range tasks {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	columns := make([]Column, 0, len(entities.KanbanStatuses))
	for _, status := range entities.KanbanStatuses {
		sample := entities.Task{Status: status}
		columns = append(columns, Column{
			Status: status,
			Label:  sample.StatusDisplay(),
			Tasks:  byStatus[status],
		})
	}
	return columns, nil
}

func (s *Service) find(ctx context.Context, ownerID, id uuid.UUID) (*entities.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound(id.String())
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}
