package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *entities.Task) error

	// FindByID retrieves a task scoped to its owner
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entities.Task, error)

	// ListByOwner retrieves the owner's tasks with their meetings, ordered
	// by deadline
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error)

	// Update persists a task
	Update(ctx context.Context, task *entities.Task) error

	// Delete removes a task scoped to its owner
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// UpdateStatus updates only the task's status
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status entities.TaskStatus) error
}
