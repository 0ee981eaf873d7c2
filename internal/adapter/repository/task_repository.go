package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Omit("Owner", "Meeting").Create(task).Error
}

// FindByID retrieves a task scoped to its owner
func (r *taskRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entities.Task, error) {
	var task entities.Task
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&task).Error

	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOwner retrieves the owner's tasks with their meetings, ordered by
// deadline
func (r *taskRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	var tasks []*entities.Task
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Where("owner_id = ?", ownerID).
		Order("deadline ASC").
		Find(&tasks).Error
	return tasks, err
}

// Update persists a task
func (r *taskRepository) Update(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Omit("Owner", "Meeting").Save(task).Error
}

// Delete removes a task scoped to its owner
func (r *taskRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&entities.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus updates only the task's status
func (r *taskRepository) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status entities.TaskStatus) error {
	res := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
