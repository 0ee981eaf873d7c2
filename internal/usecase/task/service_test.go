package task

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/lucasmrdev/meeting-planner/errors"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

type fakeTaskRepo struct {
	tasks         map[uuid.UUID]*entities.Task
	statusWrites  int
	updateStatErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*entities.Task)}
}

func (f *fakeTaskRepo) Create(_ context.Context, task *entities.Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) FindByID(_ context.Context, ownerID, id uuid.UUID) (*entities.Task, error) {
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	return task, nil
}

func (f *fakeTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entities.Task, error) {
	var out []*entities.Task
	for _, task := range f.tasks {
		if task.OwnerID == ownerID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task *entities.Task) error {
	f.tasks[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return gorm.ErrRecordNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, ownerID, id uuid.UUID, status entities.TaskStatus) error {
	f.statusWrites++
	if f.updateStatErr != nil {
		return f.updateStatErr
	}
	task, ok := f.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return gorm.ErrRecordNotFound
	}
	task.Status = status
	return nil
}

func seedTask(repo *fakeTaskRepo, ownerID uuid.UUID, status entities.TaskStatus) *entities.Task {
	task := &entities.Task{
		ID:          uuid.New(),
		Description: "Enviar ata",
		Deadline:    datatypes.Date(time.Now().AddDate(0, 0, 7)),
		Status:      status,
		OwnerID:     ownerID,
		MeetingID:   uuid.New(),
	}
	repo.tasks[task.ID] = task
	return task
}

func TestUpdateStatus_InvalidStatusNeverReachesStorage(t *testing.T) {
	repo := newFakeTaskRepo()
	ownerID := uuid.New()
	task := seedTask(repo, ownerID, entities.TaskStatusPending)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), ownerID, task.ID, "doing")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != 422 {
		t.Fatalf("expected 422 AppError, got %v", err)
	}
	if repo.statusWrites != 0 {
		t.Fatal("invalid status must be rejected before persistence")
	}
	if repo.tasks[task.ID].Status != entities.TaskStatusPending {
		t.Fatal("status must be unchanged")
	}
}

func TestUpdateStatus_MovesColumn(t *testing.T) {
	repo := newFakeTaskRepo()
	ownerID := uuid.New()
	task := seedTask(repo, ownerID, entities.TaskStatusPending)
	svc := NewService(repo, zap.NewNop())

	updated, err := svc.UpdateStatus(context.Background(), ownerID, task.ID, "in_progress")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != entities.TaskStatusInProgress {
		t.Fatalf("unexpected status %s", updated.Status)
	}
}

func TestUpdateStatus_SameColumnIsNoOp(t *testing.T) {
	repo := newFakeTaskRepo()
	ownerID := uuid.New()
	task := seedTask(repo, ownerID, entities.TaskStatusPending)
	svc := NewService(repo, zap.NewNop())

	if _, err := svc.UpdateStatus(context.Background(), ownerID, task.ID, "pending"); err != nil {
		t.Fatalf("same-status update failed: %v", err)
	}
	if repo.statusWrites != 0 {
		t.Fatal("same-status drop must not write")
	}
}

func TestUpdateStatus_ScopedToOwner(t *testing.T) {
	repo := newFakeTaskRepo()
	task := seedTask(repo, uuid.New(), entities.TaskStatusPending)
	svc := NewService(repo, zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), task.ID, "completed")
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 for foreign owner, got %v", err)
	}
}

func TestColumns_FixedOrderWithEmptyColumns(t *testing.T) {
	repo := newFakeTaskRepo()
	ownerID := uuid.New()
	seedTask(repo, ownerID, entities.TaskStatusPending)
	seedTask(repo, ownerID, entities.TaskStatusCompleted)
	svc := NewService(repo, zap.NewNop())

	columns, err := svc.Columns(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("columns failed: %v", err)
	}
	if len(columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(columns))
	}
	if columns[0].Status != entities.TaskStatusPending || columns[0].Label != "TODO" {
		t.Fatalf("unexpected first column %+v", columns[0])
	}
	if len(columns[1].Tasks) != 0 {
		t.Fatal("empty column must still be present")
	}
	if len(columns[2].Tasks) != 1 {
		t.Fatalf("expected 1 completed task, got %d", len(columns[2].Tasks))
	}
}

func TestCreate_Validation(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateInput{
		Description: "",
		Deadline:    "bogus",
		MeetingID:   uuid.New(),
		OwnerID:     uuid.New(),
	})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != 422 {
		t.Fatalf("expected 422 AppError, got %v", err)
	}
	if len(repo.tasks) != 0 {
		t.Fatal("invalid task must not persist")
	}
}
