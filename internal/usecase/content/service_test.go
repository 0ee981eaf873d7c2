package content

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/lucasmrdev/meeting-planner/errors"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

type fakeContentRepo struct {
	contents map[uuid.UUID]*entities.Content
	writes   int
	failWith error
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{contents: make(map[uuid.UUID]*entities.Content)}
}

func (r *fakeContentRepo) FindByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Content, error) {
	content, ok := r.contents[meetingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *content
	return &copied, nil
}

func (r *fakeContentRepo) UpdateField(ctx context.Context, meetingID uuid.UUID, field, value string) error {
	if r.failWith != nil {
		return r.failWith
	}
	content, ok := r.contents[meetingID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.writes++
	content.SetField(field, value)
	return nil
}

func seedContent(r *fakeContentRepo) uuid.UUID {
	meetingID := uuid.New()
	r.contents[meetingID] = &entities.Content{
		ID:        uuid.New(),
		MeetingID: meetingID,
	}
	return meetingID
}

func TestUpdateField_PersistsNamedField(t *testing.T) {
	repo := newFakeContentRepo()
	meetingID := seedContent(repo)
	svc := NewService(repo, zap.NewNop())

	if err := svc.UpdateField(context.Background(), meetingID, entities.ContentFieldSummary, "resumo da reunião"); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	content := repo.contents[meetingID]
	if content.Summary != "resumo da reunião" {
		t.Fatalf("summary not persisted: %q", content.Summary)
	}
	if content.Introduction != "" || content.Closing != "" {
		t.Fatal("other fields must not be touched")
	}
}

func TestUpdateField_UnknownFieldNeverReachesStorage(t *testing.T) {
	repo := newFakeContentRepo()
	meetingID := seedContent(repo)
	svc := NewService(repo, zap.NewNop())

	err := svc.UpdateField(context.Background(), meetingID, "headline", "x")
	if err == nil {
		t.Fatal("expected error for unknown field")
	}

	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
	if repo.writes != 0 {
		t.Fatalf("storage must not be touched, got %d writes", repo.writes)
	}
}

func TestUpdateField_MissingContentIs404(t *testing.T) {
	repo := newFakeContentRepo()
	svc := NewService(repo, zap.NewNop())

	err := svc.UpdateField(context.Background(), uuid.New(), entities.ContentFieldClosing, "x")
	if err == nil {
		t.Fatal("expected error for missing content")
	}

	var appErr apperrors.AppError
	if !errors.As(err, &appErr) || appErr.HTTPCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestGet_ReturnsContent(t *testing.T) {
	repo := newFakeContentRepo()
	meetingID := seedContent(repo)
	repo.contents[meetingID].Introduction = "abertura"
	svc := NewService(repo, zap.NewNop())

	content, err := svc.Get(context.Background(), meetingID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if content.Introduction != "abertura" {
		t.Fatalf("unexpected content %+v", content)
	}
}
