package meeting

import (
	"context"
	stdErrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/lucasmrdev/meeting-planner/errors"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/pkg/datetime"
)

// fakeMeetingRepo is an in-memory MeetingRepository for service tests.
type fakeMeetingRepo struct {
	meetings     map[uuid.UUID]*entities.Meeting
	bootstrapErr error
	saveErr      error
	savedDestroy []uuid.UUID
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (f *fakeMeetingRepo) CreateWithBootstrap(_ context.Context, m *entities.Meeting) error {
	if f.bootstrapErr != nil {
		return f.bootstrapErr
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Content = &entities.Content{ID: uuid.New(), MeetingID: m.ID}
	m.Agendas = []entities.Agenda{
		{ID: uuid.New(), MeetingID: m.ID, Title: entities.SeedAgendaTitle, Position: 1},
	}
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMeetingRepo) FindByCreator(_ context.Context, creatorID uuid.UUID) ([]*entities.Meeting, error) {
	var out []*entities.Meeting
	for _, m := range f.meetings {
		if m.CreatorID == creatorID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) SaveAggregate(_ context.Context, m *entities.Meeting, destroyIDs []uuid.UUID) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i := range m.Agendas {
		if m.Agendas[i].ID == uuid.Nil {
			m.Agendas[i].ID = uuid.New()
		}
	}
	f.savedDestroy = destroyIDs
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.meetings, id)
	return nil
}

func TestCreate_BootstrapsContentAndSeedAgenda(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := NewService(repo, zap.NewNop())

	m, err := svc.Create(context.Background(), CreateInput{
		Title:         "Sprint planning",
		StartDatetime: "2026-09-01 10:00",
		EndDatetime:   "2026-09-01 11:00",
		CreatorID:     uuid.New(),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if m.Content == nil {
		t.Fatal("created meeting must carry an empty content")
	}
	if len(m.Agendas) != 1 || m.Agendas[0].Title != entities.SeedAgendaTitle {
		t.Fatalf("expected seed agenda %q, got %+v", entities.SeedAgendaTitle, m.Agendas)
	}
	if m.Agendas[0].Position != 1 {
		t.Fatalf("seed agenda position must be 1, got %d", m.Agendas[0].Position)
	}
}

func TestCreate_ValidationFailureDoesNotPersist(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateInput{
		Title:         "Sem datas",
		StartDatetime: "",
		EndDatetime:   "",
		CreatorID:     uuid.New(),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.HTTPCode != 422 {
		t.Fatalf("expected 422, got %d", appErr.HTTPCode)
	}
	if len(repo.meetings) != 0 {
		t.Fatal("nothing may persist on validation failure")
	}
}

func TestCreate_BootstrapFailureIsAtomic(t *testing.T) {
	repo := newFakeMeetingRepo()
	repo.bootstrapErr = stdErrors.New("db down")
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Create(context.Background(), CreateInput{
		Title:         "Sprint planning",
		StartDatetime: "2026-09-01 10:00",
		EndDatetime:   "2026-09-01 11:00",
		CreatorID:     uuid.New(),
	})
	if err == nil {
		t.Fatal("expected bootstrap error")
	}
	if len(repo.meetings) != 0 {
		t.Fatal("failed bootstrap must leave nothing behind")
	}
}

func seedMeeting(repo *fakeMeetingRepo) *entities.Meeting {
	m := &entities.Meeting{
		Title:     "Sprint planning",
		Status:    entities.MeetingStatusScheduled,
		CreatorID: uuid.New(),
	}
	_ = repo.CreateWithBootstrap(context.Background(), m)
	return m
}

func TestUpdateStep_MeetingStepAdvancesToContent(t *testing.T) {
	repo := newFakeMeetingRepo()
	m := seedMeeting(repo)
	svc := NewService(repo, zap.NewNop())

	title := "Planejamento"
	start := "2026-09-01 10:00"
	end := "2026-09-01 11:00"
	result, err := svc.UpdateStep(context.Background(), m.ID, "meeting", UpdateInput{
		Title:         &title,
		StartDatetime: &start,
		EndDatetime:   &end,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if result.NextStep != StepContent {
		t.Fatalf("expected next step content, got %s", result.NextStep)
	}
	if result.Notice != "Informações básicas salvas! Agora vamos definir o conteúdo." {
		t.Fatalf("unexpected notice %q", result.Notice)
	}
}

func TestUpdateStep_AgendaStepReturnsNewestAgendaID(t *testing.T) {
	repo := newFakeMeetingRepo()
	m := seedMeeting(repo)
	m.StartDatetime = mustParse(t, "2026-09-01 10:00")
	m.EndDatetime = mustParse(t, "2026-09-01 11:00")
	svc := NewService(repo, zap.NewNop())

	result, err := svc.UpdateStep(context.Background(), m.ID, "agenda", UpdateInput{
		Agendas: []AgendaInput{{Title: "Tópico 2"}},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if result.NextStep != StepAgenda {
		t.Fatalf("agenda step must stay on agenda, got %s", result.NextStep)
	}
	if result.AgendaID == nil {
		t.Fatal("agenda step must return the newest agenda id")
	}
	last := result.Meeting.Agendas[len(result.Meeting.Agendas)-1]
	if *result.AgendaID != last.ID {
		t.Fatalf("expected newest agenda %s, got %s", last.ID, *result.AgendaID)
	}
}

func TestUpdateStep_UnknownStepFallsBackToMeeting(t *testing.T) {
	repo := newFakeMeetingRepo()
	m := seedMeeting(repo)
	m.StartDatetime = mustParse(t, "2026-09-01 10:00")
	m.EndDatetime = mustParse(t, "2026-09-01 11:00")
	svc := NewService(repo, zap.NewNop())

	result, err := svc.UpdateStep(context.Background(), m.ID, "bogus", UpdateInput{})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.Step != StepMeeting {
		t.Fatalf("unknown step must fall back to meeting, got %s", result.Step)
	}
}

func TestUpdateStep_NotFound(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := NewService(repo, zap.NewNop())

	_, err := svc.UpdateStep(context.Background(), uuid.New(), "meeting", UpdateInput{})
	var appErr apperrors.AppError
	if !stdErrors.As(err, &appErr) || appErr.HTTPCode != 404 {
		t.Fatalf("expected 404 AppError, got %v", err)
	}
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	got, err := datetime.Parse(value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return got
}
