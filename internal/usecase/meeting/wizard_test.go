package meeting

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

func TestParseStep(t *testing.T) {
	cases := map[string]Step{
		"meeting": StepMeeting,
		"content": StepContent,
		"agenda":  StepAgenda,
		"":        StepMeeting,
		"bogus":   StepMeeting,
	}
	for raw, want := range cases {
		if got := ParseStep(raw); got != want {
			t.Fatalf("ParseStep(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestStepNext(t *testing.T) {
	if StepMeeting.Next() != StepContent {
		t.Fatal("meeting step should advance to content")
	}
	if StepContent.Next() != StepAgenda {
		t.Fatal("content step should advance to agenda")
	}
	if StepAgenda.Next() != StepAgenda {
		t.Fatal("agenda step is terminal")
	}
}

func TestApplyAgendas_NewAndBlank(t *testing.T) {
	m := &entities.Meeting{ID: uuid.New()}
	title := "Tópico novo"

	destroyed := applyAgendas(m, []AgendaInput{
		{Title: title},
		{}, // entirely blank, must be dropped
	})

	if len(destroyed) != 0 {
		t.Fatalf("expected no destroyed ids, got %d", len(destroyed))
	}
	if len(m.Agendas) != 1 {
		t.Fatalf("expected 1 agenda, got %d", len(m.Agendas))
	}
	if m.Agendas[0].Title != title {
		t.Fatalf("unexpected title %q", m.Agendas[0].Title)
	}
	if m.Agendas[0].Position != 1 {
		t.Fatalf("new agenda should default to position 1, got %d", m.Agendas[0].Position)
	}
}

func TestApplyAgendas_DestroyRemovesFromSaveList(t *testing.T) {
	existingID := uuid.New()
	m := &entities.Meeting{
		ID: uuid.New(),
		Agendas: []entities.Agenda{
			{ID: existingID, Title: "Tópico 1", Position: 1},
		},
	}

	destroyed := applyAgendas(m, []AgendaInput{
		{ID: &existingID, Destroy: true},
	})

	if len(destroyed) != 1 || destroyed[0] != existingID {
		t.Fatalf("expected %s destroyed, got %v", existingID, destroyed)
	}
	for _, a := range m.Agendas {
		if a.ID == existingID {
			t.Fatal("destroyed agenda must not remain in the save list")
		}
	}
}

func TestApplyAgendas_UpdatesExisting(t *testing.T) {
	existingID := uuid.New()
	m := &entities.Meeting{
		ID: uuid.New(),
		Agendas: []entities.Agenda{
			{ID: existingID, Title: "Antes", Position: 1},
		},
	}

	newTitle := "Depois"
	pos := 3
	applyAgendas(m, []AgendaInput{
		{ID: &existingID, Title: newTitle, Position: &pos},
	})

	if m.Agendas[0].Title != "Depois" {
		t.Fatalf("title not updated: %q", m.Agendas[0].Title)
	}
	if m.Agendas[0].Position != 3 {
		t.Fatalf("position not updated: %d", m.Agendas[0].Position)
	}
}

func TestValidateAggregate_EndBeforeStart(t *testing.T) {
	m := &entities.Meeting{
		Title:         "Planning",
		StartDatetime: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
	}

	if err := validateAggregate(m, map[string]string{}); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidateAggregate_RequiredFields(t *testing.T) {
	m := &entities.Meeting{}
	err := validateAggregate(m, map[string]string{})
	if err == nil {
		t.Fatal("expected validation error for empty meeting")
	}
}

func TestApplyStatus_ForwardOnly(t *testing.T) {
	m := &entities.Meeting{ID: uuid.New(), Status: entities.MeetingStatusScheduled}

	if err := applyStatus(m, "in_progress"); err != nil {
		t.Fatalf("scheduled -> in_progress should be allowed: %v", err)
	}
	if m.Status != entities.MeetingStatusInProgress {
		t.Fatalf("status not applied: %s", m.Status)
	}

	if err := applyStatus(m, "scheduled"); err == nil {
		t.Fatal("backward transition must be rejected")
	}

	if err := applyStatus(m, "bogus"); err == nil {
		t.Fatal("unknown status must be rejected")
	}
}
