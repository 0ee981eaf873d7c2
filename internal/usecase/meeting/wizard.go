package meeting

import (
	"github.com/google/uuid"

	apperrors "github.com/lucasmrdev/meeting-planner/errors"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/pkg/datetime"
)

// Step is one page of the meeting edit wizard. Steps are derived from a
// request parameter and never persisted.
type Step string

const (
	StepMeeting Step = "meeting"
	StepContent Step = "content"
	StepAgenda  Step = "agenda"
)

// ParseStep maps a raw step parameter onto a wizard step. Absent or
// unrecognized values fall back to the meeting step handler.
func ParseStep(raw string) Step {
	switch Step(raw) {
	case StepMeeting, StepContent, StepAgenda:
		return Step(raw)
	default:
		return StepMeeting
	}
}

// Next returns the step a successful submission advances to. The agenda
// step is terminal and stays put.
func (s Step) Next() Step {
	switch s {
	case StepMeeting:
		return StepContent
	case StepContent:
		return StepAgenda
	default:
		return StepAgenda
	}
}

// Notice returns the user-facing message for a successful submission of
// this step.
func (s Step) Notice() string {
	switch s {
	case StepMeeting:
		return "Informações básicas salvas! Agora vamos definir o conteúdo."
	case StepContent:
		return "Conteúdo salvo! Agora vamos criar a agenda."
	default:
		return "Agenda salva!"
	}
}

// ContentInput carries the nested content attributes of a wizard
// submission. Nil fields are left untouched.
type ContentInput struct {
	Introduction *string
	Summary      *string
	Closing      *string
}

// AgendaInput carries one nested agenda entry. A nil ID means a new
// topic; Destroy marks an existing one for deletion.
type AgendaInput struct {
	ID          *uuid.UUID
	Title       string
	Description string
	Position    *int
	Check       *bool
	Destroy     bool
}

// isBlank reports whether every user-editable field is empty. Blank
// entries without a destroy marker are discarded before validation.
func (a AgendaInput) isBlank() bool {
	return a.Title == "" && a.Description == "" && a.Position == nil && a.Check == nil
}

// UpdateInput is the field set accepted by every wizard step. The fixed
// basic fields are always resubmittable; later steps may legally carry
// earlier-step fields.
type UpdateInput struct {
	Title         *string
	Description   *string
	StartDatetime *string
	EndDatetime   *string
	Location      *string
	Status        *string
	Content       *ContentInput
	Agendas       []AgendaInput
}

// StepResult is the outcome of a successful step submission.
type StepResult struct {
	Meeting  *entities.Meeting
	Step     Step
	NextStep Step
	Notice   string
	// AgendaID is the identifier of the newest agenda, returned by the
	// agenda step so the client can bind fresh rows.
	AgendaID *uuid.UUID
}

// applyBasicFields copies the submitted basic fields onto the aggregate,
// parsing datetime text. Unparseable datetimes are collected as field
// errors.
func applyBasicFields(m *entities.Meeting, input UpdateInput, fieldErrors map[string]string) {
	if input.Title != nil {
		m.Title = *input.Title
	}
	if input.Description != nil {
		m.Description = *input.Description
	}
	if input.Location != nil {
		m.Location = *input.Location
	}
	if input.StartDatetime != nil {
		if t, err := datetime.Parse(*input.StartDatetime); err != nil {
			fieldErrors["start_datetime"] = "não é uma data válida"
		} else {
			m.StartDatetime = t
		}
	}
	if input.EndDatetime != nil {
		if t, err := datetime.Parse(*input.EndDatetime); err != nil {
			fieldErrors["end_datetime"] = "não é uma data válida"
		} else {
			m.EndDatetime = t
		}
	}
}

// applyContent copies submitted content sub-fields onto the aggregate's
// content, building it when absent.
func applyContent(m *entities.Meeting, input *ContentInput) {
	if input == nil {
		return
	}
	if m.Content == nil {
		m.Content = &entities.Content{MeetingID: m.ID}
	}
	if input.Introduction != nil {
		m.Content.Introduction = *input.Introduction
	}
	if input.Summary != nil {
		m.Content.Summary = *input.Summary
	}
	if input.Closing != nil {
		m.Content.Closing = *input.Closing
	}
}

// applyAgendas merges submitted agenda entries into the aggregate and
// returns the ids marked for destruction. Entirely blank new entries are
// dropped before validation.
func applyAgendas(m *entities.Meeting, inputs []AgendaInput) []uuid.UUID {
	var destroyIDs []uuid.UUID

	byID := make(map[uuid.UUID]*entities.Agenda, len(m.Agendas))
	for i := range m.Agendas {
		byID[m.Agendas[i].ID] = &m.Agendas[i]
	}

	for _, in := range inputs {
		if in.ID != nil {
			if in.Destroy {
				destroyIDs = append(destroyIDs, *in.ID)
				continue
			}
			agenda, ok := byID[*in.ID]
			if !ok {
				continue
			}
			if in.Title != "" {
				agenda.Title = in.Title
			}
			if in.Description != "" {
				agenda.Description = in.Description
			}
			if in.Position != nil {
				agenda.Position = *in.Position
			}
			if in.Check != nil {
				agenda.Check = *in.Check
			}
			continue
		}

		if in.isBlank() || in.Destroy {
			continue
		}

		position := len(m.Agendas) + 1
		if in.Position != nil {
			position = *in.Position
		}
		agenda := entities.Agenda{
			MeetingID:   m.ID,
			Title:       in.Title,
			Description: in.Description,
			Position:    position,
		}
		if in.Check != nil {
			agenda.Check = *in.Check
		}
		m.Agendas = append(m.Agendas, agenda)
	}

	// Destroyed agendas must not be re-saved alongside the deletion.
	if len(destroyIDs) > 0 {
		destroyed := make(map[uuid.UUID]bool, len(destroyIDs))
		for _, id := range destroyIDs {
			destroyed[id] = true
		}
		kept := m.Agendas[:0]
		for _, agenda := range m.Agendas {
			if !destroyed[agenda.ID] {
				kept = append(kept, agenda)
			}
		}
		m.Agendas = kept
	}

	return destroyIDs
}

// validateAggregate checks the whole aggregate regardless of which step
// submitted it. Returns nil when valid.
func validateAggregate(m *entities.Meeting, fieldErrors map[string]string) error {
	if m.Title == "" {
		fieldErrors["title"] = "não pode ficar em branco"
	}
	if m.StartDatetime.IsZero() {
		fieldErrors["start_datetime"] = "não pode ficar em branco"
	}
	if m.EndDatetime.IsZero() {
		fieldErrors["end_datetime"] = "não pode ficar em branco"
	}
	if _, ok := fieldErrors["end_datetime"]; !ok && !m.StartDatetime.IsZero() && !m.DatetimesValid() {
		fieldErrors["end_datetime"] = "deve ser posterior à data de início"
	}

	if len(fieldErrors) > 0 {
		return apperrors.ErrValidation(fieldErrors)
	}
	return nil
}

// applyStatus applies a submitted status change, enforcing the
// forward-only lifecycle.
func applyStatus(m *entities.Meeting, raw string) error {
	status := entities.MeetingStatus(raw)
	if !status.IsValid() {
		return apperrors.ErrInvalidStatus(raw)
	}

	if status == m.Status {
		return nil
	}

	switch status {
	case entities.MeetingStatusInProgress:
		if !m.Start() {
			return apperrors.ErrMeetingInvalidTransition(m.ID.String(), string(m.Status), raw)
		}
	case entities.MeetingStatusCompleted:
		if !m.Complete() {
			return apperrors.ErrMeetingInvalidTransition(m.ID.String(), string(m.Status), raw)
		}
	default:
		return apperrors.ErrMeetingInvalidTransition(m.ID.String(), string(m.Status), raw)
	}
	return nil
}

// newestAgenda returns the id of the last agenda in the aggregate. New
// entries are appended, so after a save this is the freshly created row.
func newestAgenda(m *entities.Meeting) *uuid.UUID {
	if len(m.Agendas) == 0 {
		return nil
	}
	id := m.Agendas[len(m.Agendas)-1].ID
	return &id
}
