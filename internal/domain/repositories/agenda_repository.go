package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

// AgendaPosition is one client-submitted {id, position} pair.
type AgendaPosition struct {
	ID       uuid.UUID
	Position int
}

// AgendaRepository defines the interface for agenda data access
type AgendaRepository interface {
	// FindByID retrieves an agenda scoped to its meeting
	FindByID(ctx context.Context, meetingID, id uuid.UUID) (*entities.Agenda, error)

	// ListByMeeting retrieves a meeting's agendas in position order
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Agenda, error)

	// Reorder applies all submitted positions in one transaction. Any id
	// not belonging to the meeting aborts the whole batch with
	// gorm.ErrRecordNotFound.
	Reorder(ctx context.Context, meetingID uuid.UUID, positions []AgendaPosition) error

	// Update persists an agenda
	Update(ctx context.Context, agenda *entities.Agenda) error

	// Delete removes an agenda scoped to its meeting
	Delete(ctx context.Context, meetingID, id uuid.UUID) error
}
