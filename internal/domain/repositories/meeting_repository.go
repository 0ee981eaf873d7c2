package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting aggregate data access
type MeetingRepository interface {
	// CreateWithBootstrap creates the meeting together with its empty
	// content and the seed agenda in one transaction. If any part fails,
	// nothing persists.
	CreateWithBootstrap(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting with its content and agendas (agendas
	// ordered by position)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByCreator retrieves all meetings created by a user
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entities.Meeting, error)

	// SaveAggregate persists the meeting row, its content and its agendas,
	// and removes the agendas marked for destruction, in one transaction
	SaveAggregate(ctx context.Context, meeting *entities.Meeting, destroyAgendaIDs []uuid.UUID) error

	// Delete removes a meeting and its owned records
	Delete(ctx context.Context, id uuid.UUID) error
}
