package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

// DecisionRepository defines the interface for decision data access
type DecisionRepository interface {
	// Create creates a new decision
	Create(ctx context.Context, decision *entities.Decision) error

	// ListByMeeting retrieves a meeting's decisions, newest first
	ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Decision, error)
}
