package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

// ContentRepository defines the interface for content data access
type ContentRepository interface {
	// FindByMeeting retrieves the meeting's content
	FindByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Content, error)

	// UpdateField updates a single named field of the meeting's content
	UpdateField(ctx context.Context, meetingID uuid.UUID, field, value string) error
}
