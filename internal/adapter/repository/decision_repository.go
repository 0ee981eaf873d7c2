package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/domain/repositories"
)

// decisionRepository implements the DecisionRepository interface
type decisionRepository struct {
	db *gorm.DB
}

// NewDecisionRepository creates a new decision repository
func NewDecisionRepository(db *gorm.DB) repositories.DecisionRepository {
	return &decisionRepository{db: db}
}

// Create creates a new decision
func (r *decisionRepository) Create(ctx context.Context, decision *entities.Decision) error {
	return r.db.WithContext(ctx).Create(decision).Error
}

// ListByMeeting retrieves a meeting's decisions, newest first
func (r *decisionRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Decision, error) {
	var decisions []*entities.Decision
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at DESC").
		Find(&decisions).Error
	return decisions, err
}
