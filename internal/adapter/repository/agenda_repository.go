package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/domain/repositories"
)

// agendaRepository implements the AgendaRepository interface
type agendaRepository struct {
	db *gorm.DB
}

// NewAgendaRepository creates a new agenda repository
func NewAgendaRepository(db *gorm.DB) repositories.AgendaRepository {
	return &agendaRepository{db: db}
}

// FindByID retrieves an agenda scoped to its meeting
func (r *agendaRepository) FindByID(ctx context.Context, meetingID, id uuid.UUID) (*entities.Agenda, error) {
	var agenda entities.Agenda
	err := r.db.WithContext(ctx).
		Where("id = ? AND meeting_id = ?", id, meetingID).
		First(&agenda).Error

	if err != nil {
		return nil, err
	}
	return &agenda, nil
}

// ListByMeeting retrieves a meeting's agendas in position order
func (r *agendaRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]*entities.Agenda, error) {
	var agendas []*entities.Agenda
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("position ASC").
		Find(&agendas).Error
	return agendas, err
}

// Reorder applies every submitted position inside one transaction. A pair
// whose id does not belong to the meeting aborts the batch with
// gorm.ErrRecordNotFound so no partial ordering is ever persisted.
func (r *agendaRepository) Reorder(ctx context.Context, meetingID uuid.UUID, positions []repositories.AgendaPosition) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range positions {
			res := tx.Model(&entities.Agenda{}).
				Where("id = ? AND meeting_id = ?", p.ID, meetingID).
				Update("position", p.Position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}

// Update persists an agenda
func (r *agendaRepository) Update(ctx context.Context, agenda *entities.Agenda) error {
	return r.db.WithContext(ctx).Save(agenda).Error
}

// Delete removes an agenda scoped to its meeting
func (r *agendaRepository) Delete(ctx context.Context, meetingID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND meeting_id = ?", id, meetingID).
		Delete(&entities.Agenda{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
