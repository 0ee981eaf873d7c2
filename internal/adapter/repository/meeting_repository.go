package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// CreateWithBootstrap creates the meeting, its empty content and the seed
// agenda atomically.
func (r *meetingRepository) CreateWithBootstrap(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Creator", "Content", "Agendas", "Decisions", "Tasks").Create(meeting).Error; err != nil {
			return err
		}

		content := &entities.Content{MeetingID: meeting.ID}
		if err := tx.Create(content).Error; err != nil {
			return err
		}
		meeting.Content = content

		seed := &entities.Agenda{
			MeetingID: meeting.ID,
			Title:     entities.SeedAgendaTitle,
			Position:  1,
		}
		if err := tx.Create(seed).Error; err != nil {
			return err
		}
		meeting.Agendas = []entities.Agenda{*seed}

		return nil
	})
}

// FindByID retrieves a meeting with content and position-ordered agendas
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Content").
		Preload("Agendas", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindByCreator retrieves all meetings created by a user
func (r *meetingRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("start_datetime ASC").
		Find(&meetings).Error
	return meetings, err
}

// SaveAggregate persists the aggregate in one transaction: meeting row,
// content row, upserted agendas, and deletions for the destroy markers.
func (r *meetingRepository) SaveAggregate(ctx context.Context, meeting *entities.Meeting, destroyAgendaIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Creator", "Content", "Agendas", "Decisions", "Tasks").Save(meeting).Error; err != nil {
			return err
		}

		if meeting.Content != nil {
			meeting.Content.MeetingID = meeting.ID
			if err := tx.Save(meeting.Content).Error; err != nil {
				return err
			}
		}

		for i := range meeting.Agendas {
			agenda := &meeting.Agendas[i]
			agenda.MeetingID = meeting.ID
			if agenda.ID == uuid.Nil {
				if err := tx.Create(agenda).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Save(agenda).Error; err != nil {
					return err
				}
			}
		}

		if len(destroyAgendaIDs) > 0 {
			if err := tx.Where("meeting_id = ? AND id IN ?", meeting.ID, destroyAgendaIDs).
				Delete(&entities.Agenda{}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a meeting and its owned records
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.Agenda{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.Content{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.Decision{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meeting_id = ?", id).Delete(&entities.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Meeting{}, id).Error
	})
}
