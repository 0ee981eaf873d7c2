package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/domain/repositories"
)

// contentRepository implements the ContentRepository interface
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(db *gorm.DB) repositories.ContentRepository {
	return &contentRepository{db: db}
}

// FindByMeeting retrieves the meeting's content
func (r *contentRepository) FindByMeeting(ctx context.Context, meetingID uuid.UUID) (*entities.Content, error) {
	var content entities.Content
	err := r.db.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		First(&content).Error

	if err != nil {
		return nil, err
	}
	return &content, nil
}

// UpdateField updates a single named content field. Field names are
// validated by the use case before this is called; the column name is
// still restricted here to the known set.
func (r *contentRepository) UpdateField(ctx context.Context, meetingID uuid.UUID, field, value string) error {
	if !entities.IsContentField(field) {
		return gorm.ErrInvalidField
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Content{}).
		Where("meeting_id = ?", meetingID).
		Update(field, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
