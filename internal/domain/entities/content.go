package entities

import (
	"time"

	"github.com/google/uuid"
)

// Content fields editable via the field-scoped autosave endpoint.
const (
	ContentFieldIntroduction = "introduction"
	ContentFieldSummary      = "summary"
	ContentFieldClosing      = "closing"
)

// Content holds the free-text sections of a meeting. Exactly one per
// meeting, created empty alongside the meeting itself.
type Content struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"meeting_id"`
	Introduction string    `gorm:"type:text;default:''" json:"introduction"`
	Summary      string    `gorm:"type:text;default:''" json:"summary"`
	Closing      string    `gorm:"type:text;default:''" json:"closing"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Content
func (Content) TableName() string {
	return "contents"
}

// IsContentField reports whether name is an editable content field.
func IsContentField(name string) bool {
	switch name {
	case ContentFieldIntroduction, ContentFieldSummary, ContentFieldClosing:
		return true
	}
	return false
}

// SetField assigns value to the named field. Returns false for an unknown
// field name.
func (c *Content) SetField(name, value string) bool {
	switch name {
	case ContentFieldIntroduction:
		c.Introduction = value
	case ContentFieldSummary:
		c.Summary = value
	case ContentFieldClosing:
		c.Closing = value
	default:
		return false
	}
	return true
}

// Field returns the value of the named field.
func (c *Content) Field(name string) (string, bool) {
	switch name {
	case ContentFieldIntroduction:
		return c.Introduction, true
	case ContentFieldSummary:
		return c.Summary, true
	case ContentFieldClosing:
		return c.Closing, true
	}
	return "", false
}
