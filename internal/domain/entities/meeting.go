package entities

import (
	"time"

	"github.com/google/uuid"
)

// MeetingStatus represents the lifecycle status of a meeting
type MeetingStatus string

const (
	MeetingStatusScheduled  MeetingStatus = "scheduled"
	MeetingStatusInProgress MeetingStatus = "in_progress"
	MeetingStatusCompleted  MeetingStatus = "completed"
)

// IsValid checks if the meeting status is one of the enumerated set
func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusScheduled, MeetingStatusInProgress, MeetingStatusCompleted:
		return true
	}
	return false
}

// Meeting is the aggregate root edited by the step wizard. It owns one
// Content, many Agendas (ordered by position), many Decisions and Tasks.
type Meeting struct {
	ID            uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title         string        `gorm:"type:varchar(255);not null" json:"title"`
	Description   string        `gorm:"type:text" json:"description"`
	StartDatetime time.Time     `gorm:"not null" json:"start_datetime"`
	EndDatetime   time.Time     `gorm:"not null" json:"end_datetime"`
	Location      string        `gorm:"type:varchar(255)" json:"location"`
	Status        MeetingStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatorID     uuid.UUID     `gorm:"type:uuid;not null;index" json:"creator_id"`
	Creator       *User         `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`

	Content   *Content   `gorm:"foreignKey:MeetingID" json:"content,omitempty"`
	Agendas   []Agenda   `gorm:"foreignKey:MeetingID" json:"agendas,omitempty"`
	Decisions []Decision `gorm:"foreignKey:MeetingID" json:"decisions,omitempty"`
	Tasks     []Task     `gorm:"foreignKey:MeetingID" json:"tasks,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// CanStart checks if the meeting can transition to in_progress
func (m *Meeting) CanStart() bool {
	return m.Status == MeetingStatusScheduled
}

// CanComplete checks if the meeting can transition to completed
func (m *Meeting) CanComplete() bool {
	return m.Status == MeetingStatusInProgress
}

// Start marks the meeting as in progress
func (m *Meeting) Start() bool {
	if !m.CanStart() {
		return false
	}
	m.Status = MeetingStatusInProgress
	return true
}

// Complete marks the meeting as completed
func (m *Meeting) Complete() bool {
	if !m.CanComplete() {
		return false
	}
	m.Status = MeetingStatusCompleted
	return true
}

// DatetimesValid reports whether the end datetime is strictly after the
// start datetime. Both must be set.
func (m *Meeting) DatetimesValid() bool {
	if m.StartDatetime.IsZero() || m.EndDatetime.IsZero() {
		return false
	}
	return m.EndDatetime.After(m.StartDatetime)
}
