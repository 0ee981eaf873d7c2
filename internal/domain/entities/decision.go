package entities

import (
	"time"

	"github.com/google/uuid"
)

// DecisionStatus represents the status of a recorded decision
type DecisionStatus string

const (
	DecisionStatusPending  DecisionStatus = "pending"
	DecisionStatusApproved DecisionStatus = "approved"
	DecisionStatusRejected DecisionStatus = "rejected"
)

// IsValid checks if the decision status is one of the enumerated set
func (s DecisionStatus) IsValid() bool {
	switch s {
	case DecisionStatusPending, DecisionStatusApproved, DecisionStatusRejected:
		return true
	}
	return false
}

// Decision is a decision recorded during a meeting.
type Decision struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Status      DecisionStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "decisions"
}
