package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TaskStatus represents the kanban status of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// KanbanStatuses lists the kanban columns in display order.
var KanbanStatuses = []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted}

// IsValid checks if the task status is one of the enumerated set
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// taskStatusDisplay maps statuses to their board labels.
var taskStatusDisplay = map[TaskStatus]string{
	TaskStatusPending:    "TODO",
	TaskStatusInProgress: "DOING",
	TaskStatusCompleted:  "DONE",
}

// Task is a follow-up item tracked on the kanban board.
type Task struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Deadline    datatypes.Date `gorm:"not null" json:"deadline"`
	Status      TaskStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	OwnerID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       *User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	MeetingID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Meeting     *Meeting       `gorm:"foreignKey:MeetingID" json:"meeting,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// StatusDisplay returns the board label for the task status
func (t *Task) StatusDisplay() string {
	if label, ok := taskStatusDisplay[t.Status]; ok {
		return label
	}
	return string(t.Status)
}

// deadlineDate truncates now and the deadline to calendar days.
func (t *Task) deadlineDate() time.Time {
	return time.Time(t.Deadline)
}

// Overdue reports whether the deadline has passed and the task is not
// completed.
func (t *Task) Overdue(now time.Time) bool {
	deadline := t.deadlineDate()
	if deadline.IsZero() {
		return false
	}
	today := now.Truncate(24 * time.Hour)
	return deadline.Before(today) && t.Status != TaskStatusCompleted
}

// Urgent reports whether the task is overdue or due within 3 days.
func (t *Task) Urgent(now time.Time) bool {
	if t.Overdue(now) {
		return true
	}
	deadline := t.deadlineDate()
	if deadline.IsZero() {
		return false
	}
	today := now.Truncate(24 * time.Hour)
	return !deadline.After(today.Add(3 * 24 * time.Hour))
}
