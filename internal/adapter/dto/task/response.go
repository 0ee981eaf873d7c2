package task

import "time"

// TaskResponse represents a task in responses
type TaskResponse struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Deadline      string    `json:"deadline"`
	Status        string    `json:"status"`
	StatusDisplay string    `json:"status_display"`
	Overdue       bool      `json:"overdue"`
	Urgent        bool      `json:"urgent"`
	OwnerID       string    `json:"owner_id"`
	MeetingID     string    `json:"meeting_id"`
	MeetingTitle  string    `json:"meeting_title,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdateTaskStatusResponse acknowledges a kanban move
type UpdateTaskStatusResponse struct {
	Task   *TaskResponse `json:"task"`
	Notice string        `json:"notice"`
}

// KanbanColumnResponse is one board column with its tasks in deadline
// order
type KanbanColumnResponse struct {
	Status string          `json:"status"`
	Label  string          `json:"label"`
	Count  int             `json:"count"`
	Tasks  []*TaskResponse `json:"tasks"`
}

// KanbanBoardResponse is the full board
type KanbanBoardResponse struct {
	Columns []*KanbanColumnResponse `json:"columns"`
}
