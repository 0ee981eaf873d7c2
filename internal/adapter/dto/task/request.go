package task

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Description string `json:"description" validate:"required"`
	Deadline    string `json:"deadline" validate:"required"`
	MeetingID   string `json:"meeting_id" validate:"required,uuid"`
}

// UpdateTaskRequest represents the request to edit a task
type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty"`
	Deadline    *string `json:"deadline,omitempty"`
}

// UpdateTaskStatusRequest represents one kanban drop. The status is the
// destination column.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
