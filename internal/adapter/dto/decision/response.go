package decision

import "time"

// DecisionResponse represents a recorded decision in responses
type DecisionResponse struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meeting_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// DecisionListResponse represents a meeting's decisions, newest first
type DecisionListResponse struct {
	Decisions []*DecisionResponse `json:"decisions"`
	Total     int                 `json:"total"`
}
