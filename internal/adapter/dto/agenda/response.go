package agenda

import "time"

// AgendaResponse represents a topic in responses
type AgendaResponse struct {
	ID          string    `json:"id"`
	MeetingID   string    `json:"meeting_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position"`
	Check       bool      `json:"check"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReorderResponse carries the re-read agenda in position order together
// with the user-facing notice.
type ReorderResponse struct {
	Notice  string            `json:"notice"`
	Agendas []*AgendaResponse `json:"agendas"`
}
