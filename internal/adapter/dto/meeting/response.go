package meeting

import (
	"time"

	"github.com/lucasmrdev/meeting-planner/internal/adapter/dto/agenda"
)

// ContentResponse represents the free-text sections of a meeting
type ContentResponse struct {
	ID           string    `json:"id"`
	MeetingID    string    `json:"meeting_id"`
	Introduction string    `json:"introduction"`
	Summary      string    `json:"summary"`
	Closing      string    `json:"closing"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	StartDatetime time.Time                `json:"start_datetime"`
	EndDatetime   time.Time                `json:"end_datetime"`
	Location      string                   `json:"location"`
	Status        string                   `json:"status"`
	CreatorID     string                   `json:"creator_id"`
	Content       *ContentResponse         `json:"content,omitempty"`
	Agendas       []*agenda.AgendaResponse `json:"agendas,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// CreateMeetingResponse is returned after a successful create. Navigation
// proceeds straight to the content step.
type CreateMeetingResponse struct {
	Meeting  *MeetingResponse `json:"meeting"`
	Notice   string           `json:"notice"`
	NextStep string           `json:"next_step"`
}

// EditMeetingResponse is the payload the edit view renders for one step
type EditMeetingResponse struct {
	Meeting *MeetingResponse `json:"meeting"`
	Step    string           `json:"step"`
}

// UpdateStepResponse is the outcome of one wizard step submission
type UpdateStepResponse struct {
	Meeting  *MeetingResponse `json:"meeting"`
	Step     string           `json:"step"`
	NextStep string           `json:"next_step"`
	Notice   string           `json:"notice"`
	AgendaID *string          `json:"agenda_id,omitempty"`
}

// MeetingListResponse represents the user's meetings
type MeetingListResponse struct {
	Meetings []*MeetingResponse `json:"meetings"`
	Total    int                `json:"total"`
}

// UpdateContentFieldResponse acknowledges one autosave write
type UpdateContentFieldResponse struct {
	Field   string    `json:"field"`
	SavedAt time.Time `json:"saved_at"`
}
