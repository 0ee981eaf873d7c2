package entities

import (
	"time"

	"github.com/google/uuid"
)

// SeedAgendaTitle is the title given to the topic created automatically
// with every new meeting.
const SeedAgendaTitle = "Tópico 1"

// Agenda is one ordered topic of a meeting. Position is 1-based; ties are
// possible and order among ties follows the client-submitted list.
type Agenda struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MeetingID   uuid.UUID `gorm:"type:uuid;not null;index" json:"meeting_id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Position    int       `gorm:"not null;default:1" json:"position"`
	Check       bool      `gorm:"not null;default:false" json:"check"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for Agenda
func (Agenda) TableName() string {
	return "agendas"
}

// IsBlank reports whether the agenda carries no user content. Blank nested
// entries are discarded before validation instead of being persisted.
func (a *Agenda) IsBlank() bool {
	return a.Title == "" && a.Description == ""
}
