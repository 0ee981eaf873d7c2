package agenda

// PositionPair is one submitted {id, position} entry of a reorder.
type PositionPair struct {
	ID       string `json:"id" validate:"required,uuid"`
	Position int    `json:"position" validate:"required,min=1"`
}

// ReorderRequest carries the full visible ordering of a meeting's agenda.
// Every visible topic must be listed; positions are 1-based.
type ReorderRequest struct {
	Positions []PositionPair `json:"positions" validate:"required,min=1,dive"`
}

// UpdateAgendaRequest represents the request to edit a single topic
type UpdateAgendaRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	Position    *int    `json:"position,omitempty" validate:"omitempty,min=1"`
	Check       *bool   `json:"check,omitempty"`
}

// ToggleCheckRequest represents the request to mark a topic as discussed
type ToggleCheckRequest struct {
	Check bool `json:"check"`
}
