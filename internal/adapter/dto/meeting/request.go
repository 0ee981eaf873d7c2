package meeting

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Description   string `json:"description,omitempty"`
	StartDatetime string `json:"start_datetime" validate:"required"`
	EndDatetime   string `json:"end_datetime" validate:"required"`
	Location      string `json:"location,omitempty" validate:"omitempty,max=255"`
}

// ContentAttributes carries the nested content fields of a wizard
// submission
type ContentAttributes struct {
	Introduction *string `json:"introduction,omitempty"`
	Summary      *string `json:"summary,omitempty"`
	Closing      *string `json:"closing,omitempty"`
}

// AgendaAttributes carries one nested topic of a wizard submission. An
// empty ID means a new topic; Destroy marks an existing one for removal.
type AgendaAttributes struct {
	ID          *string `json:"id,omitempty" validate:"omitempty,uuid"`
	Title       string  `json:"title,omitempty" validate:"omitempty,max=255"`
	Description string  `json:"description,omitempty"`
	Position    *int    `json:"position,omitempty" validate:"omitempty,min=1"`
	Check       *bool   `json:"check,omitempty"`
	Destroy     bool    `json:"_destroy,omitempty"`
}

// UpdateMeetingRequest represents one wizard step submission. The step
// itself travels as a query parameter; the body may carry any subset of
// the aggregate.
type UpdateMeetingRequest struct {
	Title         *string            `json:"title,omitempty" validate:"omitempty,max=255"`
	Description   *string            `json:"description,omitempty"`
	StartDatetime *string            `json:"start_datetime,omitempty"`
	EndDatetime   *string            `json:"end_datetime,omitempty"`
	Location      *string            `json:"location,omitempty" validate:"omitempty,max=255"`
	Status        *string            `json:"status,omitempty" validate:"omitempty,oneof=scheduled in_progress completed"`
	Content       *ContentAttributes `json:"content_attributes,omitempty"`
	Agendas       []AgendaAttributes `json:"agendas_attributes,omitempty" validate:"omitempty,dive"`
}

// UpdateContentFieldRequest represents one autosave write of a single
// content field
type UpdateContentFieldRequest struct {
	Field   string `json:"field" validate:"required,oneof=introduction summary closing"`
	Content string `json:"content"`
}
