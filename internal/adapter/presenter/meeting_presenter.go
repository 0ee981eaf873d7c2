package presenter

import (
	agendadto "github.com/lucasmrdev/meeting-planner/internal/adapter/dto/agenda"
	meetingdto "github.com/lucasmrdev/meeting-planner/internal/adapter/dto/meeting"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

// ToContentResponse converts a Content entity to ContentResponse DTO
func ToContentResponse(c *entities.Content) *meetingdto.ContentResponse {
	if c == nil {
		return nil
	}
	return &meetingdto.ContentResponse{
		ID:           c.ID.String(),
		MeetingID:    c.MeetingID.String(),
		Introduction: c.Introduction,
		Summary:      c.Summary,
		Closing:      c.Closing,
		UpdatedAt:    c.UpdatedAt,
	}
}

// ToAgendaResponse converts an Agenda entity to AgendaResponse DTO
func ToAgendaResponse(a *entities.Agenda) *agendadto.AgendaResponse {
	if a == nil {
		return nil
	}
	return &agendadto.AgendaResponse{
		ID:          a.ID.String(),
		MeetingID:   a.MeetingID.String(),
		Title:       a.Title,
		Description: a.Description,
		Position:    a.Position,
		Check:       a.Check,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToAgendaListResponse converts a slice of Agenda entities
func ToAgendaListResponse(agendas []*entities.Agenda) []*agendadto.AgendaResponse {
	responses := make([]*agendadto.AgendaResponse, len(agendas))
	for i, a := range agendas {
		responses[i] = ToAgendaResponse(a)
	}
	return responses
}

// ToMeetingResponse converts a Meeting aggregate to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingdto.MeetingResponse {
	if m == nil {
		return nil
	}

	response := &meetingdto.MeetingResponse{
		ID:            m.ID.String(),
		Title:         m.Title,
		Description:   m.Description,
		StartDatetime: m.StartDatetime,
		EndDatetime:   m.EndDatetime,
		Location:      m.Location,
		Status:        string(m.Status),
		CreatorID:     m.CreatorID.String(),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.Content != nil {
		response.Content = ToContentResponse(m.Content)
	}
	if len(m.Agendas) > 0 {
		response.Agendas = make([]*agendadto.AgendaResponse, len(m.Agendas))
		for i := range m.Agendas {
			response.Agendas[i] = ToAgendaResponse(&m.Agendas[i])
		}
	}

	return response
}

// ToMeetingListResponse converts a slice of Meeting entities
func ToMeetingListResponse(meetings []*entities.Meeting) *meetingdto.MeetingListResponse {
	responses := make([]*meetingdto.MeetingResponse, len(meetings))
	for i, m := range meetings {
		responses[i] = ToMeetingResponse(m)
	}
	return &meetingdto.MeetingListResponse{
		Meetings: responses,
		Total:    len(responses),
	}
}
