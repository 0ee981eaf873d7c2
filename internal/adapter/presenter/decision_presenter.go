package presenter

import (
	decisiondto "github.com/lucasmrdev/meeting-planner/internal/adapter/dto/decision"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
)

// ToDecisionResponse converts a Decision entity to DecisionResponse DTO
func ToDecisionResponse(d *entities.Decision) *decisiondto.DecisionResponse {
	if d == nil {
		return nil
	}
	return &decisiondto.DecisionResponse{
		ID:          d.ID.String(),
		MeetingID:   d.MeetingID.String(),
		Description: d.Description,
		Status:      string(d.Status),
		CreatedAt:   d.CreatedAt,
	}
}

// ToDecisionListResponse converts a slice of Decision entities
func ToDecisionListResponse(decisions []*entities.Decision) *decisiondto.DecisionListResponse {
	responses := make([]*decisiondto.DecisionResponse, len(decisions))
	for i, d := range decisions {
		responses[i] = ToDecisionResponse(d)
	}
	return &decisiondto.DecisionListResponse{
		Decisions: responses,
		Total:     len(responses),
	}
}
