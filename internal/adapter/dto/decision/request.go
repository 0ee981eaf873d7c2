package decision

// CreateDecisionRequest represents the request to record a decision
type CreateDecisionRequest struct {
	Description string `json:"description" validate:"required"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=pending approved rejected"`
}
