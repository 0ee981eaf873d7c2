package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	decisiondto "github.com/lucasmrdev/meeting-planner/internal/adapter/dto/decision"
	"github.com/lucasmrdev/meeting-planner/internal/adapter/presenter"
	decisionUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/decision"
)

// Decision handles decision-related HTTP requests
type Decision struct {
	decisionService *decisionUsecase.Service
	logger          *zap.Logger
}

// NewDecisionHandler creates a new decision handler
func NewDecisionHandler(decisionService *decisionUsecase.Service, logger *zap.Logger) *Decision {
	return &Decision{
		decisionService: decisionService,
		logger:          logger,
	}
}

// Create handles POST /meetings/:id/decisions
func (h *Decision) Create(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req decisiondto.CreateDecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	decision, err := h.decisionService.Create(c.Request().Context(), decisionUsecase.CreateInput{
		MeetingID:   meetingID,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToDecisionResponse(decision))
}

// List handles GET /meetings/:id/decisions
func (h *Decision) List(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	decisions, err := h.decisionService.List(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToDecisionListResponse(decisions))
}
