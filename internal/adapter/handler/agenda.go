package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/errors"
	agendadto "github.com/lucasmrdev/meeting-planner/internal/adapter/dto/agenda"
	"github.com/lucasmrdev/meeting-planner/internal/adapter/presenter"
	agendaUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/agenda"
)

// Agenda handles agenda-related HTTP requests, including the
// transactional reorder endpoint.
type Agenda struct {
	agendaService *agendaUsecase.Service
	logger        *zap.Logger
}

// NewAgendaHandler creates a new agenda handler
func NewAgendaHandler(agendaService *agendaUsecase.Service, logger *zap.Logger) *Agenda {
	return &Agenda{
		agendaService: agendaService,
		logger:        logger,
	}
}

// Reorder handles PATCH /meetings/:id/agendas/reorder. The body carries
// the full visible ordering; it is applied all-or-nothing and the
// response returns the agenda re-read in position order.
func (h *Agenda) Reorder(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req agendadto.ReorderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	positions := make([]agendaUsecase.PositionInput, len(req.Positions))
	for i, p := range req.Positions {
		id, err := uuid.Parse(p.ID)
		if err != nil {
			return HandleError(h.logger, c, errors.ErrInvalidArgument("agenda id must be a valid UUID"))
		}
		positions[i] = agendaUsecase.PositionInput{ID: id, Position: p.Position}
	}

	agendas, err := h.agendaService.Reorder(c.Request().Context(), meetingID, positions)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := &agendadto.ReorderResponse{
		Notice:  "Ordem atualizada com sucesso!",
		Agendas: presenter.ToAgendaListResponse(agendas),
	}
	return HandleSuccess(h.logger, c, resp)
}

// Update handles PATCH /meetings/:id/agendas/:agenda_id
func (h *Agenda) Update(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	agendaID, err := pathUUID(c, "agenda_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req agendadto.UpdateAgendaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	agenda, err := h.agendaService.Update(c.Request().Context(), meetingID, agendaID, agendaUsecase.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Position:    req.Position,
		Check:       req.Check,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToAgendaResponse(agenda))
}

// ToggleCheck handles PATCH /meetings/:id/agendas/:agenda_id/toggle_check
func (h *Agenda) ToggleCheck(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	agendaID, err := pathUUID(c, "agenda_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req agendadto.ToggleCheckRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}

	agenda, err := h.agendaService.ToggleCheck(c.Request().Context(), meetingID, agendaID, req.Check)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToAgendaResponse(agenda))
}

// Delete handles DELETE /meetings/:id/agendas/:agenda_id
func (h *Agenda) Delete(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	agendaID, err := pathUUID(c, "agenda_id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.agendaService.Delete(c.Request().Context(), meetingID, agendaID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
