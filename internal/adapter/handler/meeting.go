package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/errors"
	meetingdto "github.com/lucasmrdev/meeting-planner/internal/adapter/dto/meeting"
	"github.com/lucasmrdev/meeting-planner/internal/adapter/presenter"
	contentUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/content"
	meetingUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests, including the step
// wizard and the field-scoped content autosave endpoint.
type Meeting struct {
	meetingService *meetingUsecase.Service
	contentService *contentUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService *meetingUsecase.Service, contentService *contentUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		contentService: contentService,
		logger:         logger,
	}
}

// Create handles POST /meetings
func (h *Meeting) Create(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meeting, err := h.meetingService.Create(c.Request().Context(), meetingUsecase.CreateInput{
		Title:         req.Title,
		Description:   req.Description,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Location:      req.Location,
		CreatorID:     userID,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := &meetingdto.CreateMeetingResponse{
		Meeting:  presenter.ToMeetingResponse(meeting),
		Notice:   "Reunião criada! Agora vamos definir o conteúdo.",
		NextStep: string(meetingUsecase.StepContent),
	}
	return HandleCreated(h.logger, c, resp)
}

// List handles GET /meetings
func (h *Meeting) List(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetings, err := h.meetingService.List(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// Get handles GET /meetings/:id. The optional step query parameter scopes
// the edit view; unknown values fall back to the meeting step.
func (h *Meeting) Get(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	data, err := h.meetingService.Edit(c.Request().Context(), meetingID, c.QueryParam("step"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := &meetingdto.EditMeetingResponse{
		Meeting: presenter.ToMeetingResponse(data.Meeting),
		Step:    string(data.Step),
	}
	return HandleSuccess(h.logger, c, resp)
}

// Update handles PATCH /meetings/:id, one wizard step submission
func (h *Meeting) Update(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	input, err := toUpdateInput(req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.meetingService.UpdateStep(c.Request().Context(), meetingID, c.QueryParam("step"), input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := &meetingdto.UpdateStepResponse{
		Meeting:  presenter.ToMeetingResponse(result.Meeting),
		Step:     string(result.Step),
		NextStep: string(result.NextStep),
		Notice:   result.Notice,
	}
	if result.AgendaID != nil {
		id := result.AgendaID.String()
		resp.AgendaID = &id
	}
	return HandleSuccess(h.logger, c, resp)
}

// Delete handles DELETE /meetings/:id
func (h *Meeting) Delete(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.meetingService.Delete(c.Request().Context(), meetingID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UpdateContentField handles PATCH /meetings/:id/content, one autosave
// write of a single named field.
func (h *Meeting) UpdateContentField(c echo.Context) error {
	meetingID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.UpdateContentFieldRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.contentService.UpdateField(c.Request().Context(), meetingID, req.Field, req.Content); err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := &meetingdto.UpdateContentFieldResponse{
		Field:   req.Field,
		SavedAt: time.Now().UTC(),
	}
	return HandleSuccess(h.logger, c, resp)
}

// toUpdateInput converts the request DTO into the use case input,
// parsing nested agenda ids.
func toUpdateInput(req meetingdto.UpdateMeetingRequest) (meetingUsecase.UpdateInput, error) {
	input := meetingUsecase.UpdateInput{
		Title:         req.Title,
		Description:   req.Description,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		Location:      req.Location,
		Status:        req.Status,
	}

	if req.Content != nil {
		input.Content = &meetingUsecase.ContentInput{
			Introduction: req.Content.Introduction,
			Summary:      req.Content.Summary,
			Closing:      req.Content.Closing,
		}
	}

	for _, a := range req.Agendas {
		entry := meetingUsecase.AgendaInput{
			Title:       a.Title,
			Description: a.Description,
			Position:    a.Position,
			Check:       a.Check,
			Destroy:     a.Destroy,
		}
		if a.ID != nil {
			id, err := uuid.Parse(*a.ID)
			if err != nil {
				return input, errors.ErrInvalidArgument("agenda id must be a valid UUID")
			}
			entry.ID = &id
		}
		input.Agendas = append(input.Agendas, entry)
	}

	return input, nil
}
