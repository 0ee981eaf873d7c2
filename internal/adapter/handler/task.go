package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/errors"
	taskdto "github.com/lucasmrdev/meeting-planner/internal/adapter/dto/task"
	"github.com/lucasmrdev/meeting-planner/internal/adapter/presenter"
	taskUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/task"
)

// Task handles task-related HTTP requests, including the kanban status
// endpoint.
type Task struct {
	taskService *taskUsecase.Service
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *taskUsecase.Service, logger *zap.Logger) *Task {
	return &Task{
		taskService: taskService,
		logger:      logger,
	}
}

// Create handles POST /tasks
func (h *Task) Create(c echo.Context) error {
	var req taskdto.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	meetingID, err := uuid.Parse(req.MeetingID)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("meeting_id must be a valid UUID"))
	}

	task, err := h.taskService.Create(c.Request().Context(), taskUsecase.CreateInput{
		Description: req.Description,
		Deadline:    req.Deadline,
		MeetingID:   meetingID,
		OwnerID:     userID,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleCreated(h.logger, c, presenter.ToTaskResponse(task, time.Now()))
}

// Board handles GET /tasks, the kanban board grouped into the fixed
// columns.
func (h *Task) Board(c echo.Context) error {
	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	columns, err := h.taskService.Columns(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToKanbanBoardResponse(columns, time.Now()))
}

// Get handles GET /tasks/:id
func (h *Task) Get(c echo.Context) error {
	taskID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	task, err := h.taskService.Get(c.Request().Context(), userID, taskID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskResponse(task, time.Now()))
}

// UpdateStatus handles PATCH /tasks/:id/status, one kanban drop. The
// submitted status is validated before anything is persisted.
func (h *Task) UpdateStatus(c echo.Context) error {
	taskID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskdto.UpdateTaskStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	task, err := h.taskService.UpdateStatus(c.Request().Context(), userID, taskID, req.Status)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := &taskdto.UpdateTaskStatusResponse{
		Task:   presenter.ToTaskResponse(task, time.Now()),
		Notice: "Status atualizado com sucesso!",
	}
	return HandleSuccess(h.logger, c, resp)
}

// Update handles PATCH /tasks/:id
func (h *Task) Update(c echo.Context) error {
	taskID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskdto.UpdateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	task, err := h.taskService.Update(c.Request().Context(), userID, taskID, taskUsecase.UpdateInput{
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToTaskResponse(task, time.Now()))
}

// Delete handles DELETE /tasks/:id
func (h *Task) Delete(c echo.Context) error {
	taskID, err := pathUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	userID, ok := currentUserID(c)
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnauthenticated())
	}

	if err := h.taskService.Delete(c.Request().Context(), userID, taskID); err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
