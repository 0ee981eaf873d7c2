package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lucasmrdev/meeting-planner/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	meetingHandler  *Meeting
	agendaHandler   *Agenda
	taskHandler     *Task
	decisionHandler *Decision
	csrfHandler     *CSRF
	authMW          echo.MiddlewareFunc
	csrfMW          echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	meetingHandler *Meeting,
	agendaHandler *Agenda,
	taskHandler *Task,
	decisionHandler *Decision,
	csrfHandler *CSRF,
	authMW echo.MiddlewareFunc,
	csrfMW echo.MiddlewareFunc,
) *Router {
	return &Router{
		cfg:             cfg,
		meetingHandler:  meetingHandler,
		agendaHandler:   agendaHandler,
		taskHandler:     taskHandler,
		decisionHandler: decisionHandler,
		csrfHandler:     csrfHandler,
		authMW:          authMW,
		csrfMW:          csrfMW,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	v1.GET("/csrf", rt.csrfHandler.Token)

	authed := v1.Group("", rt.authMW, rt.csrfMW)
	rt.setupMeetingRoutes(authed)
	rt.setupTaskRoutes(authed)
}

// setupMeetingRoutes configures meeting, agenda, content and decision
// routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("", rt.meetingHandler.List)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.PATCH("/:id", rt.meetingHandler.Update)
	meetings.DELETE("/:id", rt.meetingHandler.Delete)

	meetings.PATCH("/:id/content", rt.meetingHandler.UpdateContentField)

	meetings.PATCH("/:id/agendas/reorder", rt.agendaHandler.Reorder)
	meetings.PATCH("/:id/agendas/:agenda_id", rt.agendaHandler.Update)
	meetings.PATCH("/:id/agendas/:agenda_id/toggle_check", rt.agendaHandler.ToggleCheck)
	meetings.DELETE("/:id/agendas/:agenda_id", rt.agendaHandler.Delete)

	meetings.POST("/:id/decisions", rt.decisionHandler.Create)
	meetings.GET("/:id/decisions", rt.decisionHandler.List)
}

// setupTaskRoutes configures task and kanban routes
func (rt *Router) setupTaskRoutes(g *echo.Group) {
	tasks := g.Group("/tasks")

	tasks.POST("", rt.taskHandler.Create)
	tasks.GET("", rt.taskHandler.Board)
	tasks.GET("/:id", rt.taskHandler.Get)
	tasks.PATCH("/:id", rt.taskHandler.Update)
	tasks.PATCH("/:id/status", rt.taskHandler.UpdateStatus)
	tasks.DELETE("/:id", rt.taskHandler.Delete)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
