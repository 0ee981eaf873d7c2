package presenter

import (
	"time"

	taskdto "github.com/lucasmrdev/meeting-planner/internal/adapter/dto/task"
	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	taskUsecase "github.com/lucasmrdev/meeting-planner/internal/usecase/task"
)

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t *entities.Task, now time.Time) *taskdto.TaskResponse {
	if t == nil {
		return nil
	}

	response := &taskdto.TaskResponse{
		ID:            t.ID.String(),
		Description:   t.Description,
		Deadline:      time.Time(t.Deadline).Format("2006-01-02"),
		Status:        string(t.Status),
		StatusDisplay: t.StatusDisplay(),
		Overdue:       t.Overdue(now),
		Urgent:        t.Urgent(now),
		OwnerID:       t.OwnerID.String(),
		MeetingID:     t.MeetingID.String(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
	if t.Meeting != nil {
		response.MeetingTitle = t.Meeting.Title
	}
	return response
}

// ToKanbanBoardResponse converts grouped columns to the board DTO
func ToKanbanBoardResponse(columns []taskUsecase.Column, now time.Time) *taskdto.KanbanBoardResponse {
	board := &taskdto.KanbanBoardResponse{
		Columns: make([]*taskdto.KanbanColumnResponse, len(columns)),
	}
	for i, col := range columns {
		tasks := make([]*taskdto.TaskResponse, len(col.Tasks))
		for j, t := range col.Tasks {
			tasks[j] = ToTaskResponse(t, now)
		}
		board.Columns[i] = &taskdto.KanbanColumnResponse{
			Status: string(col.Status),
			Label:  col.Label,
			Count:  len(tasks),
			Tasks:  tasks,
		}
	}
	return board
}
