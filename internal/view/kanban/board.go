package kanban

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/internal/domain/entities"
	"github.com/lucasmrdev/meeting-planner/internal/view/notify"
)

// Card is one task as the board renders it.
type Card struct {
	ID          string
	Description string
	Status      entities.TaskStatus
}

// StatusUpdater submits a card's destination status to the server.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, taskID string, status entities.TaskStatus) error
}

// Board mirrors the kanban view. A drop into another column moves the
// card optimistically and submits the destination status; a rejected
// submission moves the card back. A drop into the same column changes
// nothing and submits nothing.
type Board struct {
	mu       sync.Mutex
	columns  map[entities.TaskStatus][]Card
	updater  StatusUpdater
	notifier notify.Notifier
	logger   *zap.Logger
}

// NewBoard creates a board from the given cards, grouped into the fixed
// columns
func NewBoard(cards []Card, updater StatusUpdater, notifier notify.Notifier, logger *zap.Logger) *Board {
	b := &Board{
		columns:  make(map[entities.TaskStatus][]Card, len(entities.KanbanStatuses)),
		updater:  updater,
		notifier: notifier,
		logger:   logger,
	}
	for _, status := range entities.KanbanStatuses {
		b.columns[status] = nil
	}
	for _, card := range cards {
		b.columns[card.Status] = append(b.columns[card.Status], card)
	}
	return b
}

// Column returns a copy of the cards in one column
func (b *Board) Column(status entities.TaskStatus) []Card {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Card, len(b.columns[status]))
	copy(out, b.columns[status])
	return out
}

// Counts returns the per-column card counts in display order
func (b *Board) Counts() map[entities.TaskStatus]int {
	b.mu.Lock()
	defer b.mu.Unlock()
	counts := make(map[entities.TaskStatus]int, len(entities.KanbanStatuses))
	for _, status := range entities.KanbanStatuses {
		counts[status] = len(b.columns[status])
	}
	return counts
}

// Move processes one drop of a card onto a column.
func (b *Board) Move(ctx context.Context, cardID string, to entities.TaskStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !to.IsValid() {
		b.notifier.Error("Status inválido")
		return fmt.Errorf("kanban: invalid status %q", to)
	}

	from, idx, ok := b.locate(cardID)
	if !ok {
		return fmt.Errorf("kanban: unknown card %q", cardID)
	}
	if from == to {
		return nil
	}

	// Optimistic move.
	card := b.columns[from][idx]
	b.columns[from] = append(b.columns[from][:idx], b.columns[from][idx+1:]...)
	card.Status = to
	b.columns[to] = append(b.columns[to], card)

	if err := b.updater.UpdateStatus(ctx, cardID, to); err != nil {
		// Roll the card back to its source column.
		last := len(b.columns[to]) - 1
		b.columns[to] = b.columns[to][:last]
		card.Status = from
		restored := make([]Card, 0, len(b.columns[from])+1)
		restored = append(restored, b.columns[from][:idx]...)
		restored = append(restored, card)
		restored = append(restored, b.columns[from][idx:]...)
		b.columns[from] = restored

		b.notifier.Error("Erro ao atualizar status")
		b.logger.Warn("kanban.move.rejected",
			zap.String("card_id", cardID),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.Error(err),
		)
		return err
	}

	b.notifier.Success("Status atualizado com sucesso!")
	return nil
}

func (b *Board) locate(cardID string) (entities.TaskStatus, int, bool) {
	for _, status := range entities.KanbanStatuses {
		for i, card := range b.columns[status] {
			if card.ID == cardID {
				return status, i, true
			}
		}
	}
	return "", 0, false
}
