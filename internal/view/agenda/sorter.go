package agenda

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/internal/view/notify"
)

// Item is one topic row as the list view sees it.
type Item struct {
	ID       string
	Title    string
	Position int
}

// Position is one {id, position} pair submitted on reorder.
type Position struct {
	ID       string
	Position int
}

// Reorderer submits the full visible ordering and returns the
// authoritative list the server re-read after applying it.
type Reorderer interface {
	Reorder(ctx context.Context, positions []Position) ([]Item, error)
}

// Sorter mirrors the draggable topic list. A drop moves the row
// optimistically, renumbers every row 1..n and submits the whole
// ordering; a rejected submission restores the previous list.
type Sorter struct {
	mu        sync.Mutex
	items     []Item
	reorderer Reorderer
	notifier  notify.Notifier
	logger    *zap.Logger
}

// NewSorter creates a sorter over the given rows
func NewSorter(items []Item, reorderer Reorderer, notifier notify.Notifier, logger *zap.Logger) *Sorter {
	s := &Sorter{
		items:     make([]Item, len(items)),
		reorderer: reorderer,
		notifier:  notifier,
		logger:    logger,
	}
	copy(s.items, items)
	return s
}

// Items returns a copy of the current rows
func (s *Sorter) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// HandleDragEnd processes one drop. Dropping a row back where it came
// from submits nothing.
func (s *Sorter) HandleDragEnd(ctx context.Context, oldIndex, newIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if oldIndex == newIndex {
		return nil
	}
	if oldIndex < 0 || oldIndex >= len(s.items) || newIndex < 0 || newIndex >= len(s.items) {
		return nil
	}

	previous := make([]Item, len(s.items))
	copy(previous, s.items)

	// Optimistic move, then renumber the whole list.
	moved := s.items[oldIndex]
	s.items = append(s.items[:oldIndex], s.items[oldIndex+1:]...)
	rest := make([]Item, 0, len(s.items)+1)
	rest = append(rest, s.items[:newIndex]...)
	rest = append(rest, moved)
	rest = append(rest, s.items[newIndex:]...)
	s.items = rest
	for i := range s.items {
		s.items[i].Position = i + 1
	}

	positions := make([]Position, len(s.items))
	for i, item := range s.items {
		positions[i] = Position{ID: item.ID, Position: item.Position}
	}

	authoritative, err := s.reorderer.Reorder(ctx, positions)
	if err != nil {
		s.items = previous
		s.notifier.Error("Erro ao reordenar agenda")
		s.logger.Warn("agenda.sorter.reorder_failed",
			zap.Int("old_index", oldIndex),
			zap.Int("new_index", newIndex),
			zap.Error(err),
		)
		return err
	}

	// The server's re-read list wins over the optimistic one.
	s.items = make([]Item, len(authoritative))
	copy(s.items, authoritative)
	s.notifier.Success("Ordem atualizada com sucesso!")
	return nil
}
