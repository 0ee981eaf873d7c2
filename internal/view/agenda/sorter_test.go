package agenda

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/internal/view/notify"
)

type fakeReorderer struct {
	calls     int
	failWith  error
	submitted []Position
}

func (f *fakeReorderer) Reorder(_ context.Context, positions []Position) ([]Item, error) {
	f.calls++
	f.submitted = positions
	if f.failWith != nil {
		return nil, f.failWith
	}
	// Echo the submission back as the authoritative list.
	items := make([]Item, len(positions))
	for i, p := range positions {
		items[i] = Item{ID: p.ID, Position: p.Position}
	}
	return items, nil
}

func threeItems() []Item {
	return []Item{
		{ID: "a", Title: "Abertura", Position: 1},
		{ID: "b", Title: "Discussão", Position: 2},
		{ID: "c", Title: "Encerramento", Position: 3},
	}
}

func TestHandleDragEnd_SamePositionSubmitsNothing(t *testing.T) {
	reorderer := &fakeReorderer{}
	s := NewSorter(threeItems(), reorderer, &notify.Recorder{}, zap.NewNop())

	if err := s.HandleDragEnd(context.Background(), 1, 1); err != nil {
		t.Fatalf("same-position drop failed: %v", err)
	}
	if reorderer.calls != 0 {
		t.Fatal("same-position drop must not submit")
	}
}

func TestHandleDragEnd_SubmitsFullRenumberedOrder(t *testing.T) {
	reorderer := &fakeReorderer{}
	recorder := &notify.Recorder{}
	s := NewSorter(threeItems(), reorderer, recorder, zap.NewNop())

	// Move the last row to the top.
	if err := s.HandleDragEnd(context.Background(), 2, 0); err != nil {
		t.Fatalf("drop failed: %v", err)
	}

	if len(reorderer.submitted) != 3 {
		t.Fatalf("every visible row must be submitted, got %d", len(reorderer.submitted))
	}
	want := []Position{{ID: "c", Position: 1}, {ID: "a", Position: 2}, {ID: "b", Position: 3}}
	for i, p := range reorderer.submitted {
		if p != want[i] {
			t.Fatalf("submitted[%d] = %+v, want %+v", i, p, want[i])
		}
	}
	if msgs := recorder.ByLevel("success"); len(msgs) != 1 || msgs[0] != "Ordem atualizada com sucesso!" {
		t.Fatalf("unexpected notifications: %v", msgs)
	}
}

func TestHandleDragEnd_RejectionRevertsOrder(t *testing.T) {
	reorderer := &fakeReorderer{failWith: errors.New("conflict")}
	recorder := &notify.Recorder{}
	s := NewSorter(threeItems(), reorderer, recorder, zap.NewNop())

	if err := s.HandleDragEnd(context.Background(), 0, 2); err == nil {
		t.Fatal("expected error from rejected reorder")
	}

	items := s.Items()
	for i, want := range []string{"a", "b", "c"} {
		if items[i].ID != want || items[i].Position != i+1 {
			t.Fatalf("order not reverted: %+v", items)
		}
	}
	if msgs := recorder.ByLevel("error"); len(msgs) != 1 || msgs[0] != "Erro ao reordenar agenda" {
		t.Fatalf("unexpected notifications: %v", msgs)
	}
}

func TestHandleDragEnd_AdoptsServerList(t *testing.T) {
	// The server may return a different list than the optimistic one,
	// e.g. after a concurrent edit.
	reorderer := &fakeReorderer{}
	s := NewSorter(threeItems(), reorderer, &notify.Recorder{}, zap.NewNop())

	if err := s.HandleDragEnd(context.Background(), 0, 1); err != nil {
		t.Fatalf("drop failed: %v", err)
	}

	items := s.Items()
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Fatalf("server list not adopted: %+v", items)
	}
}
