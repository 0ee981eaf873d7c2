package autosave

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/internal/view/broadcast"
	"github.com/lucasmrdev/meeting-planner/internal/view/notify"
)

type fakeSaver struct {
	mu       sync.Mutex
	saves    []string
	failures int
}

func (f *fakeSaver) Save(_ context.Context, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("save rejected")
	}
	f.saves = append(f.saves, content)
	return nil
}

func (f *fakeSaver) saved() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.saves))
	copy(out, f.saves)
	return out
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func testConfig() Config {
	return Config{
		MeetingID:     "m1",
		Field:         "summary",
		Source:        "editor-a",
		Debounce:      30 * time.Millisecond,
		MaxAttempts:   3,
		RetryInterval: 20 * time.Millisecond,
	}
}

func TestEngine_DebouncedSaveUsesLatestContent(t *testing.T) {
	saver := &fakeSaver{}
	engine := NewEngine(testConfig(), saver, NewMemoryStore(), broadcast.NewBus(), &notify.Recorder{}, zap.NewNop())
	defer engine.Stop()

	engine.Input("primeira versão")
	engine.Input("segunda versão")

	waitFor(t, time.Second, func() bool { return len(saver.saved()) == 1 })

	if got := saver.saved()[0]; got != "segunda versão" {
		t.Fatalf("expected latest content saved, got %q", got)
	}
	if state := engine.State(); state != StateSaved {
		t.Fatalf("expected saved state, got %s", state)
	}
}

func TestEngine_TypingResetsDebounce(t *testing.T) {
	saver := &fakeSaver{}
	cfg := testConfig()
	cfg.Debounce = 60 * time.Millisecond
	engine := NewEngine(cfg, saver, NewMemoryStore(), broadcast.NewBus(), &notify.Recorder{}, zap.NewNop())
	defer engine.Stop()

	engine.Input("a")
	time.Sleep(30 * time.Millisecond)
	engine.Input("ab")
	time.Sleep(30 * time.Millisecond)

	// Still inside the second debounce window: nothing saved yet.
	if saves := saver.saved(); len(saves) != 0 {
		t.Fatalf("save fired too early: %v", saves)
	}

	waitFor(t, time.Second, func() bool { return len(saver.saved()) == 1 })
}

func TestEngine_FailedSaveQueuesAndRetries(t *testing.T) {
	saver := &fakeSaver{failures: 1}
	engine := NewEngine(testConfig(), saver, NewMemoryStore(), broadcast.NewBus(), &notify.Recorder{}, zap.NewNop())
	defer engine.Stop()

	engine.Input("conteúdo importante")

	waitFor(t, 2*time.Second, func() bool {
		saves := saver.saved()
		return len(saves) == 1 && saves[0] == "conteúdo importante"
	})
	waitFor(t, time.Second, func() bool { return engine.QueueLen() == 0 })
}

func TestEngine_DropsEntryAfterMaxAttempts(t *testing.T) {
	saver := &fakeSaver{failures: 10}
	recorder := &notify.Recorder{}
	engine := NewEngine(testConfig(), saver, NewMemoryStore(), broadcast.NewBus(), recorder, zap.NewNop())
	defer engine.Stop()

	engine.Input("vai falhar")

	waitFor(t, 2*time.Second, func() bool { return engine.QueueLen() == 0 })
	waitFor(t, time.Second, func() bool { return len(recorder.ByLevel("warning")) >= 1 })
}

func TestEngine_RemoteUpdateOverCleanStateIsAdopted(t *testing.T) {
	saver := &fakeSaver{}
	bus := broadcast.NewBus()
	recorder := &notify.Recorder{}
	engine := NewEngine(testConfig(), saver, NewMemoryStore(), bus, recorder, zap.NewNop())
	defer engine.Stop()

	channel := broadcast.ChannelName("m1", "summary")
	bus.Publish(channel, broadcast.Message{
		Type:      broadcast.MessageTypeContentUpdated,
		Field:     "summary",
		Content:   "escrito em outra aba",
		Source:    "editor-b",
		Timestamp: time.Now(),
	})

	waitFor(t, time.Second, func() bool { return engine.State() == StateSaved })
	if warnings := recorder.ByLevel("warning"); len(warnings) != 0 {
		t.Fatalf("clean adoption must not warn: %v", warnings)
	}
}

func TestEngine_RemoteUpdateOverDirtyStateWarnsWithoutMerging(t *testing.T) {
	saver := &fakeSaver{}
	bus := broadcast.NewBus()
	recorder := &notify.Recorder{}
	cfg := testConfig()
	cfg.Debounce = time.Hour // keep the edit dirty
	engine := NewEngine(cfg, saver, NewMemoryStore(), bus, recorder, zap.NewNop())
	defer engine.Stop()

	engine.Input("minha edição local")

	channel := broadcast.ChannelName("m1", "summary")
	bus.Publish(channel, broadcast.Message{
		Type:      broadcast.MessageTypeContentUpdated,
		Field:     "summary",
		Content:   "edição remota",
		Source:    "editor-b",
		Timestamp: time.Now(),
	})

	waitFor(t, time.Second, func() bool { return len(recorder.ByLevel("warning")) == 1 })
	if saves := saver.saved(); len(saves) != 0 {
		t.Fatalf("conflict must not trigger a save: %v", saves)
	}
}

func TestEngine_IgnoresOwnEcho(t *testing.T) {
	saver := &fakeSaver{}
	bus := broadcast.NewBus()
	recorder := &notify.Recorder{}
	cfg := testConfig()
	cfg.Debounce = time.Hour
	engine := NewEngine(cfg, saver, NewMemoryStore(), bus, recorder, zap.NewNop())
	defer engine.Stop()

	engine.Input("algo")

	bus.Publish(broadcast.ChannelName("m1", "summary"), broadcast.Message{
		Type:    broadcast.MessageTypeContentUpdated,
		Field:   "summary",
		Content: "eco",
		Source:  "editor-a", // same source as the engine
	})

	time.Sleep(50 * time.Millisecond)
	if warnings := recorder.ByLevel("warning"); len(warnings) != 0 {
		t.Fatalf("own echo must be ignored: %v", warnings)
	}
}

func TestEngine_RestoresQueueFromStore(t *testing.T) {
	store := NewMemoryStore()

	// A previous session left one entry behind.
	q := NewRetryQueue()
	q.Enqueue("sobrevivente", time.Now())
	data, err := q.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(StateKey("m1", "summary"), data); err != nil {
		t.Fatal(err)
	}

	saver := &fakeSaver{}
	engine := NewEngine(testConfig(), saver, store, broadcast.NewBus(), &notify.Recorder{}, zap.NewNop())
	defer engine.Stop()

	waitFor(t, 2*time.Second, func() bool {
		saves := saver.saved()
		return len(saves) == 1 && saves[0] == "sobrevivente"
	})
}

func TestEngine_SuccessfulSaveClearsQueue(t *testing.T) {
	saver := &fakeSaver{failures: 1}
	cfg := testConfig()
	cfg.RetryInterval = time.Hour // the queued entry must not replay on its own
	engine := NewEngine(cfg, saver, NewMemoryStore(), broadcast.NewBus(), &notify.Recorder{}, zap.NewNop())
	defer engine.Stop()

	engine.Input("versão antiga")
	waitFor(t, time.Second, func() bool { return engine.QueueLen() == 1 })

	engine.Input("versão nova")
	waitFor(t, time.Second, func() bool {
		saves := saver.saved()
		return len(saves) == 1 && saves[0] == "versão nova"
	})

	// The stale entry is superseded, not kept around for a later replay.
	waitFor(t, time.Second, func() bool { return engine.QueueLen() == 0 })

	time.Sleep(50 * time.Millisecond)
	if saves := saver.saved(); len(saves) != 1 {
		t.Fatalf("stale content must never overwrite the newer save: %v", saves)
	}
}

func TestEngine_OfflineQueuesWithoutAttempting(t *testing.T) {
	saver := &fakeSaver{}
	engine := NewEngine(testConfig(), saver, NewMemoryStore(), broadcast.NewBus(), &notify.Recorder{}, zap.NewNop())
	defer engine.Stop()

	engine.SetOnline(false)
	engine.Input("sem rede")

	waitFor(t, time.Second, func() bool { return engine.QueueLen() == 1 })
	if saves := saver.saved(); len(saves) != 0 {
		t.Fatalf("offline save must not touch the transport: %v", saves)
	}
	if state := engine.State(); state != StateOffline {
		t.Fatalf("expected offline state, got %s", state)
	}
}

func TestEngine_ReconnectReplaysQueueInOrder(t *testing.T) {
	saver := &fakeSaver{}
	cfg := testConfig()
	cfg.RetryInterval = time.Hour // replay must come from the reconnect, not the timer
	engine := NewEngine(cfg, saver, NewMemoryStore(), broadcast.NewBus(), &notify.Recorder{}, zap.NewNop())
	defer engine.Stop()

	engine.SetOnline(false)
	engine.Input("primeiro rascunho")
	waitFor(t, time.Second, func() bool { return engine.QueueLen() == 1 })
	engine.Input("segundo rascunho")
	waitFor(t, time.Second, func() bool { return engine.QueueLen() == 2 })

	engine.SetOnline(true)

	waitFor(t, time.Second, func() bool {
		saves := saver.saved()
		return len(saves) == 2 && saves[0] == "primeiro rascunho" && saves[1] == "segundo rascunho"
	})
	waitFor(t, time.Second, func() bool { return engine.QueueLen() == 0 })
	waitFor(t, time.Second, func() bool { return engine.State() == StateSaved })
}

func TestEngine_FlushSavesImmediately(t *testing.T) {
	saver := &fakeSaver{}
	cfg := testConfig()
	cfg.Debounce = time.Hour
	engine := NewEngine(cfg, saver, NewMemoryStore(), broadcast.NewBus(), &notify.Recorder{}, zap.NewNop())
	defer engine.Stop()

	engine.Input("antes de fechar")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := engine.Flush(ctx); err != nil {
		t.Fatalf("flush failed: %v", err)
	}

	if saves := saver.saved(); len(saves) != 1 || saves[0] != "antes de fechar" {
		t.Fatalf("flush must save the dirty content: %v", saves)
	}
}
