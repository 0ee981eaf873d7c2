package autosave

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lucasmrdev/meeting-planner/internal/view/broadcast"
	"github.com/lucasmrdev/meeting-planner/internal/view/notify"
)

// State is the editor-visible save status.
type State string

const (
	StateIdle     State = "idle"
	StateTyping   State = "typing"
	StateSaving   State = "saving"
	StateSaved    State = "saved"
	StateError    State = "error"
	StateOffline  State = "offline"
	StateRetrying State = "retrying"
)

// Saver persists one content value. Implementations decide the
// transport.
type Saver interface {
	Save(ctx context.Context, content string) error
}

// ErrOffline marks a save failure caused by connectivity rather than
// rejection. Offline failures surface a distinct status.
var ErrOffline = errors.New("autosave: offline")

// Config tunes one engine instance. An engine watches exactly one field
// of one meeting.
type Config struct {
	MeetingID     string
	Field         string
	Source        string
	Debounce      time.Duration
	MaxAttempts   int
	RetryInterval time.Duration
	SaveTimeout   time.Duration
}

func (c *Config) applyDefaults() {
	if c.Debounce <= 0 {
		c.Debounce = 2 * time.Second
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 5 * time.Second
	}
	if c.SaveTimeout <= 0 {
		c.SaveTimeout = 10 * time.Second
	}
}

type eventKind int

const (
	evInput eventKind = iota
	evDebounceFired
	evRetryTick
	evRemote
	evConnectivity
	evFlush
	evStateReq
	evQueueLenReq
	evStop
)

type event struct {
	kind    eventKind
	content string
	online  bool
	msg     broadcast.Message
	ack     chan struct{}
	stateCh chan State
	lenCh   chan int
}

// Engine debounces edits of one content field, saves them through the
// Saver, queues failures durably, and reconciles concurrent edits seen
// on the broadcast channel. All state lives on a single goroutine; the
// exported methods only post events.
type Engine struct {
	cfg      Config
	saver    Saver
	store    Store
	channel  broadcast.Channel
	notifier notify.Notifier
	logger   *zap.Logger

	events      chan event
	done        chan struct{}
	unsubscribe func()

	// owned by the run goroutine
	state      State
	pending    string
	dirty      bool
	online     bool
	queue      *RetryQueue
	debounce   *time.Timer
	retryTimer *time.Timer
}

// NewEngine restores any persisted retry queue for the field and starts
// the event loop.
func NewEngine(cfg Config, saver Saver, store Store, channel broadcast.Channel, notifier notify.Notifier, logger *zap.Logger) *Engine {
	cfg.applyDefaults()

	e := &Engine{
		cfg:      cfg,
		saver:    saver,
		store:    store,
		channel:  channel,
		notifier: notifier,
		logger:   logger,
		events:   make(chan event, 64),
		done:     make(chan struct{}),
		state:    StateIdle,
		online:   true,
		queue:    NewRetryQueue(),
	}

	if data, err := store.Load(e.stateKey()); err == nil {
		if err := e.queue.Restore(data); err != nil {
			logger.Warn("autosave.state.corrupt",
				zap.String("key", e.stateKey()),
				zap.Error(err),
			)
		}
	}

	e.unsubscribe = channel.Subscribe(e.channelName(), func(msg broadcast.Message) {
		select {
		case e.events <- event{kind: evRemote, msg: msg}:
		case <-e.done:
		}
	})

	go e.run()

	// Anything left over from a previous session is retried right away.
	if e.queue.Len() > 0 {
		e.events <- event{kind: evRetryTick}
	}

	return e
}

func (e *Engine) stateKey() string {
	return StateKey(e.cfg.MeetingID, e.cfg.Field)
}

func (e *Engine) channelName() string {
	return broadcast.ChannelName(e.cfg.MeetingID, e.cfg.Field)
}

// Input reports one edit of the field. The save fires after the
// debounce window passes without further input.
func (e *Engine) Input(content string) {
	select {
	case e.events <- event{kind: evInput, content: content}:
	case <-e.done:
	}
}

// SetOnline reports a connectivity change. While offline, saves
// short-circuit to the retry queue without touching the Saver; going
// back online replays the queue right away.
func (e *Engine) SetOnline(online bool) {
	select {
	case e.events <- event{kind: evConnectivity, online: online}:
	case <-e.done:
	}
}

// Flush saves any dirty content immediately, bypassing the debounce.
// It blocks until the attempt finishes or ctx expires.
func (e *Engine) Flush(ctx context.Context) error {
	ack := make(chan struct{})
	select {
	case e.events <- event{kind: evFlush, ack: ack}:
	case <-e.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-ack:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current save status
func (e *Engine) State() State {
	stateCh := make(chan State, 1)
	select {
	case e.events <- event{kind: evStateReq, stateCh: stateCh}:
		return <-stateCh
	case <-e.done:
		return StateIdle
	}
}

// QueueLen returns the number of saves awaiting retry
func (e *Engine) QueueLen() int {
	lenCh := make(chan int, 1)
	select {
	case e.events <- event{kind: evQueueLenReq, lenCh: lenCh}:
		return <-lenCh
	case <-e.done:
		return e.queue.Len()
	}
}

// Stop unsubscribes, persists the retry queue and halts the loop
func (e *Engine) Stop() {
	select {
	case e.events <- event{kind: evStop}:
		<-e.done
	case <-e.done:
	}
}

func (e *Engine) run() {
	for ev := range e.events {
		switch ev.kind {
		case evInput:
			e.handleInput(ev.content)
		case evDebounceFired:
			e.handleDebounce()
		case evRetryTick:
			e.handleRetry()
		case evRemote:
			e.handleRemote(ev.msg)
		case evConnectivity:
			e.handleConnectivity(ev.online)
		case evFlush:
			e.handleFlush()
			close(ev.ack)
		case evStateReq:
			ev.stateCh <- e.state
		case evQueueLenReq:
			ev.lenCh <- e.queue.Len()
		case evStop:
			e.shutdown()
			return
		}
	}
}

func (e *Engine) handleInput(content string) {
	e.pending = content
	e.dirty = true
	e.state = StateTyping

	if e.debounce != nil {
		e.debounce.Stop()
	}
	e.debounce = time.AfterFunc(e.cfg.Debounce, func() {
		select {
		case e.events <- event{kind: evDebounceFired}:
		case <-e.done:
		}
	})
}

func (e *Engine) handleDebounce() {
	if !e.dirty {
		return
	}
	e.save(e.pending)
}

func (e *Engine) handleFlush() {
	if e.debounce != nil {
		e.debounce.Stop()
	}
	if e.dirty {
		e.save(e.pending)
	}
	e.persist()
}

// save attempts one write of content. Success broadcasts the value and
// clears the retry queue outright: anything still queued is older than
// what just reached the server. Failure joins the queue; while offline
// the Saver is not called at all.
func (e *Engine) save(content string) {
	if !e.online {
		e.state = StateOffline
		e.queue.Enqueue(content, time.Now())
		e.persist()
		return
	}

	e.state = StateSaving

	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.SaveTimeout)
	err := e.saver.Save(ctx, content)
	cancel()

	if err != nil {
		if errors.Is(err, ErrOffline) {
			e.state = StateOffline
		} else {
			e.state = StateError
		}
		e.queue.Enqueue(content, time.Now())
		e.persist()
		e.scheduleRetry()
		e.logger.Warn("autosave.save.failed",
			zap.String("field", e.cfg.Field),
			zap.Int("queued", e.queue.Len()),
			zap.Error(err),
		)
		return
	}

	if content == e.pending {
		e.dirty = false
	}
	e.state = StateSaved
	e.queue.Clear()
	e.queue.MarkSaved(content, time.Now())
	e.persist()
	e.publish(content)
}

// handleRetry attempts the oldest queued entry. Entries that exhaust
// their attempts are dropped with a warning; content is not silently
// merged. A successful replay chains straight into the next entry so
// the queue drains sequentially.
func (e *Engine) handleRetry() {
	if !e.online {
		return
	}
	entry, ok := e.queue.Peek()
	if !ok {
		return
	}
	e.state = StateRetrying

	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.SaveTimeout)
	err := e.saver.Save(ctx, entry.Content)
	cancel()

	if err != nil {
		if dropped := e.queue.RecordFailure(e.cfg.MaxAttempts); dropped != nil {
			e.logger.Warn("autosave.retry.dropped",
				zap.String("field", e.cfg.Field),
				zap.Int("attempts", dropped.Attempts),
				zap.Time("queued_at", dropped.Timestamp),
			)
			e.notifier.Warning("Não foi possível salvar uma alteração; ela foi descartada.")
		}
		e.persist()
		if e.queue.Len() > 0 {
			e.scheduleRetry()
		} else if e.dirty {
			e.state = StateError
		} else {
			e.state = StateIdle
		}
		return
	}

	e.queue.Shift()
	if entry.Content == e.pending {
		e.dirty = false
	}
	e.queue.MarkSaved(entry.Content, time.Now())
	e.persist()
	e.publish(entry.Content)

	if e.queue.Len() > 0 {
		select {
		case e.events <- event{kind: evRetryTick}:
		default:
			e.scheduleRetry()
		}
		return
	}
	if !e.dirty {
		e.state = StateSaved
	}
}

// handleConnectivity flips the online flag. Going offline parks the
// retry timer; coming back online kicks off the replay immediately.
func (e *Engine) handleConnectivity(online bool) {
	if e.online == online {
		return
	}
	e.online = online

	if !online {
		if e.retryTimer != nil {
			e.retryTimer.Stop()
		}
		e.state = StateOffline
		return
	}

	if e.queue.Len() > 0 {
		e.handleRetry()
		return
	}
	if e.dirty {
		e.save(e.pending)
		return
	}
	e.state = StateIdle
}

// handleRemote reconciles a save made by another view of the same
// field. Own echoes are ignored; a remote save over local unsaved edits
// is surfaced as a conflict, never merged.
func (e *Engine) handleRemote(msg broadcast.Message) {
	if msg.Source == e.cfg.Source || msg.Type != broadcast.MessageTypeContentUpdated {
		return
	}
	if msg.Field != e.cfg.Field {
		return
	}

	if e.dirty {
		e.notifier.Warning("Este campo foi alterado em outra aba. Suas edições não salvas podem sobrescrever a versão mais recente.")
		e.logger.Info("autosave.remote.conflict",
			zap.String("field", e.cfg.Field),
			zap.String("source", msg.Source),
		)
		return
	}

	e.pending = msg.Content
	e.state = StateSaved
	e.queue.MarkSaved(msg.Content, msg.Timestamp)
	e.persist()
}

func (e *Engine) publish(content string) {
	msg := broadcast.Message{
		Type:      broadcast.MessageTypeContentUpdated,
		Field:     e.cfg.Field,
		Content:   content,
		Source:    e.cfg.Source,
		Timestamp: time.Now(),
	}
	if err := e.channel.Publish(e.channelName(), msg); err != nil {
		e.logger.Warn("autosave.broadcast.failed",
			zap.String("field", e.cfg.Field),
			zap.Error(err),
		)
	}
}

func (e *Engine) scheduleRetry() {
	if e.retryTimer != nil {
		e.retryTimer.Stop()
	}
	e.retryTimer = time.AfterFunc(e.cfg.RetryInterval, func() {
		select {
		case e.events <- event{kind: evRetryTick}:
		case <-e.done:
		}
	})
}

func (e *Engine) persist() {
	data, err := e.queue.Marshal()
	if err != nil {
		e.logger.Warn("autosave.persist.marshal_failed", zap.Error(err))
		return
	}
	if err := e.store.Save(e.stateKey(), data); err != nil {
		e.logger.Warn("autosave.persist.failed",
			zap.String("key", e.stateKey()),
			zap.Error(err),
		)
	}
}

func (e *Engine) shutdown() {
	if e.debounce != nil {
		e.debounce.Stop()
	}
	if e.retryTimer != nil {
		e.retryTimer.Stop()
	}
	if e.unsubscribe != nil {
		e.unsubscribe()
	}
	e.persist()
	close(e.done)
}
