package broadcast

import (
	"fmt"
	"sync"
	"time"
)

// MessageTypeContentUpdated is the only message type carried today.
const MessageTypeContentUpdated = "content_updated"

// Message is one cross-view content update. Source identifies the
// originating editor so it can ignore its own echoes.
type Message struct {
	Type      string    `json:"type"`
	Field     string    `json:"field"`
	Content   string    `json:"content"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}

// ChannelName derives the per-meeting, per-field channel name.
func ChannelName(meetingID, field string) string {
	return fmt.Sprintf("meeting_content_%s_%s", meetingID, field)
}

// Handler receives broadcast messages. Handlers must not block.
type Handler func(Message)

// Channel publishes and subscribes content update messages on a named
// channel.
type Channel interface {
	Publish(channel string, msg Message) error
	Subscribe(channel string, handler Handler) (unsubscribe func())
}

// Bus is an in-process Channel for editors sharing one process. Delivery
// is ordered per channel and includes the publisher's own subscribers;
// filtering by Source is the receiver's job.
type Bus struct {
	mu   sync.RWMutex
	subs map[string]map[int]Handler
	next int
}

// NewBus creates a new in-process bus
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]Handler)}
}

// Publish delivers msg to every subscriber of the channel
func (b *Bus) Publish(channel string, msg Message) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[channel]))
	for _, h := range b.subs[channel] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(msg)
	}
	return nil
}

// Subscribe registers a handler on the channel and returns an
// unsubscribe function
func (b *Bus) Subscribe(channel string, handler Handler) func() {
	b.mu.Lock()
	if b.subs[channel] == nil {
		b.subs[channel] = make(map[int]Handler)
	}
	id := b.next
	b.next++
	b.subs[channel][id] = handler
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[channel], id)
		if len(b.subs[channel]) == 0 {
			delete(b.subs, channel)
		}
	}
}
