package autosave

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is one queued save awaiting retry.
type Entry struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Attempts  int       `json:"attempts"`
}

// SavedState records the last successful save.
type SavedState struct {
	Content string    `json:"content"`
	SavedAt time.Time `json:"saved_at"`
}

// persistedState is the durable envelope written to the Store.
type persistedState struct {
	RetryQueue []Entry     `json:"retry_queue"`
	LastSaved  *SavedState `json:"last_saved,omitempty"`
}

// StateKey derives the Store key for one meeting field.
func StateKey(meetingID, field string) string {
	return fmt.Sprintf("meeting_content_%s_%s", meetingID, field)
}

// RetryQueue holds saves that failed and await another attempt. Entries
// are FIFO; an entry whose content matches the current tail is not
// enqueued twice.
type RetryQueue struct {
	entries   []Entry
	lastSaved *SavedState
}

// NewRetryQueue creates an empty queue
func NewRetryQueue() *RetryQueue {
	return &RetryQueue{}
}

// Enqueue adds a failed save unless identical content is already queued
func (q *RetryQueue) Enqueue(content string, timestamp time.Time) {
	for _, e := range q.entries {
		if e.Content == content {
			return
		}
	}
	q.entries = append(q.entries, Entry{Content: content, Timestamp: timestamp})
}

// Peek returns the oldest entry without removing it
func (q *RetryQueue) Peek() (Entry, bool) {
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	return q.entries[0], true
}

// Shift removes and returns the oldest entry
func (q *RetryQueue) Shift() (Entry, bool) {
	if len(q.entries) == 0 {
		return Entry{}, false
	}
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e, true
}

// RecordFailure bumps the attempt count of the oldest entry. Entries
// that exhaust maxAttempts are dropped and returned so the caller can
// log the loss.
func (q *RetryQueue) RecordFailure(maxAttempts int) (dropped *Entry) {
	if len(q.entries) == 0 {
		return nil
	}
	q.entries[0].Attempts++
	if q.entries[0].Attempts >= maxAttempts {
		e := q.entries[0]
		q.entries = q.entries[1:]
		return &e
	}
	return nil
}

// Clear drops every queued entry. A successful save of fresh content
// supersedes anything still waiting for a retry.
func (q *RetryQueue) Clear() {
	q.entries = nil
}

// MarkSaved records a successful save
func (q *RetryQueue) MarkSaved(content string, at time.Time) {
	q.lastSaved = &SavedState{Content: content, SavedAt: at}
}

// LastSaved returns the last successful save, if any
func (q *RetryQueue) LastSaved() *SavedState {
	return q.lastSaved
}

// Len returns the number of queued entries
func (q *RetryQueue) Len() int {
	return len(q.entries)
}

// Marshal serializes the queue and last-saved marker for the Store
func (q *RetryQueue) Marshal() ([]byte, error) {
	state := persistedState{
		RetryQueue: q.entries,
		LastSaved:  q.lastSaved,
	}
	return json.Marshal(state)
}

// Restore replaces the queue contents from persisted data. Corrupt data
// leaves the queue empty rather than failing the session.
func (q *RetryQueue) Restore(data []byte) error {
	var state persistedState
	if err := json.Unmarshal(data, &state); err != nil {
		q.entries = nil
		q.lastSaved = nil
		return fmt.Errorf("failed to restore autosave state: %w", err)
	}
	q.entries = state.RetryQueue
	q.lastSaved = state.LastSaved
	return nil
}
