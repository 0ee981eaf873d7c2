package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Notifier surfaces user-facing messages from the view engines. The
// engines never decide how a message is rendered, only its severity.
type Notifier interface {
	Success(message string)
	Error(message string)
	Warning(message string)
	Info(message string)
}

// ZapNotifier routes notifications to a structured logger
type ZapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier creates a logger-backed notifier
func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Success(message string) {
	n.logger.Info("notify.success", zap.String("message", message))
}

func (n *ZapNotifier) Error(message string) {
	n.logger.Error("notify.error", zap.String("message", message))
}

func (n *ZapNotifier) Warning(message string) {
	n.logger.Warn("notify.warning", zap.String("message", message))
}

func (n *ZapNotifier) Info(message string) {
	n.logger.Info("notify.info", zap.String("message", message))
}

// Recorder captures notifications for inspection in tests
type Recorder struct {
	mu       sync.Mutex
	Messages []Recorded
}

// Recorded is one captured notification
type Recorded struct {
	Level   string
	Message string
}

func (r *Recorder) record(level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Recorded{Level: level, Message: message})
}

func (r *Recorder) Success(message string) { r.record("success", message) }
func (r *Recorder) Error(message string)   { r.record("error", message) }
func (r *Recorder) Warning(message string) { r.record("warning", message) }
func (r *Recorder) Info(message string)    { r.record("info", message) }

// ByLevel returns the captured messages of one severity
func (r *Recorder) ByLevel(level string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, m := range r.Messages {
		if m.Level == level {
			out = append(out, m.Message)
		}
	}
	return out
}
