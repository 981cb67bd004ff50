package t2048

import "fmt"

// DefaultLogLimit is how many event messages are kept for display.
const DefaultLogLimit = 30

// EventLog is an ordered list of human-readable messages, oldest first.
// Only the most recent limit entries are retained.
type EventLog struct {
	messages []string
	limit    int
}

// NewEventLog creates a log keeping at most limit messages.
func NewEventLog(limit int) *EventLog {
	if limit < 1 {
		limit = DefaultLogLimit
	}
	return &EventLog{
		messages: make([]string, 0, limit),
		limit:    limit,
	}
}

// Add appends a message, dropping the oldest one when full.
func (l *EventLog) Add(msg string) {
	if len(l.messages) == l.limit {
		copy(l.messages, l.messages[1:])
		l.messages = l.messages[:l.limit-1]
	}
	l.messages = append(l.messages, msg)
}

// Addf appends a formatted message.
func (l *EventLog) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Messages returns a copy of the retained messages, most recent last.
func (l *EventLog) Messages() []string {
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}

// Tail returns up to n of the most recent messages, most recent last.
func (l *EventLog) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	start := len(l.messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, len(l.messages)-start)
	copy(out, l.messages[start:])
	return out
}

// Len returns the number of retained messages.
func (l *EventLog) Len() int {
	return len(l.messages)
}

// Limit returns the retention limit.
func (l *EventLog) Limit() int {
	return l.limit
}
