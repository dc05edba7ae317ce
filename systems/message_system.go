package systems

import (
	"strings"
	"sync"
)

// MessageLog keeps the most recent log lines for on-screen display. It is
// an io.Writer so a logger can write to it directly.
type MessageLog struct {
	mu          sync.Mutex
	Messages    []string
	MaxMessages int
}

// Global message log instance (singleton)
var (
	globalMessageLog *MessageLog
	globalOnce       sync.Once
)

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	globalOnce.Do(func() {
		globalMessageLog = NewMessageLog(100)
	})
	return globalMessageLog
}

// NewMessageLog creates a message log that keeps the last limit lines
func NewMessageLog(limit int) *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: limit,
	}
}

// Write splits p into lines and adds each non-empty one
func (ml *MessageLog) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimRight(line, "\r"); line != "" {
			ml.Add(line)
		}
	}
	return len(p), nil
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.Messages = append(ml.Messages, message)
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// Snapshot returns a copy of the stored messages, oldest first
func (ml *MessageLog) Snapshot() []string {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return append([]string(nil), ml.Messages...)
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}
	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.Messages = []string{}
}
