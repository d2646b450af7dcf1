package systems

import (
	"fmt"
	"slices"

	"ebiten-circles/components"
	"ebiten-circles/ecs"
)

// MessageLog keeps the most recent position messages for on-screen display
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a message log holding at most max messages
func NewMessageLog(max int) *MessageLog {
	return &MessageLog{MaxMessages: max}
}

// Add appends a message, dropping the oldest ones past MaxMessages
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)
	if over := len(ml.Messages) - ml.MaxMessages; over > 0 {
		ml.Messages = slices.Delete(ml.Messages, 0, over)
	}
}

// Record implements PositionSink
func (ml *MessageLog) Record(tick uint64, entity ecs.Entity, pos components.Position) {
	ml.Add(fmt.Sprintf("[%d] %s: Hello, %v", tick, entity, pos))
}

// RecentMessages returns up to n messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	n = max(n, 0)
	recent := make([]string, 0, min(n, len(ml.Messages)))
	for _, msg := range slices.Backward(ml.Messages) {
		if len(recent) == n {
			break
		}
		recent = append(recent, msg)
	}
	return recent
}

// Clear drops every message
func (ml *MessageLog) Clear() {
	ml.Messages = ml.Messages[:0]
}
