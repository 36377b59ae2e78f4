// Package events provides a lightweight in-process pub-sub bus for handoff
// notifications. Only metadata travels on the bus; conversation ledgers are
// never transmitted, and nothing here is durable. A production deployment
// would publish these events to an external broker instead.
package events

// HandoffEvent records that a caller asked to hand a user's conversation
// context to another agent.
type HandoffEvent struct {
	FromUser    string
	ToAgent     string
	ContextSize int
}

// Bus is an in-process pub-sub implementation backed by a buffered channel.
type Bus struct {
	ch chan HandoffEvent
}

// NewBus creates a bus with the given buffer size.
func NewBus(buffer int) *Bus {
	return &Bus{ch: make(chan HandoffEvent, buffer)}
}

// Publish attempts to enqueue the event without blocking.
// Returns true if published, false if the buffer is full.
func (b *Bus) Publish(evt HandoffEvent) bool {
	select {
	case b.ch <- evt:
		return true
	default:
		return false
	}
}

// Subscribe returns a read-only channel for consumers.
func (b *Bus) Subscribe() <-chan HandoffEvent {
	return b.ch
}
