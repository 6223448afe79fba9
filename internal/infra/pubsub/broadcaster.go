package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"railmadad/internal/domain/entity"
)

const subscriberBuffer = 8

// Broadcaster fans role change events out to the in-process subscribers of
// a client session. It backs the server-sent events stream and is always
// part of the publisher chain.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[string]map[int]chan *entity.RoleChangedEvent
	nextID int
	closed bool
	logger *slog.Logger
}

// NewBroadcaster creates an empty Broadcaster.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		subs:   make(map[string]map[int]chan *entity.RoleChangedEvent),
		logger: logger,
	}
}

// PublishRoleChanged delivers the event to every subscriber of its client
// session. A subscriber whose buffer is full misses the event.
func (b *Broadcaster) PublishRoleChanged(_ context.Context, event *entity.RoleChangedEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subs[event.ClientSessionID] {
		select {
		case ch <- event:
		default:
			b.logger.Warn("Dropping role change event for slow subscriber",
				slog.String("client_session_id", event.ClientSessionID),
				slog.Int("subscriber", id),
			)
		}
	}

	return nil
}

// Subscribe registers a listener for one client session. The returned
// function unregisters it and closes the channel; it is safe to call twice.
func (b *Broadcaster) Subscribe(clientSessionID string) (<-chan *entity.RoleChangedEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan *entity.RoleChangedEvent, subscriberBuffer)
	if b.closed {
		close(ch)

		return ch, func() {}
	}

	id := b.nextID
	b.nextID++

	if b.subs[clientSessionID] == nil {
		b.subs[clientSessionID] = make(map[int]chan *entity.RoleChangedEvent)
	}
	b.subs[clientSessionID][id] = ch

	return ch, func() { b.unsubscribe(clientSessionID, id) }
}

func (b *Broadcaster) unsubscribe(clientSessionID string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	session, ok := b.subs[clientSessionID]
	if !ok {
		return
	}
	ch, ok := session[id]
	if !ok {
		return
	}

	delete(session, id)
	close(ch)
	if len(session) == 0 {
		delete(b.subs, clientSessionID)
	}
}

// Subscribers returns the number of listeners of a client session.
func (b *Broadcaster) Subscribers(clientSessionID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs[clientSessionID])
}

// Close ends every open subscription.
func (b *Broadcaster) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, session := range b.subs {
		for _, ch := range session {
			close(ch)
		}
	}
	b.subs = make(map[string]map[int]chan *entity.RoleChangedEvent)
	b.closed = true

	return nil
}
