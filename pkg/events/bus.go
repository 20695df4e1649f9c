// Package events provides the in-process event bus that carries
// user-persisted notifications to the namespace provisioner.
package events

import (
	"context"
	"sync"

	"github.com/devworkspace-io/workspace-secrets/pkg/logger"
	"github.com/devworkspace-io/workspace-secrets/pkg/users"
)

// UserPersistedEvent is published after a user record has been persisted.
type UserPersistedEvent struct {
	User users.User
}

// UserPersistedHandler consumes a user-persisted event. Handlers own their
// error handling: there is no subscriber contract to propagate errors, so a
// handler must log and swallow its own failures.
type UserPersistedHandler func(ctx context.Context, event UserPersistedEvent)

// Bus dispatches user-persisted events to registered handlers synchronously,
// in registration order.
type Bus struct {
	mu       sync.RWMutex
	handlers []UserPersistedHandler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// SubscribeUserPersisted registers a handler for user-persisted events.
func (b *Bus) SubscribeUserPersisted(handler UserPersistedHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// PublishUserPersisted delivers the event to every registered handler.
// A panicking handler is logged and does not prevent delivery to the rest.
func (b *Bus) PublishUserPersisted(ctx context.Context, event UserPersistedEvent) {
	b.mu.RLock()
	handlers := make([]UserPersistedHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, handler := range handlers {
		dispatch(ctx, handler, event)
	}
}

func dispatch(ctx context.Context, handler UserPersistedHandler, event UserPersistedEvent) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("user-persisted event handler panicked",
				"user_id", event.User.ID, "panic", r)
		}
	}()
	handler(ctx, event)
}
