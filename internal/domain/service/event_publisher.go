package service

import (
	"context"

	"railmadad/internal/domain/entity"
)

// RoleChangePublisher broadcasts RoleChangedEvent after every role write so
// that menus and other observers can re-render.
type RoleChangePublisher interface {
	// PublishRoleChanged publishes one event. Callers treat failures as
	// non-fatal.
	PublishRoleChanged(ctx context.Context, event *entity.RoleChangedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// RoleChangeFeed lets in-process observers follow the events of one client
// session. The returned cancel func must be called to unsubscribe.
type RoleChangeFeed interface {
	Subscribe(clientSessionID string) (<-chan *entity.RoleChangedEvent, func())
}
