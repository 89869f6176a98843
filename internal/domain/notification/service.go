package notification

import (
	"context"
)

// Emitter is the fire-and-forget side channel. Implementations log and
// swallow failures; a notification fault must never affect the business
// transaction that triggered it.
type Emitter interface {
	Emit(ctx context.Context, req EmitRequest)
}

// Service is the user-facing read side of the notification feed.
type Service interface {
	GetMy(ctx context.Context, page, limit int, unreadOnly bool) (ListNotificationResponse, error)
	GetUnreadCount(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
}
