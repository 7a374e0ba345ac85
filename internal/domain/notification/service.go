package notification

import (
	"context"

	"github.com/kerjahub/hris-portal-go/internal/pkg/sse"
)

// Service defines the notification service interface. Approval decisions
// emit exactly one event per committed transition; delivery beyond the SSE
// push stays at the boundary.
type Service interface {
	// Notify persists one notification and pushes it to connected clients.
	Notify(ctx context.Context, recipientID string, senderID *string, notifType NotificationType, title string, message string, data map[string]interface{}) error

	// List retrieves the recipient's recent notifications.
	List(ctx context.Context, recipientID string, limit int) ([]*Notification, error)

	// UnreadCount returns the recipient's unread notification count.
	UnreadCount(ctx context.Context, recipientID string) (int, error)

	// MarkAllRead marks all the recipient's notifications as read.
	MarkAllRead(ctx context.Context, recipientID string) error

	// Subscribe registers an SSE subscriber for the recipient.
	Subscribe(recipientID string) (chan sse.Event, func())
}
