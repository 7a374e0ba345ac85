package notification

import (
	"context"
)

// Repository defines the notification repository interface
type Repository interface {
	Create(ctx context.Context, notification *Notification) error
	GetByRecipient(ctx context.Context, recipientID string, limit int) ([]*Notification, error)
	GetUnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkAllAsRead(ctx context.Context, recipientID string) error
}
