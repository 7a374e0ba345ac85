package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kerjahub/hris-portal-go/internal/domain/notification"
	"github.com/kerjahub/hris-portal-go/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	repo notification.Repository
	hub  *sse.Hub
}

func NewNotificationService(repo notification.Repository, hub *sse.Hub) notification.Service {
	return &NotificationServiceImpl{
		repo: repo,
		hub:  hub,
	}
}

// Notify implements notification.Service. One call persists one
// notification and pushes one SSE event; callers own the one-event-per-
// transition contract.
func (s *NotificationServiceImpl) Notify(ctx context.Context, recipientID string, senderID *string, notifType notification.NotificationType, title string, message string, data map[string]interface{}) error {
	n := &notification.Notification{
		ID:          uuid.New().String(),
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data:        data,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	s.hub.Publish(recipientID, sse.Event{
		UserID: recipientID,
		Event:  string(notifType),
		Data:   n,
	})

	return nil
}

// List implements notification.Service.
func (s *NotificationServiceImpl) List(ctx context.Context, recipientID string, limit int) ([]*notification.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	notifications, err := s.repo.GetByRecipient(ctx, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount implements notification.Service.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	count, err := s.repo.GetUnreadCount(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAllRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, recipientID string) error {
	if err := s.repo.MarkAllAsRead(ctx, recipientID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// Subscribe implements notification.Service.
func (s *NotificationServiceImpl) Subscribe(recipientID string) (chan sse.Event, func()) {
	return s.hub.Subscribe(recipientID)
}
