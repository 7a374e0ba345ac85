package postgresql

import (
	"context"
	"encoding/json"

	"github.com/kerjahub/hris-portal-go/internal/domain/notification"
	"github.com/kerjahub/hris-portal-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

// Create implements notification.Repository.
func (r *notificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	data, err := json.Marshal(n.Data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO notifications (id, recipient_id, sender_id, type, title, message, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = q.Exec(ctx, query, n.ID, n.RecipientID, n.SenderID, n.Type, n.Title, n.Message, data)
	return err
}

// GetByRecipient implements notification.Repository.
func (r *notificationRepositoryImpl) GetByRecipient(ctx context.Context, recipientID string, limit int) ([]*notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient_id, sender_id, type, title, message, data, is_read, read_at, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, recipientID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var n notification.Notification
		var data []byte
		err := rows.Scan(&n.ID, &n.RecipientID, &n.SenderID, &n.Type, &n.Title, &n.Message, &data, &n.IsRead, &n.ReadAt, &n.CreatedAt)
		if err != nil {
			return nil, err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &n.Data); err != nil {
				return nil, err
			}
		}
		notifications = append(notifications, &n)
	}
	return notifications, rows.Err()
}

// GetUnreadCount implements notification.Repository.
func (r *notificationRepositoryImpl) GetUnreadCount(ctx context.Context, recipientID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`, recipientID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkAllAsRead implements notification.Repository.
func (r *notificationRepositoryImpl) MarkAllAsRead(ctx context.Context, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE notifications SET is_read = TRUE, read_at = NOW() WHERE recipient_id = $1 AND is_read = FALSE`, recipientID)
	return err
}
