package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeAttendanceSubmitted NotificationType = "attendance_submitted"
	TypeAttendanceApproved  NotificationType = "attendance_approved"
	TypeAttendanceRejected  NotificationType = "attendance_rejected"
	TypeScheduleUpdated     NotificationType = "schedule_updated"
)

// Notification represents a notification entity
type Notification struct {
	ID          string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
