package storage

import (
	"context"
	"time"

	"marketplace/pkg/domain"
)

// UserNotifications groups a page of notifications with an optional cursor
// to the next page.
type UserNotifications struct {
	Notifications []domain.Notification
	NextCursor    *time.Time
}

// NotificationStorage defines the operations on notifications.
type NotificationStorage interface {
	// StoreNotifications inserts notifications and returns how many were
	// stored. A project_match notification already stored for the same user
	// and project is skipped.
	StoreNotifications(ctx context.Context, notifications ...domain.Notification) (int, error)
	// UserNotifications returns a page of notifications of a user created
	// before the optional cursor, newest first.
	UserNotifications(ctx context.Context,
		userID domain.UserID,
		unreadOnly bool,
		cursor time.Time,
		limit uint) (UserNotifications, error)
	// MarkNotificationsRead marks the given notifications of a user as read,
	// or all of them when ids is empty. Returns the number of rows changed.
	MarkNotificationsRead(ctx context.Context, userID domain.UserID, ids ...domain.NotificationID) (int64, error)
}
