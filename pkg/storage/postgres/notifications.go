package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"

	"marketplace/pkg/domain"
	"marketplace/pkg/storage"
)

const (
	notificationsTable = "notifications"
)

// StoreNotifications inserts notifications, silently skipping project_match
// duplicates, and returns how many rows were inserted.
func (p *PgSQL) StoreNotifications(ctx context.Context, notifications ...domain.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	rows := make([]PgNotification, len(notifications))
	for i := range notifications {
		rows[i].FromDomain(notifications[i])
	}

	var ids []uuid.UUID
	if err := p.Builder.Insert(notificationsTable).
		Rows(rows).
		OnConflict(goqu.DoNothing()).
		Returning(goqu.I("id")).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return 0, fmt.Errorf("could not store notifications into pg: %w", err)
	}

	return len(ids), nil
}

// UserNotifications returns a page of notifications of a user, newest first.
func (p *PgSQL) UserNotifications(ctx context.Context,
	userID domain.UserID,
	unreadOnly bool,
	cursor time.Time,
	limit uint) (storage.UserNotifications, error) {
	w := []exp.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if unreadOnly {
		w = append(w, goqu.I("read_at").IsNull())
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	limit = max(limit, 1)

	// fetch one extra to determine if there is a next page
	var rows []PgNotification
	if err := p.Builder.From(notificationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserNotifications{}, fmt.Errorf("could not fetch user notifications from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.UserNotifications{
		Notifications: toDomain(rows, (*PgNotification).ToDomain),
		NextCursor:    nextCursor,
	}, nil
}

// MarkNotificationsRead sets read_at on the unread notifications of a user,
// restricted to ids when given.
func (p *PgSQL) MarkNotificationsRead(ctx context.Context,
	userID domain.UserID,
	ids ...domain.NotificationID) (int64, error) {
	w := []exp.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("read_at").IsNull(),
	}
	if len(ids) > 0 {
		args := make([]any, 0, len(ids))
		for _, id := range ids {
			args = append(args, uuid.UUID(id))
		}
		w = append(w, goqu.I("id").In(args...))
	}

	res, err := p.Builder.Update(notificationsTable).
		Set(goqu.Record{"read_at": goqu.L("CURRENT_TIMESTAMP")}).
		Where(w...).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return n, nil
}
