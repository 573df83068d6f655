package v1handler

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"

	"marketplace/pkg/domain"
)

// ListNotifications pages through the notifications of the caller, newest first.
func (h *Handler) ListNotifications(e *jx.Encoder, r *http.Request) (int, error) {
	unread, err := queryBool(r, "unread")
	if err != nil {
		return 0, err
	}
	limit, err := queryUint(r, "limit")
	if err != nil {
		return 0, err
	}

	ctx := r.Context()
	notifications, next, err := h.deps.Marketplace.Notifications(ctx,
		GetUserIDFromContext(ctx),
		unread,
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		return 0, fmt.Errorf("could not list notifications: %w", err)
	}

	encodeList(e, len(notifications), func(e *jx.Encoder, i int) {
		encodeNotification(e, &notifications[i])
	}, true, next)

	return http.StatusOK, nil
}

// MarkNotificationsRead marks the given notifications of the caller as read,
// or all of them when no id is given.
func (h *Handler) MarkNotificationsRead(e *jx.Encoder, r *http.Request) (int, error) {
	var ids []domain.NotificationID
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "ids" {
			return d.Skip()
		}

		if err := d.Arr(func(d *jx.Decoder) error {
			s, err := d.Str()
			if err != nil {
				return err
			}
			id, err := uuid.Parse(s)
			if err != nil {
				return errors.Wrapf(err, "notification id %q", s)
			}
			ids = append(ids, domain.NotificationID(id))

			return nil
		}); err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	}); err != nil {
		return 0, err
	}

	ctx := r.Context()
	n, err := h.deps.Marketplace.MarkNotificationsRead(ctx, GetUserIDFromContext(ctx), ids...)
	if err != nil {
		return 0, fmt.Errorf("could not mark notifications read: %w", err)
	}

	e.Obj(func(e *jx.Encoder) {
		e.Field("updated", func(e *jx.Encoder) { e.Int64(n) })
	})

	return http.StatusOK, nil
}
