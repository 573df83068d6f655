package v1handler

import (
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"marketplace/pkg/domain"
)

// Apply submits the candidacy of the calling talent to a project.
func (h *Handler) Apply(e *jx.Encoder, r *http.Request) (int, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return 0, err
	}

	var message string
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "message" {
			return d.Skip()
		}
		var err error
		message, err = d.Str()

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	}); err != nil {
		return 0, err
	}

	ctx := r.Context()
	application, err := h.deps.Marketplace.Apply(ctx, GetUserIDFromContext(ctx), domain.ProjectID(id), message)
	if err != nil {
		return 0, fmt.Errorf("could not apply: %w", err)
	}

	encodeApplication(e, application)

	return http.StatusCreated, nil
}

// ListProjectApplications returns the applications of a project owned by the caller.
func (h *Handler) ListProjectApplications(e *jx.Encoder, r *http.Request) (int, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return 0, err
	}

	ctx := r.Context()
	applications, err := h.deps.Marketplace.ProjectApplications(ctx, GetUserIDFromContext(ctx), domain.ProjectID(id))
	if err != nil {
		return 0, fmt.Errorf("could not list applications: %w", err)
	}

	encodeList(e, len(applications), func(e *jx.Encoder, i int) {
		encodeApplication(e, &applications[i])
	}, false, "")

	return http.StatusOK, nil
}

// DecideApplication accepts or rejects a pending application.
func (h *Handler) DecideApplication(e *jx.Encoder, r *http.Request) (int, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return 0, err
	}

	var status string
	if err := decodeBody(r, func(d *jx.Decoder, key string) error {
		if key != "status" {
			return d.Skip()
		}
		var err error
		status, err = d.Str()

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	}); err != nil {
		return 0, err
	}

	ctx := r.Context()
	application, err := h.deps.Marketplace.DecideApplication(ctx,
		GetUserIDFromContext(ctx),
		domain.ApplicationID(id),
		domain.ApplicationStatus(status))
	if err != nil {
		return 0, fmt.Errorf("could not decide application: %w", err)
	}

	encodeApplication(e, application)

	return http.StatusOK, nil
}
