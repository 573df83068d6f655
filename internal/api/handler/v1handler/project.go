package v1handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"marketplace/internal/marketplace"
	"marketplace/pkg/domain"
)

// CreateProject posts a draft project owned by the caller.
func (h *Handler) CreateProject(e *jx.Encoder, r *http.Request) (int, error) {
	input, err := decodeProjectInput(r)
	if err != nil {
		return 0, err
	}

	ctx := r.Context()
	project, err := h.deps.Marketplace.CreateProject(ctx, GetUserIDFromContext(ctx), input)
	if err != nil {
		return 0, fmt.Errorf("could not create project: %w", err)
	}

	encodeProject(e, project)

	return http.StatusCreated, nil
}

// GetProject returns a project visible to the caller.
func (h *Handler) GetProject(e *jx.Encoder, r *http.Request) (int, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return 0, err
	}

	ctx := r.Context()
	project, err := h.deps.Marketplace.Project(ctx, GetUserIDFromContext(ctx), domain.ProjectID(id))
	if err != nil {
		return 0, fmt.Errorf("could not get project: %w", err)
	}

	encodeProject(e, project)

	return http.StatusOK, nil
}

// ListOwnerProjects pages through the projects of the caller, newest first.
func (h *Handler) ListOwnerProjects(e *jx.Encoder, r *http.Request) (int, error) {
	limit, err := queryUint(r, "limit")
	if err != nil {
		return 0, err
	}

	ctx := r.Context()
	projects, next, err := h.deps.Marketplace.OwnerProjects(ctx,
		GetUserIDFromContext(ctx),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		return 0, fmt.Errorf("could not list projects: %w", err)
	}

	encodeList(e, len(projects), func(e *jx.Encoder, i int) { encodeProject(e, &projects[i]) }, true, next)

	return http.StatusOK, nil
}

// PublishProject opens a draft project to talents.
func (h *Handler) PublishProject(e *jx.Encoder, r *http.Request) (int, error) {
	return h.transition(e, r, h.deps.Marketplace.PublishProject)
}

// CloseProject stops a project from accepting applications.
func (h *Handler) CloseProject(e *jx.Encoder, r *http.Request) (int, error) {
	return h.transition(e, r, h.deps.Marketplace.CloseProject)
}

type projectTransition func(
	ctx context.Context,
	ownerID domain.UserID,
	projectID domain.ProjectID) (*domain.Project, error)

func (h *Handler) transition(e *jx.Encoder, r *http.Request, to projectTransition) (int, error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		return 0, err
	}

	ctx := r.Context()
	project, err := to(ctx, GetUserIDFromContext(ctx), domain.ProjectID(id))
	if err != nil {
		return 0, fmt.Errorf("could not update project status: %w", err)
	}

	encodeProject(e, project)

	return http.StatusOK, nil
}

func decodeProjectInput(r *http.Request) (marketplace.ProjectInput, error) {
	var input marketplace.ProjectInput
	err := decodeBody(r, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "title":
			input.Title, err = d.Str()
		case "description":
			input.Description, err = d.Str()
		case "phase":
			var phase string
			phase, err = d.Str()
			input.Phase = domain.ProjectPhase(phase)
		case "postalCode":
			input.PostalCode, err = d.Str()
		case "city":
			input.City, err = d.Str()
		case "remotePossible":
			input.RemotePossible, err = d.Bool()
		case "skillIds":
			input.SkillIDs, err = decodeSkillIDs(d)
		default:
			return d.Skip()
		}

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	})

	return input, err
}
