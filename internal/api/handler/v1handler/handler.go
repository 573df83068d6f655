// Package v1handler implements the version 1 HTTP API of the marketplace.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"

	"marketplace/internal/marketplace"
	"marketplace/internal/matcher"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
)

// Deps are the services behind the API.
type Deps struct {
	Marketplace marketplace.Marketplace
	Matcher     matcher.Matcher
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Error is the body of every error response.
type Error struct {
	Code    string
	Message string
}

// ErrorStatusCode is an error response with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

var errorStatus = map[serrors.Kind]struct {
	status  int
	message string
}{
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrInternal:     {http.StatusInternalServerError, "internal error"},
}

// NewError maps err to an error response. Semantic errors keep their own
// message; anything else is reported as an internal error without details.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)
	if kind == serrors.ErrInternal && errors.Is(err, context.DeadlineExceeded) {
		kind = serrors.ErrTimeout
	}
	mapped, ok := errorStatus[kind]
	if !ok {
		kind, mapped = serrors.ErrInternal, errorStatus[serrors.ErrInternal]
	}

	message := mapped.message
	var se *serrors.Error
	if kind != serrors.ErrInternal && errors.As(err, &se) && se.Message() != "" {
		message = se.Message()
	}

	if mapped.status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: mapped.status,
		Response: Error{
			Code:    kind.Error(),
			Message: message,
		},
	}
}

// operation handles an authenticated request. It encodes the response body
// into e and returns the response status.
type operation func(e *jx.Encoder, r *http.Request) (int, error)

// Routes returns the v1 routes, relative to the API prefix. Every route
// requires a bearer token verified by sec.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	mux := http.NewServeMux()
	handle := func(pattern, name string, op operation) {
		mux.Handle(pattern, h.serve(sec, name, op))
	}

	handle("GET /skills", "listSkills", h.ListSkills)

	handle("GET /me/talent", "getTalentProfile", h.GetTalentProfile)
	handle("PUT /me/talent", "saveTalentProfile", h.SaveTalentProfile)
	handle("GET /me/matches", "listMatches", h.ListMatches)
	handle("GET /me/projects", "listOwnerProjects", h.ListOwnerProjects)
	handle("GET /me/notifications", "listNotifications", h.ListNotifications)
	handle("POST /me/notifications/read", "markNotificationsRead", h.MarkNotificationsRead)

	handle("POST /projects", "createProject", h.CreateProject)
	handle("GET /projects/{id}", "getProject", h.GetProject)
	handle("POST /projects/{id}/publish", "publishProject", h.PublishProject)
	handle("POST /projects/{id}/close", "closeProject", h.CloseProject)
	handle("POST /projects/{id}/applications", "apply", h.Apply)
	handle("GET /projects/{id}/applications", "listProjectApplications", h.ListProjectApplications)

	handle("POST /applications/{id}/decision", "decideApplication", h.DecideApplication)

	return mux
}

func (h *Handler) serve(sec *SecHandler, name string, op operation) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerFromRequest(r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		ctx, err := sec.HandleBearerAuth(r.Context(), name, token)
		if err != nil {
			h.writeError(w, r, err)

			return
		}
		ctx = logger.WithFields(ctx, zap.String("operation", name))
		r = r.WithContext(ctx)

		var e jx.Encoder
		status, err := op(&e, r)
		if err != nil {
			h.writeError(w, r, err)

			return
		}

		if status == http.StatusNoContent {
			w.WriteHeader(status)

			return
		}
		writeJSON(w, status, e.Bytes())
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("code", func(e *jx.Encoder) { e.Str(res.Response.Code) })
		e.Field("message", func(e *jx.Encoder) { e.Str(res.Response.Message) })
	})
	writeJSON(w, res.StatusCode, e.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
