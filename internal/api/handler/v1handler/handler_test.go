package v1handler_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"marketplace/internal/api/handler/v1handler"
	"marketplace/pkg/logger"
	"marketplace/pkg/serrors"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "PostalCode must be a 5-digit postal code")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "PostalCode must be a 5-digit postal code", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_WrappedConflictKeepsMessage(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not apply: %w", serrors.With(serrors.ErrConflict, "already applied to this project"))
	res := h.NewError(context.Background(), err)
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, serrors.ErrConflict.Error(), res.Response.Code)
	require.Equal(t, "already applied to this project", res.Response.Message)
}

func TestNewError_DeadlineExceededIsTimeout(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := fmt.Errorf("could not list matches: %w", context.DeadlineExceeded)
	res := h.NewError(context.Background(), err)
	require.Equal(t, 504, res.StatusCode)
	require.Equal(t, serrors.ErrTimeout.Error(), res.Response.Code)
	require.Equal(t, "request timed out", res.Response.Message)
}
