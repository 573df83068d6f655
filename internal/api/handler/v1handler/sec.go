package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"marketplace/internal/config"
	"marketplace/pkg/domain"
	"marketplace/pkg/serrors"
)

type contextKey string

// UserIDKey is the context key of the authenticated domain.UserID.
const UserIDKey contextKey = "userID"

// GetUserIDFromContext returns the authenticated user, or the zero UserID
// when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}

// BearerAuth is the token of an Authorization: Bearer header.
type BearerAuth struct {
	Token string
}

// SecHandlerOptions configures token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are signed for.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler authenticates requests with RS256 JWTs whose subject is the user ID.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

// NewSecHandler parses the public key of opts.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// HandleBearerAuth verifies t and stores its subject in the returned context
// under UserIDKey.
func (s SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName string,
	t BearerAuth) (context.Context, error) {
	if t.Token == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "missing bearer token")
	}

	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

var errNoBearer = errors.New("authorization header is not a bearer token")

// bearerFromRequest extracts the token of the Authorization header.
func bearerFromRequest(r *http.Request) (BearerAuth, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return BearerAuth{}, nil
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return BearerAuth{}, serrors.Wrap(serrors.ErrUnauthorized, errNoBearer, "invalid authorization header")
	}

	return BearerAuth{Token: strings.TrimSpace(token)}, nil
}
