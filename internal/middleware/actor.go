// Package middleware provides HTTP middleware components for the ledger API.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/models"
)

const (
	actorIDHeader   = "X-Actor-Id"
	actorRoleHeader = "X-Actor-Role"
)

type contextKey string

const actorContextKey contextKey = "actor"

// openPaths do not require an authenticated actor
var openPaths = []string{
	"/health",
	"/metrics",
	"/docs",
	"/openapi",
}

type authErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Actor creates middleware that resolves the calling actor from headers set
// by the authenticating gateway. Identity verification happens upstream; this
// service only consumes the already-verified result.
func Actor(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isOpenPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := actorFromHeaders(r)
			if err != nil {
				logger.Debug("rejecting request without actor identity",
					"path", r.URL.Path,
					"error", err,
				)
				writeAuthError(w, err.Error())
				return
			}

			ctx := context.WithValue(r.Context(), actorContextKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext returns the actor stored by the Actor middleware.
func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey).(models.Actor)
	return actor, ok
}

// WithActor returns a context carrying the given actor, as the Actor
// middleware would produce.
func WithActor(ctx context.Context, actor models.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey, actor)
}

func actorFromHeaders(r *http.Request) (models.Actor, error) {
	rawID := r.Header.Get(actorIDHeader)
	if rawID == "" {
		return models.Actor{}, fmt.Errorf("missing %s header", actorIDHeader)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return models.Actor{}, fmt.Errorf("malformed %s header", actorIDHeader)
	}

	role := models.Role(r.Header.Get(actorRoleHeader))
	switch role {
	case "":
		role = models.RoleCustomer
	case models.RoleCustomer, models.RoleAdmin:
	default:
		return models.Actor{}, fmt.Errorf("unknown %s header value", actorRoleHeader)
	}

	return models.Actor{ID: id, Role: role}, nil
}

func isOpenPath(path string) bool {
	if path == "/" {
		return true
	}
	for _, open := range openPaths {
		if strings.HasPrefix(path, open) {
			return true
		}
	}
	return false
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(authErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}
