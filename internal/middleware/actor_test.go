package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonstancovich/banking-ledger/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestActorMiddleware(t *testing.T) {
	actorID := uuid.New()

	t.Run("resolves actor from headers", func(t *testing.T) {
		var captured models.Actor
		var found bool

		handler := Actor(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, found = ActorFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
		req.Header.Set("X-Actor-Id", actorID.String())
		req.Header.Set("X-Actor-Role", "admin")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, found)
		assert.Equal(t, actorID, captured.ID)
		assert.Equal(t, models.RoleAdmin, captured.Role)
	})

	t.Run("defaults role to customer", func(t *testing.T) {
		var captured models.Actor

		handler := Actor(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			captured, _ = ActorFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
		req.Header.Set("X-Actor-Id", actorID.String())
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, models.RoleCustomer, captured.Role)
	})

	t.Run("rejects request without actor id", func(t *testing.T) {
		nextCalled := false
		handler := Actor(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, nextCalled)
		assert.Contains(t, rec.Body.String(), "unauthorized")
	})

	t.Run("rejects malformed actor id", func(t *testing.T) {
		handler := Actor(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
		req.Header.Set("X-Actor-Id", "not-a-uuid")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "malformed")
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		handler := Actor(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
		req.Header.Set("X-Actor-Id", actorID.String())
		req.Header.Set("X-Actor-Role", "superuser")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("skips open paths", func(t *testing.T) {
		tests := []struct {
			name string
			path string
		}{
			{name: "root redirect", path: "/"},
			{name: "health endpoint", path: "/health"},
			{name: "metrics endpoint", path: "/metrics"},
			{name: "docs endpoint", path: "/docs"},
			{name: "openapi spec", path: "/openapi.json"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				nextCalled := false
				handler := Actor(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					nextCalled = true
					w.WriteHeader(http.StatusOK)
				}))

				req := httptest.NewRequest(http.MethodGet, tt.path, nil)
				rec := httptest.NewRecorder()

				handler.ServeHTTP(rec, req)

				assert.True(t, nextCalled)
				assert.Equal(t, http.StatusOK, rec.Code)
			})
		}
	})
}

func TestActorFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, found := ActorFromContext(req.Context())

	assert.False(t, found)
}
