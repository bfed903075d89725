package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/simonstancovich/banking-ledger/internal/middleware"
	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/service"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close() //nolint:errcheck // Nothing useful to do if close fails
	return json.NewDecoder(r.Body).Decode(dst)
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, code, message string) {
	h.respondJSON(w, status, errorResponse{Error: code, Message: message})
}

// respondIdempotent writes a movement result. A fresh execution returns 201;
// a replay returns 200 with the replay marker header set.
func (h *Handler) respondIdempotent(w http.ResponseWriter, status models.IdempotencyStatus, payload any) {
	code := http.StatusCreated
	if status == models.IdempotencyStatusReplayed {
		w.Header().Set(replayedHeader, "true")
		code = http.StatusOK
	}
	h.respondJSON(w, code, payload)
}

// respondServiceError maps a service error to its HTTP status. Internal
// errors and errors carrying no service code are logged with their detail and
// reported to the client with a generic message.
func (h *Handler) respondServiceError(w http.ResponseWriter, err error, operation string) {
	svcErr := extractServiceError(err)
	if svcErr == nil || svcErr.Code == service.ErrCodeInternalError {
		h.logger.Error("operation failed", "operation", operation, "error", err)
		h.respondError(w, http.StatusInternalServerError, service.ErrCodeInternalError, "internal error")
		return
	}

	h.respondError(w, statusForErrorCode(svcErr.Code), svcErr.Code, svcErr.Message)
}

func statusForErrorCode(code string) int {
	switch code {
	case service.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case service.ErrCodeAccountNotFound, service.ErrCodeTransferNotFound:
		return http.StatusNotFound
	case service.ErrCodeInsufficientBalance:
		return http.StatusPaymentRequired
	case service.ErrCodeOperationInProgress, service.ErrCodeDuplicateAccountName:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// requireActor resolves the calling actor placed in the context by the
// middleware. The middleware rejects unauthenticated requests first, so a
// miss here means the route was wired outside the middleware chain.
func (h *Handler) requireActor(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		h.logger.Error("request reached handler without actor context", "path", r.URL.Path)
		h.respondError(w, http.StatusUnauthorized, "unauthorized", "missing actor identity")
		return models.Actor{}, false
	}
	return actor, true
}

// requireIdempotencyKey extracts the mandatory Idempotency-Key header for
// money movement endpoints.
func (h *Handler) requireIdempotencyKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.Header.Get(idempotencyKeyHeader)
	if key == "" {
		h.respondError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, "missing Idempotency-Key header")
		return "", false
	}
	return key, true
}
