package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/service"
)

type createDepositRequest struct {
	Note        string    `json:"note"`
	AccountID   uuid.UUID `json:"account_id"`
	AmountCents int64     `json:"amount_cents"`
}

// CreateDeposit handles POST /api/v1/deposits
func (h *Handler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	key, ok := h.requireIdempotencyKey(w, r)
	if !ok {
		return
	}

	var req createDepositRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, "malformed request body")
		return
	}

	result, status, err := h.depositService.Deposit(r.Context(), actor, key, service.DepositParams{
		AccountID:   req.AccountID,
		AmountCents: req.AmountCents,
		Note:        req.Note,
	})
	if err != nil {
		h.respondServiceError(w, err, "deposit")
		return
	}

	h.respondIdempotent(w, status, result)
}
