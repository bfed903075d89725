package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/service"
)

type createWithdrawalRequest struct {
	Note        string    `json:"note"`
	AccountID   uuid.UUID `json:"account_id"`
	AmountCents int64     `json:"amount_cents"`
}

// CreateWithdrawal handles POST /api/v1/withdrawals
func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	key, ok := h.requireIdempotencyKey(w, r)
	if !ok {
		return
	}

	var req createWithdrawalRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, "malformed request body")
		return
	}

	result, status, err := h.withdrawalService.Withdraw(r.Context(), actor, key, service.WithdrawalParams{
		AccountID:   req.AccountID,
		AmountCents: req.AmountCents,
		Note:        req.Note,
	})
	if err != nil {
		h.respondServiceError(w, err, "withdrawal")
		return
	}

	h.respondIdempotent(w, status, result)
}
