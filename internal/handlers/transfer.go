package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/service"
)

type createTransferRequest struct {
	Note          string    `json:"note"`
	FromAccountID uuid.UUID `json:"from_account_id"`
	ToAccountID   uuid.UUID `json:"to_account_id"`
	AmountCents   int64     `json:"amount_cents"`
}

type getTransferResponse struct {
	TransferID   uuid.UUID             `json:"transfer_id"`
	Transactions []*models.Transaction `json:"transactions"`
}

// CreateTransfer handles POST /api/v1/transfers
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	key, ok := h.requireIdempotencyKey(w, r)
	if !ok {
		return
	}

	var req createTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, "malformed request body")
		return
	}

	result, status, err := h.transferService.Transfer(r.Context(), actor, key, service.TransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		AmountCents:   req.AmountCents,
		Note:          req.Note,
	})
	if err != nil {
		h.respondServiceError(w, err, "transfer")
		return
	}

	h.respondIdempotent(w, status, result)
}

// GetTransfer handles GET /api/v1/transfers/{transferId}
func (h *Handler) GetTransfer(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	transferID, err := uuid.Parse(r.PathValue("transferId"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, service.ErrCodeTransferNotFound, "transfer not found")
		return
	}

	legs, err := h.transferService.GetTransfer(r.Context(), actor, transferID)
	if err != nil {
		h.respondServiceError(w, err, "get transfer")
		return
	}

	h.respondJSON(w, http.StatusOK, getTransferResponse{
		TransferID:   transferID,
		Transactions: legs,
	})
}
