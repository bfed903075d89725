package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/simonstancovich/banking-ledger/internal/models"
	"github.com/simonstancovich/banking-ledger/internal/service"
)

type listAccountsResponse struct {
	Accounts []*models.Account `json:"accounts"`
}

type listTransactionsResponse struct {
	Transactions []*models.Transaction `json:"transactions"`
}

type updateAccountRequest struct {
	Name *string             `json:"name"`
	Type *models.AccountType `json:"type"`
}

// ListAccounts handles GET /api/v1/accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	accounts, err := h.accountReader.ListAccounts(r.Context(), actor)
	if err != nil {
		h.respondServiceError(w, err, "list accounts")
		return
	}

	h.respondJSON(w, http.StatusOK, listAccountsResponse{Accounts: accounts})
}

// GetAccount handles GET /api/v1/accounts/{accountId}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	accountID, err := uuid.Parse(r.PathValue("accountId"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, service.ErrCodeAccountNotFound, "account not found")
		return
	}

	account, err := h.accountReader.GetAccount(r.Context(), actor, accountID)
	if err != nil {
		h.respondServiceError(w, err, "get account")
		return
	}

	h.respondJSON(w, http.StatusOK, account)
}

// ListAccountTransactions handles GET /api/v1/accounts/{accountId}/transactions
func (h *Handler) ListAccountTransactions(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	accountID, err := uuid.Parse(r.PathValue("accountId"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, service.ErrCodeAccountNotFound, "account not found")
		return
	}

	transactions, err := h.accountReader.ListTransactions(r.Context(), actor, accountID)
	if err != nil {
		h.respondServiceError(w, err, "list transactions")
		return
	}

	h.respondJSON(w, http.StatusOK, listTransactionsResponse{Transactions: transactions})
}

// UpdateAccount handles PATCH /api/v1/accounts/{accountId}. Omitted fields
// keep their current values.
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.requireActor(w, r)
	if !ok {
		return
	}

	accountID, err := uuid.Parse(r.PathValue("accountId"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, service.ErrCodeAccountNotFound, "account not found")
		return
	}

	var req updateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, "malformed request body")
		return
	}

	if req.Name == nil && req.Type == nil {
		h.respondError(w, http.StatusBadRequest, service.ErrCodeInvalidRequest, "no fields to update")
		return
	}

	current, err := h.accountReader.GetAccount(r.Context(), actor, accountID)
	if err != nil {
		h.respondServiceError(w, err, "update account")
		return
	}

	name := current.Name
	if req.Name != nil {
		name = *req.Name
	}
	accountType := current.Type
	if req.Type != nil {
		accountType = *req.Type
	}

	updated, err := h.accountUpdater.UpdateDetails(r.Context(), actor, accountID, name, accountType)
	if err != nil {
		h.respondServiceError(w, err, "update account")
		return
	}

	h.respondJSON(w, http.StatusOK, updated)
}
