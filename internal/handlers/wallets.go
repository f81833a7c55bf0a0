package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
	"github.com/moneyledger/money-ledger/internal/repositories"
)

// WalletCreator defines the interface that the repository must implement.
type WalletCreator interface {
	Save(ctx context.Context, name string, accountID int64, currency models.Currency) (*models.WalletDB, error)
}

// WalletLister defines the interface that the repository must implement.
type WalletLister interface {
	List(ctx context.Context, skip, limit int, accountID *int64) ([]models.WalletDB, error)
}

// CreateWalletRequest represents the JSON body for wallet creation
// swagger:model CreateWalletRequest
type CreateWalletRequest struct {
	// Wallet name, unique within the owning account
	// required: true
	// example: Current (EUR)
	Name string `json:"name"`

	// Owning account identifier
	// required: true
	// example: 1
	AccountID int64 `json:"account_id"`

	// Currency code
	// required: true
	// example: EUR
	Currency string `json:"currency"`
}

// NewCreateWalletHandler returns an HTTP handler for creating a wallet.
// The request owns the currency choice: it is required here even though the
// storage layer carries an EUR column default for other writers.
// @Summary Create a wallet
// @Description Creates a currency-denominated wallet under an existing account.
// @Tags wallets
// @Accept json
// @Produce json
// @Param request body handlers.CreateWalletRequest true "Wallet to create"
// @Success 201 {object} models.WalletDB "Persisted wallet with zero balances"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure 404 {object} handlers.ErrorResponse "Account not found"
// @Failure 409 {object} handlers.ErrorResponse "Wallet name already exists for this account"
// @Router /wallets [post]
func NewCreateWalletHandler(svc WalletCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateWalletRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", "")
			return
		}

		if req.Name == "" || utf8.RuneCountInString(req.Name) > maxNameLen {
			writeError(w, http.StatusBadRequest, "name must be between 1 and 50 characters", "name")
			return
		}
		if req.AccountID <= 0 {
			writeError(w, http.StatusBadRequest, "account_id is required", "account_id")
			return
		}
		currency, err := models.ParseCurrency(req.Currency)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "currency")
			return
		}

		wallet, err := svc.Save(r.Context(), req.Name, req.AccountID, currency)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrWalletNameTaken):
				writeError(w, http.StatusConflict, "wallet name already exists for this account", "")
			case errors.Is(err, repositories.ErrAccountNotFound):
				writeError(w, http.StatusNotFound, "account not found", "")
			default:
				logger.Log.Errorw("failed to create wallet", "name", req.Name, "accountID", req.AccountID, "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error", "")
			}
			return
		}

		writeJSON(w, http.StatusCreated, wallet)
	}
}

// NewListWalletsHandler returns an HTTP handler for listing wallets with
// their derived balances.
// @Summary List wallets
// @Description Returns wallets with balance and pending_balance, optionally filtered by account.
// @Tags wallets
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Maximum count" default(100)
// @Param account_id query int false "Owning account filter"
// @Success 200 {array} models.WalletDB "Wallets"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameter"
// @Router /wallets [get]
func NewListWalletsHandler(svc WalletLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		accountID, err := parseOptionalID(r, "account_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "account_id")
			return
		}

		wallets, err := svc.List(r.Context(), skip, limit, accountID)
		if err != nil {
			logger.Log.Errorw("failed to list wallets", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error", "")
			return
		}

		writeJSON(w, http.StatusOK, wallets)
	}
}
