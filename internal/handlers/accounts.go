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

// AccountCreator defines the interface that the repository must implement.
type AccountCreator interface {
	Save(ctx context.Context, name string) (*models.AccountDB, error)
}

// AccountLister defines the interface that the repository must implement.
type AccountLister interface {
	List(ctx context.Context, skip, limit int) ([]models.AccountDB, error)
}

// CreateAccountRequest represents the JSON body for account creation
// swagger:model CreateAccountRequest
type CreateAccountRequest struct {
	// Account name, unique across all accounts
	// required: true
	// example: Revolut
	Name string `json:"name"`
}

// NewCreateAccountHandler returns an HTTP handler for creating an account.
// @Summary Create an account
// @Description Creates a named owner of wallets. Account names are unique across the ledger.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body handlers.CreateAccountRequest true "Account to create"
// @Success 201 {object} models.AccountDB "Persisted account"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure 409 {object} handlers.ErrorResponse "Account name already exists"
// @Router /accounts [post]
func NewCreateAccountHandler(svc AccountCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", "")
			return
		}

		if req.Name == "" || utf8.RuneCountInString(req.Name) > maxNameLen {
			writeError(w, http.StatusBadRequest, "name must be between 1 and 50 characters", "name")
			return
		}

		account, err := svc.Save(r.Context(), req.Name)
		if err != nil {
			if errors.Is(err, repositories.ErrAccountNameTaken) {
				writeError(w, http.StatusConflict, "account name already exists", "")
				return
			}
			logger.Log.Errorw("failed to create account", "name", req.Name, "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error", "")
			return
		}

		writeJSON(w, http.StatusCreated, account)
	}
}

// NewListAccountsHandler returns an HTTP handler for listing accounts.
// @Summary List accounts
// @Description Returns accounts in persisted order, paginated by skip and limit.
// @Tags accounts
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Maximum count" default(100)
// @Success 200 {array} models.AccountDB "Accounts"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Router /accounts [get]
func NewListAccountsHandler(svc AccountLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}

		accounts, err := svc.List(r.Context(), skip, limit)
		if err != nil {
			logger.Log.Errorw("failed to list accounts", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error", "")
			return
		}

		writeJSON(w, http.StatusOK, accounts)
	}
}
