package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
)

// TransactionCreator defines the interface that the repository must implement.
type TransactionCreator interface {
	Save(ctx context.Context, typ models.Operation, date time.Time, description *string) (*models.TransactionDB, error)
}

// TransactionLister defines the interface that the repository must implement.
type TransactionLister interface {
	List(ctx context.Context, skip, limit int, walletID *int64) ([]models.TransactionDB, error)
}

// CreateTransactionRequest represents the JSON body for transaction creation
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Operation code
	// required: true
	// example: PAY
	Type string `json:"type"`

	// When the event occurred, RFC 3339
	// required: true
	// example: 2024-05-01T12:00:00Z
	Date time.Time `json:"date"`

	// Optional free text
	// example: Groceries
	Description *string `json:"description,omitempty"`
}

// NewCreateTransactionHandler returns an HTTP handler for creating a transaction.
// @Summary Create a transaction
// @Description Creates a logical financial event. The money it moves is recorded separately as flows.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Transaction to create"
// @Success 201 {object} models.TransactionDB "Persisted transaction"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", "")
			return
		}

		typ, err := models.ParseOperation(req.Type)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "type")
			return
		}
		if req.Date.IsZero() {
			writeError(w, http.StatusBadRequest, "date is required", "date")
			return
		}

		transaction, err := svc.Save(r.Context(), typ, req.Date, req.Description)
		if err != nil {
			logger.Log.Errorw("failed to create transaction", "type", typ, "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error", "")
			return
		}

		writeJSON(w, http.StatusCreated, transaction)
	}
}

// NewListTransactionsHandler returns an HTTP handler for listing transactions.
// @Summary List transactions
// @Description Returns transactions in persisted order. The wallet_id filter matches transactions having at least one flow on that wallet.
// @Tags transactions
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Maximum count" default(100)
// @Param wallet_id query int false "Wallet filter, joined through flows"
// @Success 200 {array} models.TransactionDB "Transactions"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameter"
// @Router /transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skip, limit, err := parsePagination(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		walletID, err := parseOptionalID(r, "wallet_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "wallet_id")
			return
		}

		transactions, err := svc.List(r.Context(), skip, limit, walletID)
		if err != nil {
			logger.Log.Errorw("failed to list transactions", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error", "")
			return
		}

		writeJSON(w, http.StatusOK, transactions)
	}
}
