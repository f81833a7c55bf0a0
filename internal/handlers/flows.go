package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
	"github.com/moneyledger/money-ledger/internal/repositories"
)

// FlowCreator defines the interface that the service must implement.
type FlowCreator interface {
	Create(ctx context.Context, walletID int64, amount decimal.Decimal, transactionID int64, state models.State) (*models.FlowDB, error)
}

// FlowLister defines the interface that the repository must implement.
type FlowLister interface {
	List(ctx context.Context, skip, limit int, walletID, transactionID *int64) ([]models.FlowDB, error)
}

// CreateFlowRequest represents the JSON body for flow creation
// swagger:model CreateFlowRequest
type CreateFlowRequest struct {
	// Wallet the movement applies to
	// required: true
	// example: 1
	WalletID int64 `json:"wallet_id"`

	// Signed amount with at most 2 decimal places; positive credits the wallet
	// required: true
	// example: -42.50
	Amount *decimal.Decimal `json:"amount"`

	// Transaction the flow belongs to
	// required: true
	// example: 1
	TransactionID int64 `json:"transaction_id"`

	// Lifecycle state, defaults to CPL
	// example: PDG
	State string `json:"state,omitempty"`
}

// NewCreateFlowHandler returns an HTTP handler for creating a flow.
// @Summary Create a flow
// @Description Records a signed monetary movement against a wallet, tied to a transaction.
// @Tags flows
// @Accept json
// @Produce json
// @Param request body handlers.CreateFlowRequest true "Flow to create"
// @Success 201 {object} models.FlowDB "Persisted flow"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure 404 {object} handlers.ErrorResponse "Wallet or transaction not found"
// @Router /flows [post]
func NewCreateFlowHandler(svc FlowCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateFlowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body", "")
			return
		}

		if req.WalletID <= 0 {
			writeError(w, http.StatusBadRequest, "wallet_id is required", "wallet_id")
			return
		}
		if req.TransactionID <= 0 {
			writeError(w, http.StatusBadRequest, "transaction_id is required", "transaction_id")
			return
		}
		if req.Amount == nil {
			writeError(w, http.StatusBadRequest, "amount is required", "amount")
			return
		}
		amount := *req.Amount
		if amount.Exponent() < -2 {
			writeError(w, http.StatusBadRequest, "amount must have at most 2 decimal places", "amount")
			return
		}
		// NUMERIC(20, 2) leaves 18 digits before the decimal point.
		if amount.Truncate(0).NumDigits() > 18 {
			writeError(w, http.StatusBadRequest, "amount must have at most 18 digits before the decimal point", "amount")
			return
		}

		state := models.StateCPL
		if req.State != "" {
			var err error
			state, err = models.ParseState(req.State)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error(), "state")
				return
			}
		}

		flow, err := svc.Create(r.Context(), req.WalletID, amount, req.TransactionID, state)
		if err != nil {
			switch {
			case errors.Is(err, repositories.ErrWalletNotFound):
				writeError(w, http.StatusNotFound, "wallet not found", "")
			case errors.Is(err, repositories.ErrTransactionNotFound):
				writeError(w, http.StatusNotFound, "transaction not found", "")
			default:
				logger.Log.Errorw("failed to create flow", "walletID", req.WalletID, "transactionID", req.TransactionID, "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error", "")
			}
			return
		}

		writeJSON(w, http.StatusCreated, flow)
	}
}

// NewListFlowsHandler returns an HTTP handler for listing flows.
// @Summary List flows
// @Description Returns flows in persisted order. wallet_id and transaction_id filters combine with AND.
// @Tags flows
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Maximum count" default(100)
// @Param wallet_id query int false "Wallet filter"
// @Param transaction_id query int false "Transaction filter"
// @Success 200 {array} models.FlowDB "Flows"
// @Failure 400 {object} handlers.ErrorResponse "Invalid query parameter"
// @Router /flows [get]
func NewListFlowsHandler(svc FlowLister) http.HandlerFunc {
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
		transactionID, err := parseOptionalID(r, "transaction_id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error(), "transaction_id")
			return
		}

		flows, err := svc.List(r.Context(), skip, limit, walletID, transactionID)
		if err != nil {
			logger.Log.Errorw("failed to list flows", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error", "")
			return
		}

		writeJSON(w, http.StatusOK, flows)
	}
}
