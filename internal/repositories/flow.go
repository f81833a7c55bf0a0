package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
)

// FlowWriteRepository handles flow write operations.
type FlowWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFlowWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FlowWriteRepository {
	return &FlowWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new flow and returns the persisted row. Missing references
// are classified as ErrWalletNotFound or ErrTransactionNotFound.
func (r *FlowWriteRepository) Save(ctx context.Context, walletID int64, amount decimal.Decimal, transactionID int64, state models.State) (*models.FlowDB, error) {
	const query = `
		INSERT INTO flows (wallet_id, amount, transaction_id, state)
		VALUES ($1, $2, $3, $4)
		RETURNING id, wallet_id, amount, transaction_id, state
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var flow models.FlowDB
	err := sqlx.GetContext(ctx, executor, &flow, query, walletID, amount, transactionID, state)

	logger.Log.Infow("insert flow",
		"query", squash(query),
		"args", []any{walletID, amount, transactionID, state},
		"error", err,
	)

	if err != nil {
		return nil, classifyConstraint(err)
	}
	return &flow, nil
}

// FlowReadRepository handles flow read operations.
type FlowReadRepository struct {
	db *sqlx.DB
}

func NewFlowReadRepository(db *sqlx.DB) *FlowReadRepository {
	return &FlowReadRepository{db: db}
}

// List returns flows in persisted order. Both filters are optional and
// combine with AND when given together.
func (r *FlowReadRepository) List(ctx context.Context, skip, limit int, walletID, transactionID *int64) ([]models.FlowDB, error) {
	const query = `
		SELECT id, wallet_id, amount, transaction_id, state
		FROM flows
		WHERE ($1::BIGINT IS NULL OR wallet_id = $1)
		  AND ($2::BIGINT IS NULL OR transaction_id = $2)
		ORDER BY id
		OFFSET $3 LIMIT $4
	`

	flows := []models.FlowDB{}
	err := r.db.SelectContext(ctx, &flows, query, walletID, transactionID, skip, limit)

	logger.Log.Infow("select flows",
		"query", squash(query),
		"args", []any{walletID, transactionID, skip, limit},
		"count", len(flows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return flows, nil
}
