package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
)

// TransactionWriteRepository handles transaction write operations.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new transaction and returns the persisted row.
func (r *TransactionWriteRepository) Save(ctx context.Context, typ models.Operation, date time.Time, description *string) (*models.TransactionDB, error) {
	const query = `
		INSERT INTO transactions (type, date, description)
		VALUES ($1, $2, $3)
		RETURNING id, type, date, description
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var transaction models.TransactionDB
	err := sqlx.GetContext(ctx, executor, &transaction, query, typ, date, description)

	logger.Log.Infow("insert transaction",
		"query", squash(query),
		"args", []any{typ, date, description},
		"error", err,
	)

	if err != nil {
		return nil, classifyConstraint(err)
	}
	return &transaction, nil
}

// TransactionReadRepository handles transaction read operations.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// List returns transactions in persisted order, optionally restricted to the
// ones that moved money through the given wallet. A transaction carries no
// wallet column of its own, so the filter goes through its flows.
func (r *TransactionReadRepository) List(ctx context.Context, skip, limit int, walletID *int64) ([]models.TransactionDB, error) {
	const query = `
		SELECT t.id, t.type, t.date, t.description
		FROM transactions t
		WHERE ($1::BIGINT IS NULL OR EXISTS (
			SELECT 1 FROM flows f
			WHERE f.transaction_id = t.id AND f.wallet_id = $1
		))
		ORDER BY t.id
		OFFSET $2 LIMIT $3
	`

	transactions := []models.TransactionDB{}
	err := r.db.SelectContext(ctx, &transactions, query, walletID, skip, limit)

	logger.Log.Infow("select transactions",
		"query", squash(query),
		"args", []any{walletID, skip, limit},
		"count", len(transactions),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return transactions, nil
}
