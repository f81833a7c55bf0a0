package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
)

// WalletWriteRepository handles wallet write operations.
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new wallet and returns the persisted row. A duplicate
// (name, account_id) pair is classified as ErrWalletNameTaken and a missing
// account as ErrAccountNotFound. A freshly created wallet has no flows, so
// both derived balances are zero.
func (r *WalletWriteRepository) Save(ctx context.Context, name string, accountID int64, currency models.Currency) (*models.WalletDB, error) {
	const query = `
		INSERT INTO wallets (name, account_id, currency)
		VALUES ($1, $2, $3)
		RETURNING id, name, account_id, currency
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor, &wallet, query, name, accountID, currency)

	logger.Log.Infow("insert wallet",
		"query", squash(query),
		"args", []any{name, accountID, currency},
		"error", err,
	)

	if err != nil {
		return nil, classifyConstraint(err)
	}

	wallet.Balance = decimal.Zero
	wallet.PendingBalance = decimal.Zero
	return &wallet, nil
}

// WalletReadRepository handles wallet read operations.
type WalletReadRepository struct {
	db *sqlx.DB
}

func NewWalletReadRepository(db *sqlx.DB) *WalletReadRepository {
	return &WalletReadRepository{db: db}
}

// List returns wallets with their balances, optionally filtered by owning
// account. Balances are live aggregates over the wallet's flow set: balance
// sums completed flows, pending_balance sums everything not reverted, and a
// wallet with no flows reports zero for both.
func (r *WalletReadRepository) List(ctx context.Context, skip, limit int, accountID *int64) ([]models.WalletDB, error) {
	const query = `
		SELECT w.id, w.name, w.account_id, w.currency,
		       COALESCE(SUM(f.amount) FILTER (WHERE f.state = 'CPL'), 0) AS balance,
		       COALESCE(SUM(f.amount) FILTER (WHERE f.state <> 'RVT'), 0) AS pending_balance
		FROM wallets w
		LEFT JOIN flows f ON f.wallet_id = w.id
		WHERE ($1::BIGINT IS NULL OR w.account_id = $1)
		GROUP BY w.id
		ORDER BY w.id
		OFFSET $2 LIMIT $3
	`

	wallets := []models.WalletDB{}
	err := r.db.SelectContext(ctx, &wallets, query, accountID, skip, limit)

	logger.Log.Infow("select wallets",
		"query", squash(query),
		"args", []any{accountID, skip, limit},
		"count", len(wallets),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return wallets, nil
}
