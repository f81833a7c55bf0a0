package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
)

// AccountWriteRepository handles account write operations.
type AccountWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountWriteRepository {
	return &AccountWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new account and returns the persisted row. A duplicate name
// is classified as ErrAccountNameTaken.
func (r *AccountWriteRepository) Save(ctx context.Context, name string) (*models.AccountDB, error) {
	const query = `
		INSERT INTO accounts (name)
		VALUES ($1)
		RETURNING id, name
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor, &account, query, name)

	logger.Log.Infow("insert account",
		"query", squash(query),
		"args", []any{name},
		"error", err,
	)

	if err != nil {
		return nil, classifyConstraint(err)
	}
	return &account, nil
}

// AccountReadRepository handles account read operations.
type AccountReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAccountReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AccountReadRepository {
	return &AccountReadRepository{db: db, txGetter: txGetter}
}

// List returns accounts in persisted order, paginated by offset and limit.
func (r *AccountReadRepository) List(ctx context.Context, skip, limit int) ([]models.AccountDB, error) {
	const query = `
		SELECT id, name
		FROM accounts
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	accounts := []models.AccountDB{}
	err := r.db.SelectContext(ctx, &accounts, query, skip, limit)

	logger.Log.Infow("select accounts",
		"query", squash(query),
		"args", []any{skip, limit},
		"count", len(accounts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetByName returns the account with the given name, or sql.ErrNoRows when it
// does not exist. Joins an enclosing transaction when one is in the context,
// so an import run's resolve-or-create sees its own writes.
func (r *AccountReadRepository) GetByName(ctx context.Context, name string) (*models.AccountDB, error) {
	const query = `
		SELECT id, name
		FROM accounts
		WHERE name = $1
		LIMIT 1
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var account models.AccountDB
	err := sqlx.GetContext(ctx, executor, &account, query, name)

	logger.Log.Infow("select account by name",
		"query", squash(query),
		"args", []any{name},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &account, nil
}
