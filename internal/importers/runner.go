package importers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/moneyledger/money-ledger/internal/logger"
	"github.com/moneyledger/money-ledger/internal/models"
	"github.com/moneyledger/money-ledger/internal/repositories"
)

// AccountGetter defines the read methods the Runner needs.
type AccountGetter interface {
	GetByName(ctx context.Context, name string) (*models.AccountDB, error)
}

// AccountCreator defines the account write methods the Runner needs.
type AccountCreator interface {
	Save(ctx context.Context, name string) (*models.AccountDB, error)
}

// WalletCreator defines the wallet write methods the Runner needs.
type WalletCreator interface {
	Save(ctx context.Context, name string, accountID int64, currency models.Currency) (*models.WalletDB, error)
}

// TransactionCreator defines the transaction write methods the Runner needs.
type TransactionCreator interface {
	Save(ctx context.Context, typ models.Operation, date time.Time, description *string) (*models.TransactionDB, error)
}

// FlowCreator defines the flow write methods the Runner needs.
type FlowCreator interface {
	Save(ctx context.Context, walletID int64, amount decimal.Decimal, transactionID int64, state models.State) (*models.FlowDB, error)
}

// Runner executes an import: parse first, then write the whole batch inside
// one transaction. The repositories join that transaction through the
// context, so a failure at any point rolls back everything.
type Runner struct {
	db           *sqlx.DB
	accountRead  AccountGetter
	accountWrite AccountCreator
	walletWrite  WalletCreator
	txnWrite     TransactionCreator
	flowWrite    FlowCreator
}

func NewRunner(
	db *sqlx.DB,
	accountRead AccountGetter,
	accountWrite AccountCreator,
	walletWrite WalletCreator,
	txnWrite TransactionCreator,
	flowWrite FlowCreator,
) *Runner {
	return &Runner{
		db:           db,
		accountRead:  accountRead,
		accountWrite: accountWrite,
		walletWrite:  walletWrite,
		txnWrite:     txnWrite,
		flowWrite:    flowWrite,
	}
}

// Run imports the file at path using the given importer. Parsing happens
// fully in memory before the transaction starts, so malformed source data
// never touches the store.
func (r *Runner) Run(ctx context.Context, imp Importer, path string) (err error) {
	wallets, err := imp.Parse(path)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	ctx = repositories.WithTx(ctx, tx)

	account, err := r.resolveAccount(ctx, imp.AccountName())
	if err != nil {
		return err
	}

	// Map iteration order is random; sort the keys so inserts are deterministic.
	keys := make([]string, 0, len(wallets))
	for k := range wallets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flowCount := 0
	for _, key := range keys {
		wd := wallets[key]

		var wallet *models.WalletDB
		wallet, err = r.walletWrite.Save(ctx, wd.Name, account.ID, wd.Currency)
		if err != nil {
			return err
		}

		for _, fd := range wd.Flows {
			description := fd.Description

			var txn *models.TransactionDB
			txn, err = r.txnWrite.Save(ctx, fd.Type, fd.Date, &description)
			if err != nil {
				return err
			}

			if _, err = r.flowWrite.Save(ctx, wallet.ID, fd.Amount, txn.ID, fd.State); err != nil {
				return err
			}
			flowCount++
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}

	logger.Log.Infow("import committed",
		"account", account.Name,
		"wallets", len(wallets),
		"flows", flowCount,
	)
	return nil
}

// resolveAccount returns the existing account with the importer's name or
// creates it inside the batch transaction.
func (r *Runner) resolveAccount(ctx context.Context, name string) (*models.AccountDB, error) {
	account, err := r.accountRead.GetByName(ctx, name)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	return r.accountWrite.Save(ctx, name)
}
