package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Errors returned when a constraint violation raised by postgres is
// classified at the boundary of a write operation.
var (
	// ErrAccountNameTaken is returned when an account with the same name already exists.
	ErrAccountNameTaken = errors.New("account name already exists")
	// ErrWalletNameTaken is returned when the owning account already has a wallet with that name.
	ErrWalletNameTaken = errors.New("wallet name already exists for this account")
	// ErrAccountNotFound is returned when a wallet references a nonexistent account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrWalletNotFound is returned when a flow references a nonexistent wallet.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrTransactionNotFound is returned when a flow references a nonexistent transaction.
	ErrTransactionNotFound = errors.New("transaction not found")
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// classifyConstraint maps a postgres constraint violation onto one of the
// sentinel errors above, keyed by the violated constraint's name. Anything
// unrecognized passes through unchanged and surfaces as an internal error.
func classifyConstraint(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case "accounts_name_key":
			return ErrAccountNameTaken
		case "wallets_name_account_id_key":
			return ErrWalletNameTaken
		}
	case codeForeignKeyViolation:
		switch pgErr.ConstraintName {
		case "wallets_account_id_fkey":
			return ErrAccountNotFound
		case "flows_wallet_id_fkey":
			return ErrWalletNotFound
		case "flows_transaction_id_fkey":
			return ErrTransactionNotFound
		}
	}
	return err
}
