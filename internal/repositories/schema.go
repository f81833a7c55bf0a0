package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Constraints are named explicitly because classifyConstraint keys off them.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		CONSTRAINT accounts_name_key UNIQUE (name)
	);`,
	`CREATE TABLE IF NOT EXISTS wallets (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(50) NOT NULL,
		account_id BIGINT NOT NULL,
		currency CHAR(3) NOT NULL DEFAULT 'EUR',
		CONSTRAINT wallets_account_id_fkey FOREIGN KEY (account_id) REFERENCES accounts (id),
		CONSTRAINT wallets_name_account_id_key UNIQUE (name, account_id)
	);`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		type CHAR(3) NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		description TEXT
	);`,
	`CREATE TABLE IF NOT EXISTS flows (
		id BIGSERIAL PRIMARY KEY,
		wallet_id BIGINT NOT NULL,
		amount NUMERIC(20, 2) NOT NULL,
		transaction_id BIGINT NOT NULL,
		state CHAR(3) NOT NULL DEFAULT 'CPL',
		CONSTRAINT flows_wallet_id_fkey FOREIGN KEY (wallet_id) REFERENCES wallets (id),
		CONSTRAINT flows_transaction_id_fkey FOREIGN KEY (transaction_id) REFERENCES transactions (id)
	);`,
}

// CreateSchema creates the ledger tables if they do not exist yet. Both the
// API server and the importer CLI run it before touching the store.
func CreateSchema(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
