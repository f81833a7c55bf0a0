package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// WithTx stores a transaction in the context. Write repositories constructed
// with TxFromContext as their txGetter will execute against it instead of the
// pooled connection, so a batch (e.g. an import run) commits atomically.
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// squash collapses a multi-line SQL string into one line for logging.
func squash(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
