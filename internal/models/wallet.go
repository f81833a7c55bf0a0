package models

import "github.com/shopspring/decimal"

// WalletDB represents a wallet row together with its derived balances.
//
// Balance and PendingBalance are never stored: they are aggregated from the
// wallet's flows on every read. Balance sums completed flows only;
// PendingBalance sums everything that has not been reverted.
type WalletDB struct {
	ID             int64           `json:"id" db:"id"`                           // Unique wallet identifier
	Name           string          `json:"name" db:"name"`                       // Wallet name, unique per account
	AccountID      int64           `json:"account_id" db:"account_id"`           // Identifier of the owning account
	Currency       Currency        `json:"currency" db:"currency"`               // Currency code (EUR, USD, GBP)
	Balance        decimal.Decimal `json:"balance" db:"balance"`                 // Sum of CPL flow amounts
	PendingBalance decimal.Decimal `json:"pending_balance" db:"pending_balance"` // Sum of non-RVT flow amounts
}
