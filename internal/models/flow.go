package models

import "github.com/shopspring/decimal"

// FlowDB represents a flow row in the database: one signed monetary movement
// against exactly one wallet, belonging to exactly one transaction. Positive
// amounts credit the wallet, negative amounts debit it.
type FlowDB struct {
	ID            int64           `json:"id" db:"id"`                         // Unique flow identifier
	WalletID      int64           `json:"wallet_id" db:"wallet_id"`           // Wallet the movement applies to
	Amount        decimal.Decimal `json:"amount" db:"amount"`                 // Signed amount, NUMERIC(20,2)
	TransactionID int64           `json:"transaction_id" db:"transaction_id"` // Transaction the flow belongs to
	State         State           `json:"state" db:"state"`                   // Lifecycle state (CPL, PDG, RVT)
}
