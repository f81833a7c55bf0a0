package models

import "time"

// TransactionDB represents a transaction row in the database. A transaction is
// a logical financial event; the money it moves is recorded as flows.
type TransactionDB struct {
	ID          int64     `json:"id" db:"id"`                              // Unique transaction identifier
	Type        Operation `json:"type" db:"type"`                          // Operation code (DEP, WDR, ...)
	Date        time.Time `json:"date" db:"date"`                          // When the event occurred
	Description *string   `json:"description,omitempty" db:"description"`  // Optional free text
}
