package models

import "fmt"

// Operation classifies what kind of financial event a transaction records.
type Operation string

const (
	OperationDEP Operation = "DEP" // deposit into the ledger
	OperationWDR Operation = "WDR" // withdrawal out of the ledger
	OperationTRN Operation = "TRN" // transfer between wallets
	OperationINC Operation = "INC" // income
	OperationPAY Operation = "PAY" // payment
	OperationREF Operation = "REF" // refund
	OperationBAL Operation = "BAL" // balance adjustment
	OperationOTH Operation = "OTH" // anything else
)

// Valid reports whether the operation is one of the known codes.
func (o Operation) Valid() bool {
	switch o {
	case OperationDEP, OperationWDR, OperationTRN, OperationINC,
		OperationPAY, OperationREF, OperationBAL, OperationOTH:
		return true
	}
	return false
}

// ParseOperation validates a raw operation code. Codes are case sensitive.
func ParseOperation(s string) (Operation, error) {
	o := Operation(s)
	if !o.Valid() {
		return "", fmt.Errorf("unknown operation: %q", s)
	}
	return o, nil
}
