package models

import "fmt"

// Currency is an ISO 4217 currency code supported by the ledger.
type Currency string

const (
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// Valid reports whether the currency is one of the supported codes.
func (c Currency) Valid() bool {
	switch c {
	case EUR, USD, GBP:
		return true
	}
	return false
}

// ParseCurrency validates a raw currency code. Codes are case sensitive.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(s)
	if !c.Valid() {
		return "", fmt.Errorf("unsupported currency: %q", s)
	}
	return c, nil
}
