// Package importers translates external statement exports into the ledger's
// data model. Each supported format registers an Importer; the Runner feeds
// the parsed result to the store as one atomic batch.
package importers

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyledger/money-ledger/internal/models"
)

// FlowData describes one monetary movement parsed from a source file. The
// Runner turns each descriptor into a Transaction plus Flow pair.
type FlowData struct {
	Type        models.Operation
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	State       models.State
}

// WalletData describes one wallet to create, with its flows in source order.
type WalletData struct {
	Name     string
	Currency models.Currency
	Flows    []FlowData
}

// Importer parses one source format fully in memory, before any persistence.
type Importer interface {
	// AccountName is the account every imported wallet is created under.
	AccountName() string
	// Parse reads the file at path and returns wallet descriptors keyed by
	// wallet name. Any malformed or unmapped value fails the whole parse.
	Parse(path string) (map[string]*WalletData, error)
}

var formats = map[string]Importer{
	"revolut": RevolutImporter{},
}

// Lookup returns the importer registered for the given format key.
func Lookup(format string) (Importer, error) {
	imp, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unknown import format %q, supported: %v", format, Formats())
	}
	return imp, nil
}

// Formats returns the registered format keys in sorted order.
func Formats() []string {
	keys := make([]string, 0, len(formats))
	for k := range formats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
