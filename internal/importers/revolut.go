package importers

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyledger/money-ledger/internal/models"
)

// revolutDateLayout matches the timestamps in Revolut CSV exports.
const revolutDateLayout = "2006-01-02 15:04:05"

// revolutTypeMap translates Revolut's transaction-type vocabulary onto the
// canonical operation codes. An export value missing here is a parse error.
var revolutTypeMap = map[string]models.Operation{
	"TOPUP":        models.OperationDEP,
	"CARD_PAYMENT": models.OperationPAY,
	"TRANSFER":     models.OperationTRN,
	"REFUND":       models.OperationREF,
	"EXCHANGE":     models.OperationTRN,
	"CARD_CREDIT":  models.OperationINC,
	"CARD_REFUND":  models.OperationREF,
	"FEE":          models.OperationPAY,
}

var revolutStateMap = map[string]models.State{
	"PENDING":   models.StatePDG,
	"COMPLETED": models.StateCPL,
	"REVERTED":  models.StateRVT,
}

// RevolutImporter parses the CSV statement export of a Revolut account.
// Wallets are keyed by product and currency together, so the same product
// held in two currencies becomes two wallets. A row carrying a non-zero fee
// produces an extra PAY flow of the negated fee amount with the same date and
// state as its parent row.
type RevolutImporter struct{}

func (RevolutImporter) AccountName() string { return "Revolut" }

func (RevolutImporter) Parse(path string) (map[string]*WalletData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[slug(h)] = i
	}
	for _, name := range []string{"type", "product", "started_date", "description", "amount", "fee", "currency", "state"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	wallets := map[string]*WalletData{}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		typ, ok := revolutTypeMap[record[col["type"]]]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown transaction type %q", line, record[col["type"]])
		}
		state, ok := revolutStateMap[record[col["state"]]]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown state %q", line, record[col["state"]])
		}
		currency, err := models.ParseCurrency(record[col["currency"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		date, err := time.Parse(revolutDateLayout, record[col["started_date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: started date: %w", line, err)
		}
		amount, err := decimal.NewFromString(record[col["amount"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: amount: %w", line, err)
		}
		fee := decimal.Zero
		if raw := record[col["fee"]]; raw != "" {
			if fee, err = decimal.NewFromString(raw); err != nil {
				return nil, fmt.Errorf("line %d: fee: %w", line, err)
			}
		}

		key := fmt.Sprintf("%s (%s)", record[col["product"]], currency)
		wallet, ok := wallets[key]
		if !ok {
			wallet = &WalletData{Name: key, Currency: currency}
			wallets[key] = wallet
		}

		wallet.Flows = append(wallet.Flows, FlowData{
			Type:        typ,
			Date:        date,
			Description: record[col["description"]],
			Amount:      amount,
			State:       state,
		})

		if !fee.IsZero() {
			wallet.Flows = append(wallet.Flows, FlowData{
				Type:        models.OperationPAY,
				Date:        date,
				Description: "Fee",
				Amount:      fee.Neg(),
				State:       state,
			})
		}
	}

	return wallets, nil
}

// slug normalizes a CSV header into a column key: lowercase with runs of
// non-alphanumerics collapsed to single underscores ("Started Date" becomes
// "started_date").
func slug(s string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimRight(b.String(), "_")
}
