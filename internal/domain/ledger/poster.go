package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Totals is the aggregate payroll outcome for a period; payroll.Totals is an
// alias of this type so the poster can stay import-cycle free.
type Totals struct {
	NetPay  decimal.Decimal `json:"netPay"`
	Tax     decimal.Decimal `json:"tax"`
	Pension decimal.Decimal `json:"pension"`
}

// PostPayrollLedger derives the ledger effects of one payroll run: the net-pay
// cash outflow plus the tax and pension liabilities. A zero total produces no
// transaction. Descriptions embed the period so downstream reporting can group
// without a foreign key.
func PostPayrollLedger(period string, totals Totals, now time.Time) []Transaction {
	var out []Transaction

	if totals.NetPay.IsPositive() {
		out = append(out, Transaction{
			Date:        now,
			Description: fmt.Sprintf("Payroll net pay for period %s", period),
			Amount:      totals.NetPay,
			Type:        TypeExpense,
			Category:    CategoryLabor,
			Status:      StatusCompleted,
		})
	}
	if totals.Tax.IsPositive() {
		out = append(out, Transaction{
			Date:        now,
			Description: fmt.Sprintf("Payroll tax liability for period %s", period),
			Amount:      totals.Tax,
			Type:        TypeExpense,
			Category:    CategoryOther,
			Status:      StatusPending,
		})
	}
	if totals.Pension.IsPositive() {
		out = append(out, Transaction{
			Date:        now,
			Description: fmt.Sprintf("Payroll pension liability for period %s", period),
			Amount:      totals.Pension,
			Type:        TypeExpense,
			Category:    CategoryOther,
			Status:      StatusPending,
		})
	}
	return out
}
