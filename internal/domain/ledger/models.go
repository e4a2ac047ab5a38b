package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeExpense = "EXPENSE"

	CategoryLabor = "LABOR"
	CategoryOther = "OTHER"

	StatusCompleted = "COMPLETED"
	StatusPending   = "PENDING"
)

// Transaction is an append-only ledger row. Rows are created as the output of
// a payroll run and never mutated.
type Transaction struct {
	ID          string          `json:"id,omitempty"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
}
