package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"farmops/internal/domain/ledger"
)

// PayrollRun is the write-once record of one employee paid in one period.
// (Period, EmployeeID) is the logical key; the persistence layer assigns its
// own physical id.
type PayrollRun struct {
	ID              string          `json:"id,omitempty"`
	Period          string          `json:"period"`
	EmployeeID      string          `json:"employeeId"`
	EmployeeName    string          `json:"employeeName"`
	BasePay         decimal.Decimal `json:"basePay"`
	TotalAllowances decimal.Decimal `json:"totalAllowances"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	OvertimeHours   decimal.Decimal `json:"overtimeHours"`
	OvertimePay     decimal.Decimal `json:"overtimePay"`
	NetPay          decimal.Decimal `json:"netPay"`
	Status          string          `json:"status"`
	ProcessedAt     time.Time       `json:"processedAt"`
}

// RunKey identifies a persisted run for the idempotency check.
type RunKey struct {
	EmployeeID string
	Period     string
}

// Totals aliases ledger.Totals, which owns the definition to avoid an import
// cycle between the payroll service and the ledger poster.
type Totals = ledger.Totals

type RunResult struct {
	Period  string       `json:"period"`
	NewRuns []PayrollRun `json:"newRuns"`
	Totals  Totals       `json:"totals"`
}

// NoOp reports that nothing was processed: either no active employees, or
// every active employee already had a run for the period. Callers must
// surface this distinctly from a successful run of N employees.
func (r RunResult) NoOp() bool {
	return len(r.NewRuns) == 0
}

type RegisterRow struct {
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName"`
	BasePay      decimal.Decimal `json:"basePay"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetPay       decimal.Decimal `json:"netPay"`
}

type PeriodSummary struct {
	Period          string          `json:"period"`
	EmployeeCount   int             `json:"employeeCount"`
	TotalBasePay    decimal.Decimal `json:"totalBasePay"`
	TotalAllowances decimal.Decimal `json:"totalAllowances"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	TotalNetPay     decimal.Decimal `json:"totalNetPay"`
}
