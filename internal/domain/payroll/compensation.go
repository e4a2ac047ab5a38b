package payroll

import (
	"github.com/shopspring/decimal"

	"farmops/internal/domain/hr"
)

// NetPay computes (base salary + allowances) - deductions for one employee.
// Pure; callers validate compensation before trusting the result.
func NetPay(emp hr.Employee) decimal.Decimal {
	return emp.BaseSalary.Add(emp.Allowances.Total()).Sub(emp.Deductions.Total())
}
