package hr

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EmployeeStatusActive     = "ACTIVE"
	EmployeeStatusSuspended  = "SUSPENDED"
	EmployeeStatusTerminated = "TERMINATED"

	StructureMonthly = "MONTHLY"
	StructureDaily   = "DAILY"
)

// Allowances is the closed set of allowance fields. New allowance kinds are a
// schema change, not a map key, so nothing unvalidated can enter the pay sum.
type Allowances struct {
	Housing   decimal.Decimal `json:"housing"`
	Transport decimal.Decimal `json:"transport"`
	Risk      decimal.Decimal `json:"risk"`
	Other     decimal.Decimal `json:"other"`
}

func (a Allowances) Total() decimal.Decimal {
	return a.Housing.Add(a.Transport).Add(a.Risk).Add(a.Other)
}

// Deductions is the closed set of deduction fields.
type Deductions struct {
	Pension         decimal.Decimal `json:"pension"`
	Tax             decimal.Decimal `json:"tax"`
	HealthInsurance decimal.Decimal `json:"healthInsurance"`
}

func (d Deductions) Total() decimal.Decimal {
	return d.Pension.Add(d.Tax).Add(d.HealthInsurance)
}

type Employee struct {
	ID         string          `json:"id"`
	FullName   string          `json:"fullName"`
	Status     string          `json:"status"`
	Structure  string          `json:"structure"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Allowances Allowances      `json:"allowances"`
	Deductions Deductions      `json:"deductions"`
	Department string          `json:"department,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// ValidateCompensation rejects negative monetary fields. Missing fields decode
// to decimal zero and are fine.
func (e Employee) ValidateCompensation() error {
	amounts := []decimal.Decimal{
		e.BaseSalary,
		e.Allowances.Housing, e.Allowances.Transport, e.Allowances.Risk, e.Allowances.Other,
		e.Deductions.Pension, e.Deductions.Tax, e.Deductions.HealthInsurance,
	}
	for _, amount := range amounts {
		if amount.IsNegative() {
			return ErrNegativeAmount
		}
	}
	return nil
}

func ValidStatus(status string) bool {
	switch status {
	case EmployeeStatusActive, EmployeeStatusSuspended, EmployeeStatusTerminated:
		return true
	}
	return false
}

func ValidStructure(structure string) bool {
	return structure == StructureMonthly || structure == StructureDaily
}
