package payroll

import (
	"fmt"
	"time"

	"farmops/internal/domain/hr"
)

// RunPayroll computes the payroll breakdown for every active, not-yet-processed
// employee in the roster. It is pure computation over already-fetched inputs:
// no storage access, no side effects. Re-invoking it with the previous call's
// output folded into existing yields an empty result.
func RunPayroll(period string, roster []hr.Employee, existing []RunKey, now time.Time) (RunResult, error) {
	if err := ValidatePeriod(period); err != nil {
		return RunResult{}, err
	}

	processed := make(map[string]struct{}, len(existing))
	for _, key := range existing {
		if key.Period == period {
			processed[key.EmployeeID] = struct{}{}
		}
	}

	result := RunResult{Period: period}
	for _, emp := range roster {
		if emp.Status != hr.EmployeeStatusActive {
			continue
		}
		if _, done := processed[emp.ID]; done {
			continue
		}
		if err := emp.ValidateCompensation(); err != nil {
			return RunResult{}, fmt.Errorf("employee %s: %w", emp.ID, err)
		}

		allowances := emp.Allowances.Total()
		deductions := emp.Deductions.Total()
		run := PayrollRun{
			Period:          period,
			EmployeeID:      emp.ID,
			EmployeeName:    emp.FullName,
			BasePay:         emp.BaseSalary,
			TotalAllowances: allowances,
			TotalDeductions: deductions,
			NetPay:          NetPay(emp),
			Status:          RunStatusPaid,
			ProcessedAt:     now,
		}
		result.NewRuns = append(result.NewRuns, run)

		result.Totals.NetPay = result.Totals.NetPay.Add(run.NetPay)
		result.Totals.Tax = result.Totals.Tax.Add(emp.Deductions.Tax)
		result.Totals.Pension = result.Totals.Pension.Add(emp.Deductions.Pension)

		// Guard against a roster that lists the same employee twice.
		processed[emp.ID] = struct{}{}
	}

	return result, nil
}

// ValidatePeriod checks the canonical YYYY-MM form. Beyond this boundary the
// period is treated as an opaque key.
func ValidatePeriod(period string) error {
	if _, err := time.Parse(PeriodFormat, period); err != nil {
		return ErrInvalidPeriod
	}
	return nil
}
