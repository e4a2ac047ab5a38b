package payroll

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"farmops/internal/domain/hr"
)

var runStamp = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func sampleRoster() []hr.Employee {
	return []hr.Employee{
		{
			ID:         "E1",
			FullName:   "Amina Yusuf",
			Status:     hr.EmployeeStatusActive,
			Structure:  hr.StructureMonthly,
			BaseSalary: decimal.NewFromInt(1000),
			Allowances: hr.Allowances{
				Housing:   decimal.NewFromInt(100),
				Transport: decimal.NewFromInt(50),
			},
			Deductions: hr.Deductions{
				Tax:     decimal.NewFromInt(80),
				Pension: decimal.NewFromInt(40),
			},
		},
	}
}

func TestRunPayrollSingleEmployee(t *testing.T) {
	result, err := RunPayroll("2024-03", sampleRoster(), nil, runStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.NewRuns) != 1 {
		t.Fatalf("expected 1 run, got %d", len(result.NewRuns))
	}
	run := result.NewRuns[0]
	if run.EmployeeID != "E1" || run.Period != "2024-03" {
		t.Fatalf("unexpected run key: %s/%s", run.EmployeeID, run.Period)
	}
	if !run.NetPay.Equal(decimal.NewFromInt(1030)) {
		t.Fatalf("expected net 1030, got %s", run.NetPay)
	}
	if run.Status != RunStatusPaid {
		t.Fatalf("expected status %s, got %s", RunStatusPaid, run.Status)
	}
	if !run.OvertimeHours.IsZero() || !run.OvertimePay.IsZero() {
		t.Fatal("overtime fields must be zero")
	}
	if !run.NetPay.Equal(run.BasePay.Add(run.TotalAllowances).Sub(run.TotalDeductions)) {
		t.Fatal("net pay identity violated")
	}

	if !result.Totals.NetPay.Equal(decimal.NewFromInt(1030)) {
		t.Fatalf("expected total net 1030, got %s", result.Totals.NetPay)
	}
	if !result.Totals.Tax.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected total tax 80, got %s", result.Totals.Tax)
	}
	if !result.Totals.Pension.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected total pension 40, got %s", result.Totals.Pension)
	}
}

func TestRunPayrollIdempotent(t *testing.T) {
	roster := sampleRoster()
	first, err := RunPayroll("2024-03", roster, nil, runStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	existing := make([]RunKey, 0, len(first.NewRuns))
	for _, run := range first.NewRuns {
		existing = append(existing, RunKey{EmployeeID: run.EmployeeID, Period: run.Period})
	}

	second, err := RunPayroll("2024-03", roster, existing, runStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.NoOp() {
		t.Fatalf("expected no-op, got %d runs", len(second.NewRuns))
	}
	if !second.Totals.NetPay.IsZero() || !second.Totals.Tax.IsZero() || !second.Totals.Pension.IsZero() {
		t.Fatal("expected zero totals on repeat run")
	}
}

func TestRunPayrollOtherPeriodDoesNotBlock(t *testing.T) {
	existing := []RunKey{{EmployeeID: "E1", Period: "2024-02"}}
	result, err := RunPayroll("2024-03", sampleRoster(), existing, runStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.NewRuns) != 1 {
		t.Fatalf("expected run for new period, got %d", len(result.NewRuns))
	}
}

func TestRunPayrollSkipsInactive(t *testing.T) {
	roster := sampleRoster()
	roster[0].Status = hr.EmployeeStatusSuspended
	roster = append(roster, hr.Employee{
		ID:         "E2",
		FullName:   "Joseph Mwangi",
		Status:     hr.EmployeeStatusTerminated,
		Structure:  hr.StructureDaily,
		BaseSalary: decimal.NewFromInt(400),
	})

	result, err := RunPayroll("2024-03", roster, nil, runStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.NoOp() {
		t.Fatalf("expected no-op for inactive roster, got %d runs", len(result.NewRuns))
	}
}

func TestRunPayrollEmptyRoster(t *testing.T) {
	result, err := RunPayroll("2024-03", nil, nil, runStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.NoOp() {
		t.Fatal("expected no-op for empty roster")
	}
}

func TestRunPayrollNoDuplicateEmployees(t *testing.T) {
	roster := append(sampleRoster(), sampleRoster()...)
	result, err := RunPayroll("2024-03", roster, nil, runStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := map[string]int{}
	for _, run := range result.NewRuns {
		seen[run.EmployeeID]++
	}
	for employeeID, count := range seen {
		if count != 1 {
			t.Fatalf("employee %s appears %d times", employeeID, count)
		}
	}
}

func TestRunPayrollTotalsAreSums(t *testing.T) {
	roster := []hr.Employee{
		{
			ID: "E1", FullName: "A", Status: hr.EmployeeStatusActive, Structure: hr.StructureMonthly,
			BaseSalary: decimal.NewFromInt(1000),
			Deductions: hr.Deductions{Tax: decimal.NewFromFloat(80.25), Pension: decimal.NewFromInt(40)},
		},
		{
			ID: "E2", FullName: "B", Status: hr.EmployeeStatusActive, Structure: hr.StructureDaily,
			BaseSalary: decimal.NewFromFloat(750.50),
			Allowances: hr.Allowances{Risk: decimal.NewFromInt(25)},
			Deductions: hr.Deductions{Tax: decimal.NewFromFloat(60.75)},
		},
	}

	result, err := RunPayroll("2024-04", roster, nil, runStamp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var net, tax, pension decimal.Decimal
	for i, run := range result.NewRuns {
		net = net.Add(run.NetPay)
		tax = tax.Add(roster[i].Deductions.Tax)
		pension = pension.Add(roster[i].Deductions.Pension)
	}
	if !result.Totals.NetPay.Equal(net) {
		t.Fatalf("net total mismatch: %s vs %s", result.Totals.NetPay, net)
	}
	if !result.Totals.Tax.Equal(tax) {
		t.Fatalf("tax total mismatch: %s vs %s", result.Totals.Tax, tax)
	}
	if !result.Totals.Pension.Equal(pension) {
		t.Fatalf("pension total mismatch: %s vs %s", result.Totals.Pension, pension)
	}
}

func TestRunPayrollRejectsNegativeCompensation(t *testing.T) {
	roster := sampleRoster()
	roster[0].Deductions.Tax = decimal.NewFromInt(-80)

	_, err := RunPayroll("2024-03", roster, nil, runStamp)
	if !errors.Is(err, hr.ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestRunPayrollInvalidPeriod(t *testing.T) {
	for _, period := range []string{"", "2024", "2024-13", "March 2024", "2024-03-01"} {
		if _, err := RunPayroll(period, sampleRoster(), nil, runStamp); !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("expected ErrInvalidPeriod for %q, got %v", period, err)
		}
	}
}
