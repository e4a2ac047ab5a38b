package payroll

import (
	"testing"

	"github.com/shopspring/decimal"

	"farmops/internal/domain/hr"
)

func TestNetPay(t *testing.T) {
	emp := hr.Employee{
		BaseSalary: decimal.NewFromInt(1000),
		Allowances: hr.Allowances{
			Housing:   decimal.NewFromInt(100),
			Transport: decimal.NewFromInt(50),
		},
		Deductions: hr.Deductions{
			Tax:     decimal.NewFromInt(80),
			Pension: decimal.NewFromInt(40),
		},
	}

	net := NetPay(emp)
	if !net.Equal(decimal.NewFromInt(1030)) {
		t.Fatalf("expected net 1030, got %s", net)
	}
}

func TestNetPayIdentity(t *testing.T) {
	cases := []hr.Employee{
		{},
		{BaseSalary: decimal.NewFromInt(500)},
		{
			BaseSalary: decimal.NewFromFloat(1234.56),
			Allowances: hr.Allowances{Risk: decimal.NewFromFloat(0.44), Other: decimal.NewFromInt(10)},
			Deductions: hr.Deductions{HealthInsurance: decimal.NewFromFloat(99.99)},
		},
		{
			// Deductions exceeding gross still satisfy the identity.
			BaseSalary: decimal.NewFromInt(100),
			Deductions: hr.Deductions{Tax: decimal.NewFromInt(150)},
		},
	}

	for i, emp := range cases {
		want := emp.BaseSalary.Add(emp.Allowances.Total()).Sub(emp.Deductions.Total())
		if got := NetPay(emp); !got.Equal(want) {
			t.Fatalf("case %d: expected %s, got %s", i, want, got)
		}
	}
}
