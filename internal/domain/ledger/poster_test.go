package ledger_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"farmops/internal/domain/ledger"
	"farmops/internal/domain/payroll"
)

var postStamp = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

func TestPostPayrollLedger(t *testing.T) {
	totals := payroll.Totals{
		NetPay:  decimal.NewFromInt(1030),
		Tax:     decimal.NewFromInt(80),
		Pension: decimal.NewFromInt(40),
	}

	txs := ledger.PostPayrollLedger("2024-03", totals, postStamp)
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}

	net := txs[0]
	if net.Category != ledger.CategoryLabor || net.Status != ledger.StatusCompleted || net.Type != ledger.TypeExpense {
		t.Fatalf("unexpected net transaction: %+v", net)
	}
	if !net.Amount.Equal(decimal.NewFromInt(1030)) {
		t.Fatalf("expected net amount 1030, got %s", net.Amount)
	}

	tax := txs[1]
	if tax.Category != ledger.CategoryOther || tax.Status != ledger.StatusPending {
		t.Fatalf("unexpected tax transaction: %+v", tax)
	}
	if !tax.Amount.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("expected tax amount 80, got %s", tax.Amount)
	}

	pension := txs[2]
	if pension.Status != ledger.StatusPending {
		t.Fatalf("unexpected pension transaction: %+v", pension)
	}
	if !pension.Amount.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected pension amount 40, got %s", pension.Amount)
	}

	for _, tx := range txs {
		if !strings.Contains(tx.Description, "2024-03") {
			t.Fatalf("description must embed the period: %q", tx.Description)
		}
	}
}

func TestPostPayrollLedgerSkipsZeroTotals(t *testing.T) {
	totals := payroll.Totals{
		NetPay:  decimal.NewFromInt(500),
		Pension: decimal.NewFromInt(20),
	}

	txs := ledger.PostPayrollLedger("2024-04", totals, postStamp)
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions when tax is zero, got %d", len(txs))
	}
	for _, tx := range txs {
		if strings.Contains(tx.Description, "tax") {
			t.Fatalf("zero tax total must not post: %q", tx.Description)
		}
	}
}

func TestPostPayrollLedgerAllZero(t *testing.T) {
	if txs := ledger.PostPayrollLedger("2024-05", payroll.Totals{}, postStamp); len(txs) != 0 {
		t.Fatalf("expected no transactions for zero totals, got %d", len(txs))
	}
}

func TestPostPayrollLedgerConservation(t *testing.T) {
	totals := payroll.Totals{
		NetPay:  decimal.NewFromFloat(1780.50),
		Tax:     decimal.NewFromFloat(141.00),
		Pension: decimal.NewFromInt(40),
	}

	byCategory := map[string]decimal.Decimal{}
	for _, tx := range ledger.PostPayrollLedger("2024-06", totals, postStamp) {
		key := tx.Category + "/" + tx.Status
		byCategory[key] = byCategory[key].Add(tx.Amount)
	}

	if !byCategory[ledger.CategoryLabor+"/"+ledger.StatusCompleted].Equal(totals.NetPay) {
		t.Fatal("labor posting does not equal net pay total")
	}
	pendingOther := byCategory[ledger.CategoryOther+"/"+ledger.StatusPending]
	if !pendingOther.Equal(totals.Tax.Add(totals.Pension)) {
		t.Fatalf("liability postings %s do not equal tax+pension", pendingOther)
	}
}
