package payroll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"farmops/internal/domain/hr"
	"farmops/internal/domain/ledger"
)

type fakeStore struct {
	roster    []hr.Employee
	runs      []PayrollRun
	ledger    []ledger.Transaction
	saveErr   error
	saveCalls int
}

func (f *fakeStore) ListRoster(ctx context.Context) ([]hr.Employee, error) {
	return f.roster, nil
}

func (f *fakeStore) ListRunKeys(ctx context.Context) ([]RunKey, error) {
	keys := make([]RunKey, 0, len(f.runs))
	for _, run := range f.runs {
		keys = append(keys, RunKey{EmployeeID: run.EmployeeID, Period: run.Period})
	}
	return keys, nil
}

func (f *fakeStore) SaveRunBatch(ctx context.Context, runs []PayrollRun, transactions []ledger.Transaction) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.runs = append(f.runs, runs...)
	f.ledger = append(f.ledger, transactions...)
	return nil
}

func (f *fakeStore) ListRuns(ctx context.Context, period string, limit, offset int) ([]PayrollRun, int, error) {
	var out []PayrollRun
	for _, run := range f.runs {
		if run.Period == period {
			out = append(out, run)
		}
	}
	return out, len(out), nil
}

func (f *fakeStore) PeriodSummary(ctx context.Context, period string) (PeriodSummary, error) {
	return PeriodSummary{Period: period}, nil
}

func (f *fakeStore) RegisterRows(ctx context.Context, period string) ([]RegisterRow, error) {
	return nil, nil
}

type fakeNotifier struct {
	types []string
}

func (f *fakeNotifier) Broadcast(ctx context.Context, ntype, title, body string) error {
	f.types = append(f.types, ntype)
	return nil
}

func testService(store *fakeStore, notifier Notifier) *Service {
	svc := NewService(store, notifier)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestRunPeriodPersistsRunsAndLedger(t *testing.T) {
	store := &fakeStore{roster: sampleRoster()}
	notifier := &fakeNotifier{}
	svc := testService(store, notifier)

	outcome, err := svc.RunPeriod(context.Background(), "2024-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outcome.NoOp || outcome.Processed != 1 {
		t.Fatalf("expected 1 processed, got %+v", outcome)
	}
	if outcome.TransactionsPosted != 3 {
		t.Fatalf("expected 3 transactions, got %d", outcome.TransactionsPosted)
	}
	if len(store.runs) != 1 || len(store.ledger) != 3 {
		t.Fatalf("store state: %d runs, %d transactions", len(store.runs), len(store.ledger))
	}
	if !outcome.Totals.NetPay.Equal(decimal.NewFromInt(1030)) {
		t.Fatalf("expected net total 1030, got %s", outcome.Totals.NetPay)
	}
	if len(notifier.types) != 1 || notifier.types[0] != "payroll_processed" {
		t.Fatalf("expected processed notification, got %v", notifier.types)
	}
}

func TestRunPeriodSecondCallIsNoOp(t *testing.T) {
	store := &fakeStore{roster: sampleRoster()}
	notifier := &fakeNotifier{}
	svc := testService(store, notifier)

	if _, err := svc.RunPeriod(context.Background(), "2024-03"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outcome, err := svc.RunPeriod(context.Background(), "2024-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !outcome.NoOp || outcome.Processed != 0 {
		t.Fatalf("expected no-op outcome, got %+v", outcome)
	}
	if store.saveCalls != 1 {
		t.Fatalf("expected a single save, got %d", store.saveCalls)
	}
	if len(store.ledger) != 3 {
		t.Fatalf("no-op must not post ledger rows, have %d", len(store.ledger))
	}
	if len(notifier.types) != 2 || notifier.types[1] != "payroll_noop" {
		t.Fatalf("expected no-op notification, got %v", notifier.types)
	}
}

func TestRunPeriodConflictPropagates(t *testing.T) {
	store := &fakeStore{roster: sampleRoster(), saveErr: ErrRunConflict}
	svc := testService(store, nil)

	_, err := svc.RunPeriod(context.Background(), "2024-03")
	if !errors.Is(err, ErrRunConflict) {
		t.Fatalf("expected ErrRunConflict, got %v", err)
	}
}

func TestRunPeriodInvalidPeriod(t *testing.T) {
	svc := testService(&fakeStore{}, nil)
	if _, err := svc.RunPeriod(context.Background(), "2024/03"); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}
