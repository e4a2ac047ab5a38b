package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"farmops/internal/domain/ledger"
)

// Notifier surfaces run outcomes to operators. Implemented by the
// notifications service; nil disables notification.
type Notifier interface {
	Broadcast(ctx context.Context, ntype, title, body string) error
}

type Service struct {
	store    StoreAPI
	notifier Notifier
	now      func() time.Time
}

func NewService(store StoreAPI, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier, now: time.Now}
}

// RunOutcome is what the operator sees: a no-op is reported distinctly from a
// successful processing of N employees.
type RunOutcome struct {
	Period             string `json:"period"`
	Processed          int    `json:"processed"`
	NoOp               bool   `json:"noop"`
	Totals             Totals `json:"totals"`
	TransactionsPosted int    `json:"transactionsPosted"`
}

// RunPeriod executes payroll for one period end to end: load inputs, compute
// the batch, persist runs and ledger postings atomically, notify operators.
// Safe to blindly retry; already-processed employees are skipped.
func (s *Service) RunPeriod(ctx context.Context, period string) (RunOutcome, error) {
	roster, err := s.store.ListRoster(ctx)
	if err != nil {
		return RunOutcome{}, fmt.Errorf("load roster: %w", err)
	}
	existing, err := s.store.ListRunKeys(ctx)
	if err != nil {
		return RunOutcome{}, fmt.Errorf("load run history: %w", err)
	}

	now := s.now().UTC()
	result, err := RunPayroll(period, roster, existing, now)
	if err != nil {
		return RunOutcome{}, err
	}

	if result.NoOp() {
		s.notify(ctx, "payroll_noop", "Payroll run: nothing to process",
			fmt.Sprintf("Every active employee already has a payroll run for %s.", period))
		return RunOutcome{Period: period, NoOp: true}, nil
	}

	transactions := ledger.PostPayrollLedger(period, result.Totals, now)
	if err := s.store.SaveRunBatch(ctx, result.NewRuns, transactions); err != nil {
		return RunOutcome{}, fmt.Errorf("persist payroll batch: %w", err)
	}

	s.notify(ctx, "payroll_processed", "Payroll run completed",
		fmt.Sprintf("Processed %d employees for %s, net pay total %s.",
			len(result.NewRuns), period, result.Totals.NetPay))

	return RunOutcome{
		Period:             period,
		Processed:          len(result.NewRuns),
		Totals:             result.Totals,
		TransactionsPosted: len(transactions),
	}, nil
}

func (s *Service) Runs(ctx context.Context, period string, limit, offset int) ([]PayrollRun, int, error) {
	if err := ValidatePeriod(period); err != nil {
		return nil, 0, err
	}
	return s.store.ListRuns(ctx, period, limit, offset)
}

func (s *Service) Summary(ctx context.Context, period string) (PeriodSummary, error) {
	if err := ValidatePeriod(period); err != nil {
		return PeriodSummary{}, err
	}
	return s.store.PeriodSummary(ctx, period)
}

func (s *Service) Register(ctx context.Context, period string) ([]RegisterRow, error) {
	if err := ValidatePeriod(period); err != nil {
		return nil, err
	}
	return s.store.RegisterRows(ctx, period)
}

func (s *Service) notify(ctx context.Context, ntype, title, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Broadcast(ctx, ntype, title, body); err != nil {
		slog.Warn("payroll notification failed", "type", ntype, "err", err)
	}
}
