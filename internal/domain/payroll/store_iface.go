package payroll

import (
	"context"

	"farmops/internal/domain/hr"
	"farmops/internal/domain/ledger"
)

type StoreAPI interface {
	ListRoster(ctx context.Context) ([]hr.Employee, error)
	ListRunKeys(ctx context.Context) ([]RunKey, error)
	SaveRunBatch(ctx context.Context, runs []PayrollRun, transactions []ledger.Transaction) error
	ListRuns(ctx context.Context, period string, limit, offset int) ([]PayrollRun, int, error)
	PeriodSummary(ctx context.Context, period string) (PeriodSummary, error)
	RegisterRows(ctx context.Context, period string) ([]RegisterRow, error)
}
