package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"farmops/internal/domain/tasks"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type PeriodTotals struct {
	Period      string          `json:"period"`
	Employees   int             `json:"employees"`
	TotalNetPay decimal.Decimal `json:"totalNetPay"`
}

func (s *Store) RecentPeriodTotals(ctx context.Context, limit int) ([]PeriodTotals, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT period, COUNT(1), COALESCE(SUM(net_pay), 0)
    FROM payroll_runs
    GROUP BY period
    ORDER BY period DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PeriodTotals
	for rows.Next() {
		var row PeriodTotals
		if err := rows.Scan(&row.Period, &row.Employees, &row.TotalNetPay); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *Store) PendingLiabilities(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(amount), 0)
    FROM ledger_transactions
    WHERE status = 'PENDING'
  `).Scan(&total)
	return total, err
}

func (s *Store) LaborExpenseTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(amount), 0)
    FROM ledger_transactions
    WHERE category = 'LABOR' AND status = 'COMPLETED'
  `).Scan(&total)
	return total, err
}

func (s *Store) ActiveEmployeeCount(ctx context.Context) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE status = 'ACTIVE'").Scan(&total)
	return total, err
}

func (s *Store) OpenTaskCount(ctx context.Context) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM tasks WHERE status IN ($1, $2)
  `, tasks.StatusPending, tasks.StatusInProgress).Scan(&total)
	return total, err
}
