package payroll

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"farmops/internal/domain/hr"
	"farmops/internal/domain/ledger"
)

type Store struct {
	DB     *pgxpool.Pool
	Ledger *ledger.Store
}

func NewStore(db *pgxpool.Pool, ledgerStore *ledger.Store) *Store {
	return &Store{DB: db, Ledger: ledgerStore}
}

// ListRoster returns the full employee set; filtering to active employees is
// the engine's job.
func (s *Store) ListRoster(ctx context.Context) ([]hr.Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, full_name, status, structure, base_salary,
           allowance_housing, allowance_transport, allowance_risk, allowance_other,
           deduction_pension, deduction_tax, deduction_health
    FROM employees
    ORDER BY full_name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []hr.Employee
	for rows.Next() {
		var emp hr.Employee
		if err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Status, &emp.Structure, &emp.BaseSalary,
			&emp.Allowances.Housing, &emp.Allowances.Transport, &emp.Allowances.Risk, &emp.Allowances.Other,
			&emp.Deductions.Pension, &emp.Deductions.Tax, &emp.Deductions.HealthInsurance,
		); err != nil {
			return nil, err
		}
		roster = append(roster, emp)
	}
	return roster, rows.Err()
}

// ListRunKeys returns the complete run history. The engine needs the full set,
// not just the current period, so the idempotency check never depends on
// query-side filtering.
func (s *Store) ListRunKeys(ctx context.Context) ([]RunKey, error) {
	rows, err := s.DB.Query(ctx, "SELECT employee_id, period FROM payroll_runs")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []RunKey
	for rows.Next() {
		var key RunKey
		if err := rows.Scan(&key.EmployeeID, &key.Period); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// SaveRunBatch persists the runs and their ledger transactions in a single
// database transaction. The unique index on (period, employee_id) is the
// concurrent-run guard: if another operator won the race for any employee, the
// whole batch rolls back with ErrRunConflict and the caller re-invokes against
// fresh history.
func (s *Store) SaveRunBatch(ctx context.Context, runs []PayrollRun, transactions []ledger.Transaction) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, run := range runs {
		tag, err := tx.Exec(ctx, `
      INSERT INTO payroll_runs (period, employee_id, employee_name, base_pay,
        total_allowances, total_deductions, overtime_hours, overtime_pay,
        net_pay, status, processed_at)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
      ON CONFLICT (period, employee_id) DO NOTHING
    `, run.Period, run.EmployeeID, run.EmployeeName, run.BasePay,
			run.TotalAllowances, run.TotalDeductions, run.OvertimeHours, run.OvertimePay,
			run.NetPay, run.Status, run.ProcessedAt)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrRunConflict
		}
	}

	if err := s.Ledger.InsertTransactions(ctx, tx, transactions); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) ListRuns(ctx context.Context, period string, limit, offset int) ([]PayrollRun, int, error) {
	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM payroll_runs WHERE period = $1", period).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.DB.Query(ctx, `
    SELECT id, period, employee_id, employee_name, base_pay,
           total_allowances, total_deductions, overtime_hours, overtime_pay,
           net_pay, status, processed_at
    FROM payroll_runs
    WHERE period = $1
    ORDER BY employee_name
    LIMIT $2 OFFSET $3
  `, period, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var runs []PayrollRun
	for rows.Next() {
		var run PayrollRun
		if err := rows.Scan(
			&run.ID, &run.Period, &run.EmployeeID, &run.EmployeeName, &run.BasePay,
			&run.TotalAllowances, &run.TotalDeductions, &run.OvertimeHours, &run.OvertimePay,
			&run.NetPay, &run.Status, &run.ProcessedAt,
		); err != nil {
			return nil, 0, err
		}
		runs = append(runs, run)
	}
	return runs, total, rows.Err()
}

func (s *Store) PeriodSummary(ctx context.Context, period string) (PeriodSummary, error) {
	summary := PeriodSummary{Period: period}
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1),
           COALESCE(SUM(base_pay), 0),
           COALESCE(SUM(total_allowances), 0),
           COALESCE(SUM(total_deductions), 0),
           COALESCE(SUM(net_pay), 0)
    FROM payroll_runs
    WHERE period = $1
  `, period).Scan(&summary.EmployeeCount, &summary.TotalBasePay,
		&summary.TotalAllowances, &summary.TotalDeductions, &summary.TotalNetPay)
	return summary, err
}

func (s *Store) RegisterRows(ctx context.Context, period string) ([]RegisterRow, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, employee_name, base_pay, total_allowances, total_deductions, net_pay
    FROM payroll_runs
    WHERE period = $1
    ORDER BY employee_name
  `, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RegisterRow
	for rows.Next() {
		var row RegisterRow
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.BasePay,
			&row.Allowances, &row.Deductions, &row.NetPay); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
