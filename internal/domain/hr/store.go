package hr

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id, full_name, status, structure, base_salary,
    allowance_housing, allowance_transport, allowance_risk, allowance_other,
    deduction_pension, deduction_tax, deduction_health,
    COALESCE(department, ''), created_at, updated_at`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.Status, &emp.Structure, &emp.BaseSalary,
		&emp.Allowances.Housing, &emp.Allowances.Transport, &emp.Allowances.Risk, &emp.Allowances.Other,
		&emp.Deductions.Pension, &emp.Deductions.Tax, &emp.Deductions.HealthInsurance,
		&emp.Department, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

func (s *Store) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT`+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, employeeID)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrEmployeeNotFound
	}
	return emp, err
}

func (s *Store) ListEmployees(ctx context.Context, status string, limit, offset int) ([]Employee, error) {
	query := `
    SELECT` + employeeColumns + `
    FROM employees`
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY full_name LIMIT $" + itoa(len(args)+1) + " OFFSET $" + itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func (s *Store) CountEmployees(ctx context.Context, status string) (int, error) {
	query := "SELECT COUNT(1) FROM employees"
	args := []any{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	var total int
	if err := s.DB.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (full_name, status, structure, base_salary,
      allowance_housing, allowance_transport, allowance_risk, allowance_other,
      deduction_pension, deduction_tax, deduction_health, department)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    RETURNING id
  `, emp.FullName, emp.Status, emp.Structure, emp.BaseSalary,
		emp.Allowances.Housing, emp.Allowances.Transport, emp.Allowances.Risk, emp.Allowances.Other,
		emp.Deductions.Pension, emp.Deductions.Tax, emp.Deductions.HealthInsurance,
		nullIfEmpty(emp.Department)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, employeeID string, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET full_name = $1, structure = $2, base_salary = $3,
        allowance_housing = $4, allowance_transport = $5, allowance_risk = $6, allowance_other = $7,
        deduction_pension = $8, deduction_tax = $9, deduction_health = $10,
        department = $11, updated_at = now()
    WHERE id = $12
  `, emp.FullName, emp.Structure, emp.BaseSalary,
		emp.Allowances.Housing, emp.Allowances.Transport, emp.Allowances.Risk, emp.Allowances.Other,
		emp.Deductions.Pension, emp.Deductions.Tax, emp.Deductions.HealthInsurance,
		nullIfEmpty(emp.Department), employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (s *Store) UpdateEmployeeStatus(ctx context.Context, employeeID, status string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET status = $1, updated_at = now() WHERE id = $2
  `, status, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func itoa(value int) string {
	return strconv.Itoa(value)
}
