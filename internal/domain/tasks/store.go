package tasks

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

func (s *Store) GetTask(ctx context.Context, taskID string) (Task, error) {
	var task Task
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, assignee, priority, due, status,
           COALESCE(flock_id, ''), COALESCE(department, ''), created_at, updated_at
    FROM tasks
    WHERE id = $1
  `, taskID).Scan(&task.ID, &task.Title, &task.Assignee, &task.Priority, &task.Due,
		&task.Status, &task.FlockID, &task.Department, &task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrTaskNotFound
	}
	return task, err
}

func (s *Store) ListTasks(ctx context.Context, status, assignee string, limit, offset int) ([]Task, int, error) {
	where := ""
	args := []any{}
	if status != "" {
		args = append(args, status)
		where = " WHERE status = $" + strconv.Itoa(len(args))
	}
	if assignee != "" {
		args = append(args, assignee)
		cond := "assignee = $" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM tasks"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
    SELECT id, title, assignee, priority, due, status,
           COALESCE(flock_id, ''), COALESCE(department, ''), created_at, updated_at
    FROM tasks` + where + `
    ORDER BY created_at DESC
    LIMIT $` + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Task
	for rows.Next() {
		var task Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Assignee, &task.Priority, &task.Due,
			&task.Status, &task.FlockID, &task.Department, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, task)
	}
	return out, total, rows.Err()
}

func (s *Store) CreateTask(ctx context.Context, task Task) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO tasks (title, assignee, priority, due, status, flock_id, department)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
    RETURNING id
  `, task.Title, task.Assignee, task.Priority, task.Due, task.Status,
		nullIfEmpty(task.FlockID), nullIfEmpty(task.Department)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateTaskStatus(ctx context.Context, taskID, status string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE tasks SET status = $1, updated_at = now() WHERE id = $2
  `, status, taskID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *Store) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM tasks WHERE id = $1", taskID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// CompletedByAssignee feeds the productivity dashboard. Only COMPLETED tasks
// count; grouping is by the free-text assignee name.
func (s *Store) CompletedByAssignee(ctx context.Context) ([]AssigneeProductivity, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT assignee, COUNT(1)
    FROM tasks
    WHERE status = $1
    GROUP BY assignee
    ORDER BY COUNT(1) DESC, assignee
  `, StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AssigneeProductivity
	for rows.Next() {
		var row AssigneeProductivity
		if err := rows.Scan(&row.Assignee, &row.Completed); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
