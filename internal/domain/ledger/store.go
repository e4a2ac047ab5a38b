package ledger

import (
	"context"
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

// InsertTransactions appends rows inside the given transaction so the caller
// can commit them atomically with the payroll runs they derive from.
func (s *Store) InsertTransactions(ctx context.Context, tx pgx.Tx, transactions []Transaction) error {
	for _, t := range transactions {
		if _, err := tx.Exec(ctx, `
      INSERT INTO ledger_transactions (date, description, amount, type, category, status)
      VALUES ($1,$2,$3,$4,$5,$6)
    `, t.Date, t.Description, t.Amount, t.Type, t.Category, t.Status); err != nil {
			return err
		}
	}
	return nil
}

type ListFilter struct {
	Category string
	Status   string
	Period   string
	Limit    int
	Offset   int
}

func (s *Store) ListTransactions(ctx context.Context, filter ListFilter) ([]Transaction, int, error) {
	where := ""
	args := []any{}
	appendCond := func(cond string, value any) {
		args = append(args, value)
		placeholder := "$" + strconv.Itoa(len(args))
		if where == "" {
			where = " WHERE " + cond + placeholder
		} else {
			where += " AND " + cond + placeholder
		}
	}
	if filter.Category != "" {
		appendCond("category = ", filter.Category)
	}
	if filter.Status != "" {
		appendCond("status = ", filter.Status)
	}
	if filter.Period != "" {
		// Postings embed the period in the description; see PostPayrollLedger.
		appendCond("description LIKE '%' || ", filter.Period)
	}

	var total int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM ledger_transactions"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
    SELECT id, date, description, amount, type, category, status
    FROM ledger_transactions` + where + `
    ORDER BY date DESC, id
    LIMIT $` + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Amount, &t.Type, &t.Category, &t.Status); err != nil {
			return nil, 0, err
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}
