package payroll

import "errors"

var (
	ErrInvalidPeriod = errors.New("period must be a YYYY-MM calendar month key")
	ErrRunConflict   = errors.New("payroll run already exists for employee and period")
)
