package hr

import "errors"

var (
	ErrNegativeAmount   = errors.New("compensation amounts must not be negative")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrInvalidStatus    = errors.New("invalid employee status")
	ErrInvalidStructure = errors.New("invalid salary structure")
)
