package hr

import (
	"context"
	"strings"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, employeeID string) (Employee, error) {
	return s.store.GetEmployee(ctx, employeeID)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]Employee, int, error) {
	employees, err := s.store.ListEmployees(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.CountEmployees(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

func (s *Service) Create(ctx context.Context, emp Employee) (string, error) {
	emp.FullName = strings.TrimSpace(emp.FullName)
	if emp.Status == "" {
		emp.Status = EmployeeStatusActive
	}
	if !ValidStatus(emp.Status) {
		return "", ErrInvalidStatus
	}
	if !ValidStructure(emp.Structure) {
		return "", ErrInvalidStructure
	}
	if err := emp.ValidateCompensation(); err != nil {
		return "", err
	}
	return s.store.CreateEmployee(ctx, emp)
}

func (s *Service) Update(ctx context.Context, employeeID string, emp Employee) error {
	emp.FullName = strings.TrimSpace(emp.FullName)
	if !ValidStructure(emp.Structure) {
		return ErrInvalidStructure
	}
	if err := emp.ValidateCompensation(); err != nil {
		return err
	}
	return s.store.UpdateEmployee(ctx, employeeID, emp)
}

func (s *Service) ChangeStatus(ctx context.Context, employeeID, status string) error {
	if !ValidStatus(status) {
		return ErrInvalidStatus
	}
	return s.store.UpdateEmployeeStatus(ctx, employeeID, status)
}
