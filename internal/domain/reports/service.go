package reports

import (
	"context"

	"github.com/shopspring/decimal"

	"farmops/internal/domain/tasks"
)

type Service struct {
	Store *Store
	Tasks *tasks.Service
}

func NewService(store *Store, taskSvc *tasks.Service) *Service {
	return &Service{Store: store, Tasks: taskSvc}
}

// Dashboard is what the payroll dashboard renders: recent period totals,
// outstanding liabilities, and completed-task productivity per assignee.
type Dashboard struct {
	ActiveEmployees    int                          `json:"activeEmployees"`
	RecentPeriods      []PeriodTotals               `json:"recentPeriods"`
	LaborExpenseTotal  decimal.Decimal              `json:"laborExpenseTotal"`
	PendingLiabilities decimal.Decimal              `json:"pendingLiabilities"`
	OpenTasks          int                          `json:"openTasks"`
	Productivity       []tasks.AssigneeProductivity `json:"productivity"`
}

func (s *Service) Dashboard(ctx context.Context) (Dashboard, error) {
	var out Dashboard
	var err error

	if out.ActiveEmployees, err = s.Store.ActiveEmployeeCount(ctx); err != nil {
		return out, err
	}
	if out.RecentPeriods, err = s.Store.RecentPeriodTotals(ctx, 6); err != nil {
		return out, err
	}
	if out.LaborExpenseTotal, err = s.Store.LaborExpenseTotal(ctx); err != nil {
		return out, err
	}
	if out.PendingLiabilities, err = s.Store.PendingLiabilities(ctx); err != nil {
		return out, err
	}
	if out.OpenTasks, err = s.Store.OpenTaskCount(ctx); err != nil {
		return out, err
	}
	if out.Productivity, err = s.Tasks.Productivity(ctx); err != nil {
		return out, err
	}
	return out, nil
}
