package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"farmops/internal/domain/payroll"
	"farmops/internal/platform/config"
)

const JobPayrollRun = "payroll_run"

type Service struct {
	DB      *pgxpool.Pool
	Cfg     config.Config
	Payroll *payroll.Service
	queue   chan job
}

type job struct {
	Type string
	Run  func(context.Context) (any, error)
}

func New(db *pgxpool.Pool, cfg config.Config, payrollSvc *payroll.Service) *Service {
	return &Service{
		DB:      db,
		Cfg:     cfg,
		Payroll: payrollSvc,
		queue:   make(chan job, 128),
	}
}

func (s *Service) Start(ctx context.Context) {
	go s.worker(ctx)
	if s.Cfg.PayrollAutoRun && s.Cfg.PayrollRunInterval > 0 {
		go s.schedulePayroll(ctx, s.Cfg.PayrollRunInterval)
	}
}

func (s *Service) Enqueue(jobType string, run func(context.Context) (any, error)) {
	select {
	case s.queue <- job{Type: jobType, Run: run}:
	default:
		slog.Warn("job queue full", "jobType", jobType)
	}
}

func (s *Service) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.queue:
			if _, err := s.runJob(ctx, j); err != nil {
				slog.Warn("job run failed", "jobType", j.Type, "err", err)
			}
		}
	}
}

// schedulePayroll periodically enqueues a run for the current calendar month.
// The run engine skips already-processed employees, so firing more often than
// once a month is harmless.
func (s *Service) schedulePayroll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			period := time.Now().UTC().Format(payroll.PeriodFormat)
			s.Enqueue(JobPayrollRun, func(ctx context.Context) (any, error) {
				outcome, err := s.Payroll.RunPeriod(ctx, period)
				if errors.Is(err, payroll.ErrRunConflict) {
					// Another operator ran the period concurrently; the
					// next tick will pick up anything left over.
					return outcome, nil
				}
				return outcome, err
			})
		}
	}
}

func (s *Service) runJob(ctx context.Context, j job) (any, error) {
	var runID string
	if err := s.DB.QueryRow(ctx, `
    INSERT INTO job_runs (job_type, status)
    VALUES ($1, 'running')
    RETURNING id
  `, j.Type).Scan(&runID); err != nil {
		return nil, err
	}

	details, err := j.Run(ctx)
	status := "completed"
	if err != nil {
		status = "failed"
		details = map[string]string{"error": err.Error()}
	}

	detailsJSON, marshalErr := json.Marshal(details)
	if marshalErr != nil {
		detailsJSON = []byte("{}")
	}
	if _, updErr := s.DB.Exec(ctx, `
    UPDATE job_runs SET status = $1, details_json = $2, completed_at = now()
    WHERE id = $3
  `, status, detailsJSON, runID); updErr != nil {
		slog.Warn("job run update failed", "runId", runID, "err", updErr)
	}
	return details, err
}
