package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Notifier mirrors the payroll notifier; nil disables notification.
type Notifier interface {
	Broadcast(ctx context.Context, ntype, title, body string) error
}

type Service struct {
	store    *Store
	notifier Notifier
}

func NewService(store *Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

func (s *Service) Get(ctx context.Context, taskID string) (Task, error) {
	return s.store.GetTask(ctx, taskID)
}

func (s *Service) List(ctx context.Context, status, assignee string, limit, offset int) ([]Task, int, error) {
	return s.store.ListTasks(ctx, status, assignee, limit, offset)
}

func (s *Service) Create(ctx context.Context, task Task) (string, error) {
	task.Title = strings.TrimSpace(task.Title)
	task.Assignee = strings.TrimSpace(task.Assignee)
	if task.Title == "" {
		return "", errors.New("title is required")
	}
	if task.Assignee == "" {
		return "", errors.New("assignee is required")
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}
	if !ValidPriority(task.Priority) {
		return "", fmt.Errorf("invalid priority %q", task.Priority)
	}
	task.Status = StatusPending
	return s.store.CreateTask(ctx, task)
}

// ChangeStatus applies one forward lifecycle move.
func (s *Service) ChangeStatus(ctx context.Context, taskID, status string) (Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return Task{}, err
	}
	if err := Transition(task.Status, status); err != nil {
		return Task{}, err
	}
	if err := s.store.UpdateTaskStatus(ctx, taskID, status); err != nil {
		return Task{}, err
	}
	task.Status = status

	if status == StatusCompleted && s.notifier != nil {
		body := fmt.Sprintf("Task %q completed by %s.", task.Title, task.Assignee)
		if err := s.notifier.Broadcast(ctx, "task_completed", "Task completed", body); err != nil {
			slog.Warn("task notification failed", "taskId", taskID, "err", err)
		}
	}
	return task, nil
}

// Delete removes the record entirely. Allowed from any state; this is not a
// lifecycle transition.
func (s *Service) Delete(ctx context.Context, taskID string) error {
	return s.store.DeleteTask(ctx, taskID)
}

func (s *Service) Productivity(ctx context.Context) ([]AssigneeProductivity, error) {
	return s.store.CompletedByAssignee(ctx)
}
