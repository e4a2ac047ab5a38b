package tasks

import "testing"

func TestTransitionForwardOnly(t *testing.T) {
	if err := Transition(StatusPending, StatusInProgress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Transition(StatusInProgress, StatusCompleted); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Transition(StatusPending, StatusCompleted); err != nil {
		t.Fatalf("skipping ahead is still forward: %v", err)
	}
}

func TestTransitionRejectsRegression(t *testing.T) {
	cases := [][2]string{
		{StatusInProgress, StatusPending},
		{StatusCompleted, StatusInProgress},
		{StatusCompleted, StatusPending},
	}
	for _, c := range cases {
		if err := Transition(c[0], c[1]); err != ErrInvalidTransition {
			t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", c[0], c[1], err)
		}
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	for _, to := range []string{StatusPending, StatusInProgress, StatusCompleted} {
		if CanTransition(StatusCompleted, to) {
			t.Fatalf("COMPLETED must have no outgoing transition, allowed -> %s", to)
		}
	}
}

func TestTransitionRejectsSameStatus(t *testing.T) {
	if err := Transition(StatusPending, StatusPending); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestTransitionUnknownStatus(t *testing.T) {
	if err := Transition(StatusPending, "ARCHIVED"); err != ErrUnknownStatus {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
	if err := Transition("NEW", StatusPending); err != ErrUnknownStatus {
		t.Fatalf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestFullLifecycle(t *testing.T) {
	status := StatusPending
	for _, next := range []string{StatusInProgress, StatusCompleted} {
		if err := Transition(status, next); err != nil {
			t.Fatalf("%s -> %s: %v", status, next, err)
		}
		status = next
	}
	if status != StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", status)
	}
}
