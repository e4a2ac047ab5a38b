package tasks

import "errors"

var (
	ErrInvalidTransition = errors.New("task status may only move forward")
	ErrUnknownStatus     = errors.New("unknown task status")
	ErrTaskNotFound      = errors.New("task not found")
)

var statusOrder = map[string]int{
	StatusPending:    0,
	StatusInProgress: 1,
	StatusCompleted:  2,
}

// CanTransition reports whether from -> to is a legal forward move.
// COMPLETED is terminal; a same-status "transition" is not a move.
func CanTransition(from, to string) bool {
	fromRank, ok := statusOrder[from]
	if !ok {
		return false
	}
	toRank, ok := statusOrder[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// Transition validates a status change request. Regressions and repeats are
// rejected rather than silently ignored.
func Transition(from, to string) error {
	if _, ok := statusOrder[to]; !ok {
		return ErrUnknownStatus
	}
	if _, ok := statusOrder[from]; !ok {
		return ErrUnknownStatus
	}
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
