package tasks

import "time"

const (
	StatusPending    = "PENDING"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"

	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

type Task struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Assignee   string     `json:"assignee"`
	Priority   string     `json:"priority"`
	Due        *time.Time `json:"due,omitempty"`
	Status     string     `json:"status"`
	FlockID    string     `json:"flockId,omitempty"`
	Department string     `json:"department,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// AssigneeProductivity counts completed tasks per assignee. The join to the
// employee roster is by display name; see the productivity report.
type AssigneeProductivity struct {
	Assignee  string `json:"assignee"`
	Completed int    `json:"completed"`
}

func ValidPriority(priority string) bool {
	switch priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}
