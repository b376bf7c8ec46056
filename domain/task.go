package domain

import "time"

// Task represents a user-owned activity item. The owning username never
// changes after creation; completion is toggled through CompletedAt.
type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Username    string     `json:"username"`
	Priority    int        `json:"priority"`
	Duration    int        `json:"duration"`
	DueDate     Date       `json:"due_date"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.CompletedAt != nil
}
