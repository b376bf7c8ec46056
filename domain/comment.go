package domain

import "time"

// TaskComment is an append-only note attached to a task. Comments are never
// edited or removed once inserted.
type TaskComment struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Contents  string    `json:"contents"`
	CreatedAt time.Time `json:"created_at"`
}
