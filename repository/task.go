package repository

import (
	"context"
	"time"

	"github.com/AxonC/auctor/domain"
)

// TaskFilter narrows task listings to a single owner and completion state.
type TaskFilter struct {
	Username  string
	Completed bool
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// SetCompletedAt toggles the completion timestamp; nil clears it.
	SetCompletedAt(ctx context.Context, id string, completedAt *time.Time) error
}
