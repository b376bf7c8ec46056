package repository

import (
	"context"

	"github.com/AxonC/auctor/domain"
)

type CommentRepository interface {
	ListByTask(ctx context.Context, taskID string) ([]domain.TaskComment, error)
	Create(ctx context.Context, comment *domain.TaskComment) (*domain.TaskComment, error)
}
