package task

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/AxonC/auctor/domain"
	"github.com/AxonC/auctor/repository"
)

// UseCase implements the task and comment operations behind the API. Every
// operation addressing a task by id resolves it first; a miss fails the
// whole operation with NOT_FOUND before any write happens.
type UseCase struct {
	tasks    repository.TaskRepository
	comments repository.CommentRepository
	logger   *zap.Logger
}

func New(tasks repository.TaskRepository, comments repository.CommentRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:    tasks,
		comments: comments,
		logger:   logger,
	}
}

// ListMine returns the caller's tasks filtered by completion state and
// sorted ascending by priority.
func (uc *UseCase) ListMine(ctx context.Context, username string, completed bool) ([]domain.Task, error) {
	tasks, err := uc.tasks.List(ctx, repository.TaskFilter{
		Username:  username,
		Completed: completed,
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority < tasks[j].Priority
	})
	return tasks, nil
}

func (uc *UseCase) Get(ctx context.Context, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id)
}

// Create persists a new task owned by task.Username. completed_at always
// starts null regardless of the payload.
func (uc *UseCase) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		return nil, err
	}
	uc.logger.Debug("task created",
		zap.String("task_id", created.ID),
		zap.String("username", created.Username),
	)
	return created, nil
}

// Complete stamps the task with the current server time. Re-completing an
// already completed task refreshes the timestamp.
func (uc *UseCase) Complete(ctx context.Context, id string) error {
	if _, err := uc.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	now := time.Now().UTC()
	return uc.tasks.SetCompletedAt(ctx, id, &now)
}

// Uncomplete clears the completion timestamp, reopening the task.
func (uc *UseCase) Uncomplete(ctx context.Context, id string) error {
	if _, err := uc.tasks.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.tasks.SetCompletedAt(ctx, id, nil)
}

// AddComment appends a comment to an existing task. The creation time is
// assigned by the store at insert.
func (uc *UseCase) AddComment(ctx context.Context, taskID, contents string) (*domain.TaskComment, error) {
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return uc.comments.Create(ctx, &domain.TaskComment{
		TaskID:   taskID,
		Contents: contents,
	})
}

// ListComments returns a task's comments in insertion order.
func (uc *UseCase) ListComments(ctx context.Context, taskID string) ([]domain.TaskComment, error) {
	if _, err := uc.tasks.GetByID(ctx, taskID); err != nil {
		return nil, err
	}
	return uc.comments.ListByTask(ctx, taskID)
}
