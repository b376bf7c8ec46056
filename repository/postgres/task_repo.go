package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AxonC/auctor/domain"
	"github.com/AxonC/auctor/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	const query = `
	SELECT id, name, description, username, priority, duration, due_date, completed_at
	FROM tasks
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)
	return scanTask(row)
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	const query = `
	SELECT id, name, description, username, priority, duration, due_date, completed_at
	FROM tasks
	WHERE username = $1
	  AND (completed_at IS NOT NULL) = $2
	`
	rows, err := r.pool.Query(ctx, query, filter.Username, filter.Completed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	// completed_at is intentionally absent: new tasks always start open.
	const query = `
	INSERT INTO tasks (id, name, description, username, priority, duration, due_date)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id
	`
	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.Name,
		task.Description,
		task.Username,
		task.Priority,
		task.Duration,
		task.DueDate,
	).Scan(&task.ID); err != nil {
		return nil, err
	}

	task.CompletedAt = nil
	return task, nil
}

func (r *taskRepository) SetCompletedAt(ctx context.Context, id string, completedAt *time.Time) error {
	const query = `UPDATE tasks SET completed_at = $2 WHERE id = $1`

	var ts interface{}
	if completedAt != nil {
		ts = *completedAt
	}

	tag, err := r.pool.Exec(ctx, query, id, ts)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	var completedAt *time.Time

	if err := row.Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&task.Username,
		&task.Priority,
		&task.Duration,
		&task.DueDate,
		&completedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.CompletedAt = completedAt
	return &task, nil
}
