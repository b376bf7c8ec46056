package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AxonC/auctor/domain"
	"github.com/AxonC/auctor/repository"
)

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository returns a Postgres-backed implementation of CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) repository.CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) ListByTask(ctx context.Context, taskID string) ([]domain.TaskComment, error) {
	const query = `
	SELECT id, task_id, contents, created_at
	FROM tasks_comments
	WHERE task_id = $1
	ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []domain.TaskComment
	for rows.Next() {
		var comment domain.TaskComment
		if err := rows.Scan(&comment.ID, &comment.TaskID, &comment.Contents, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.TaskComment) (*domain.TaskComment, error) {
	if comment == nil {
		return nil, domain.ErrInvalidPayload
	}
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO tasks_comments (id, task_id, contents, created_at)
	VALUES ($1, $2, $3, NOW())
	RETURNING created_at
	`
	if err := r.pool.QueryRow(ctx, query,
		comment.ID,
		comment.TaskID,
		comment.Contents,
	).Scan(&comment.CreatedAt); err != nil {
		return nil, err
	}
	return comment, nil
}
