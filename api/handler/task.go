package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/AxonC/auctor/api/transport"
	"github.com/AxonC/auctor/domain"
	"github.com/AxonC/auctor/pkg/httpcontext"
)

// TaskService is the slice of the task usecase the handlers need.
type TaskService interface {
	ListMine(ctx context.Context, username string, completed bool) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Complete(ctx context.Context, id string) error
	Uncomplete(ctx context.Context, id string) error
	AddComment(ctx context.Context, taskID, contents string) (*domain.TaskComment, error)
	ListComments(ctx context.Context, taskID string) ([]domain.TaskComment, error)
}

type TaskHandler struct {
	baseHandler
	tasks TaskService
}

func NewTaskHandler(tasks TaskService, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		tasks:       tasks,
	}
}

// GetMine handles GET /tasks/mine. The completed query flag switches
// between open and finished tasks; results come back ordered by priority.
func (h *TaskHandler) GetMine(ctx *fasthttp.RequestCtx) {
	username := h.callerUsername(ctx)
	if username == "" {
		return
	}
	completed := ctx.QueryArgs().GetBool("completed")

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.tasks.ListMine(stdCtx, username, completed)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	h.respondJSON(ctx, http.StatusOK, tasks)
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(ctx *fasthttp.RequestCtx) {
	id := h.taskID(ctx)
	if id == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.tasks.Get(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, task)
}

// Create handles POST /tasks. The new task is owned by the caller and
// starts incomplete.
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	username := h.callerUsername(ctx)
	if username == "" {
		return
	}

	var req transport.TaskRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Name == "" {
		h.respondJSON(ctx, http.StatusUnprocessableEntity,
			transport.NewError(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.tasks.Create(stdCtx, &domain.Task{
		Name:        req.Name,
		Description: req.Description,
		Username:    username,
		Priority:    req.Priority,
		Duration:    req.Duration,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, transport.TaskCreatedResponse{ID: created.ID})
}

// Complete handles PATCH /tasks/{id}/complete.
func (h *TaskHandler) Complete(ctx *fasthttp.RequestCtx) {
	id := h.taskID(ctx)
	if id == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.tasks.Complete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusNoContent, nil)
}

// Uncomplete handles DELETE /tasks/{id}/complete.
func (h *TaskHandler) Uncomplete(ctx *fasthttp.RequestCtx) {
	id := h.taskID(ctx)
	if id == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.tasks.Uncomplete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusNoContent, nil)
}

// GetComments handles GET /tasks/{id}/comments.
func (h *TaskHandler) GetComments(ctx *fasthttp.RequestCtx) {
	id := h.taskID(ctx)
	if id == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comments, err := h.tasks.ListComments(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if comments == nil {
		comments = []domain.TaskComment{}
	}
	h.respondJSON(ctx, http.StatusOK, comments)
}

// AddComment handles PATCH /tasks/{id}/comments.
func (h *TaskHandler) AddComment(ctx *fasthttp.RequestCtx) {
	id := h.taskID(ctx)
	if id == "" {
		return
	}

	var req transport.CommentRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Contents == "" {
		h.respondJSON(ctx, http.StatusUnprocessableEntity,
			transport.NewError(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comment, err := h.tasks.AddComment(stdCtx, id, req.Contents)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, comment)
}
