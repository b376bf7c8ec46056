package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/AxonC/auctor/api/transport"
	"github.com/AxonC/auctor/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListMine(ctx context.Context, username string, completed bool) ([]domain.Task, error) {
	args := m.Called(ctx, username, completed)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Get(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)

	var task *domain.Task
	if value := args.Get(0); value != nil {
		task = value.(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	args := m.Called(ctx, task)

	var created *domain.Task
	if value := args.Get(0); value != nil {
		created = value.(*domain.Task)
	}
	return created, args.Error(1)
}

func (m *taskServiceMock) Complete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) Uncomplete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) AddComment(ctx context.Context, taskID, contents string) (*domain.TaskComment, error) {
	args := m.Called(ctx, taskID, contents)

	var comment *domain.TaskComment
	if value := args.Get(0); value != nil {
		comment = value.(*domain.TaskComment)
	}
	return comment, args.Error(1)
}

func (m *taskServiceMock) ListComments(ctx context.Context, taskID string) ([]domain.TaskComment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.TaskComment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.TaskComment)
	}
	return comments, args.Error(1)
}

func authedRequest(method, uri string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	ctx.Request.Header.Set(HeaderUsername, "alice")
	return ctx
}

func TestTaskHandler_GetMine(t *testing.T) {
	service := new(taskServiceMock)
	service.On("ListMine", mock.Anything, "alice", false).
		Return([]domain.Task{
			{ID: "t1", Name: "X", Username: "alice", Priority: 5, DueDate: domain.NewDate(2024, time.January, 1)},
		}, nil).Once()

	handler := NewTaskHandler(service, nil, nil)

	ctx := authedRequest(http.MethodGet, "/tasks/mine")
	handler.GetMine(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var got []domain.Task
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	require.Len(t, got, 1)
	require.Equal(t, 5, got[0].Priority)
	require.Nil(t, got[0].CompletedAt)
	require.Equal(t, "2024-01-01", got[0].DueDate.String())
	service.AssertExpectations(t)
}

func TestTaskHandler_GetMine_CompletedFlag(t *testing.T) {
	service := new(taskServiceMock)
	service.On("ListMine", mock.Anything, "alice", true).
		Return(nil, nil).Once()

	handler := NewTaskHandler(service, nil, nil)

	ctx := authedRequest(http.MethodGet, "/tasks/mine?completed=true")
	handler.GetMine(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())
	require.JSONEq(t, "[]", string(ctx.Response.Body()))
	service.AssertExpectations(t)
}

func TestTaskHandler_Get_NotFound(t *testing.T) {
	service := new(taskServiceMock)
	service.On("Get", mock.Anything, "missing").
		Return(nil, domain.ErrTaskNotFound).Once()

	handler := NewTaskHandler(service, nil, nil)

	ctx := authedRequest(http.MethodGet, "/tasks/missing")
	ctx.SetUserValue("id", "missing")
	handler.Get(ctx)

	require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestTaskHandler_Create(t *testing.T) {
	service := new(taskServiceMock)
	service.On("Create", mock.Anything, mock.MatchedBy(func(task *domain.Task) bool {
		return task.Name == "X" &&
			task.Username == "alice" &&
			task.Priority == 5 &&
			task.Duration == 10 &&
			task.DueDate.String() == "2024-01-01" &&
			task.CompletedAt == nil
	})).Return(&domain.Task{ID: "new-id"}, nil).Once()

	handler := NewTaskHandler(service, nil, nil)

	ctx := authedRequest(http.MethodPost, "/tasks")
	ctx.Request.Header.SetContentType("application/json")
	ctx.Request.SetBodyString(`{"name":"X","priority":5,"duration":10,"due_date":"2024-01-01","description":"d"}`)
	handler.Create(ctx)

	require.Equal(t, http.StatusCreated, ctx.Response.StatusCode())

	var got transport.TaskCreatedResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	require.Equal(t, "new-id", got.ID)
	service.AssertExpectations(t)
}

func TestTaskHandler_Create_InvalidBody(t *testing.T) {
	service := new(taskServiceMock)
	handler := NewTaskHandler(service, nil, nil)

	for _, body := range []string{`{"priority":"high"}`, `not json`, `{}`} {
		ctx := authedRequest(http.MethodPost, "/tasks")
		ctx.Request.SetBodyString(body)
		handler.Create(ctx)

		require.Equal(t, http.StatusUnprocessableEntity, ctx.Response.StatusCode(), "body %q", body)
	}
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTaskHandler_Complete(t *testing.T) {
	service := new(taskServiceMock)
	service.On("Complete", mock.Anything, "t1").Return(nil).Once()

	handler := NewTaskHandler(service, nil, nil)

	ctx := authedRequest(http.MethodPatch, "/tasks/t1/complete")
	ctx.SetUserValue("id", "t1")
	handler.Complete(ctx)

	require.Equal(t, http.StatusNoContent, ctx.Response.StatusCode())
	require.Empty(t, ctx.Response.Body())
}

func TestTaskHandler_Uncomplete_NotFound(t *testing.T) {
	service := new(taskServiceMock)
	service.On("Uncomplete", mock.Anything, "missing").
		Return(domain.ErrTaskNotFound).Once()

	handler := NewTaskHandler(service, nil, nil)

	ctx := authedRequest(http.MethodDelete, "/tasks/missing/complete")
	ctx.SetUserValue("id", "missing")
	handler.Uncomplete(ctx)

	require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}

func TestTaskHandler_AddComment(t *testing.T) {
	createdAt := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)

	service := new(taskServiceMock)
	service.On("AddComment", mock.Anything, "t1", "hello").
		Return(&domain.TaskComment{
			ID:        "c1",
			TaskID:    "t1",
			Contents:  "hello",
			CreatedAt: createdAt,
		}, nil).Once()

	handler := NewTaskHandler(service, nil, nil)

	ctx := authedRequest(http.MethodPatch, "/tasks/t1/comments")
	ctx.SetUserValue("id", "t1")
	ctx.Request.SetBodyString(`{"contents":"hello"}`)
	handler.AddComment(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var got domain.TaskComment
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
	require.Equal(t, "c1", got.ID)
	require.Equal(t, "hello", got.Contents)
}

func TestTaskHandler_GetComments_NotFound(t *testing.T) {
	service := new(taskServiceMock)
	service.On("ListComments", mock.Anything, "missing").
		Return(nil, domain.ErrTaskNotFound).Once()

	handler := NewTaskHandler(service, nil, nil)

	ctx := authedRequest(http.MethodGet, "/tasks/missing/comments")
	ctx.SetUserValue("id", "missing")
	handler.GetComments(ctx)

	require.Equal(t, http.StatusNotFound, ctx.Response.StatusCode())
}
