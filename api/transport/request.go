package transport

import "github.com/AxonC/auctor/domain"

// UserPayload is the body of POST /users.
type UserPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// TaskRequest is the body of POST /tasks. The owner is taken from the
// authorized caller, never from the payload.
type TaskRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Priority    int         `json:"priority"`
	Duration    int         `json:"duration"`
	DueDate     domain.Date `json:"due_date"`
}

// CommentRequest is the body of PATCH /tasks/{id}/comments.
type CommentRequest struct {
	Contents string `json:"contents"`
}
