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

// AuthService is the slice of the auth gate the handlers need.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password, name string) (*domain.User, error)
}

type AuthHandler struct {
	baseHandler
	auth AuthService
}

func NewAuthHandler(auth AuthService, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		auth:        auth,
	}
}

// Token handles POST /token. Credentials arrive as form fields; either an
// unknown username or a wrong password yields the same 400.
func (h *AuthHandler) Token(ctx *fasthttp.RequestCtx) {
	username := string(ctx.PostArgs().Peek("username"))
	password := string(ctx.PostArgs().Peek("password"))
	if username == "" || password == "" {
		h.respondError(ctx, domain.ErrBadCredentials)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	token, err := h.auth.Login(stdCtx, username, password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// CreateUser handles POST /users. Registration sits behind the
// authorization middleware, so only authenticated callers reach it.
func (h *AuthHandler) CreateUser(ctx *fasthttp.RequestCtx) {
	if h.callerUsername(ctx) == "" {
		return
	}

	var req transport.UserPayload
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil || req.Username == "" || req.Password == "" {
		h.respondJSON(ctx, http.StatusUnprocessableEntity,
			transport.NewError(string(domain.ErrCodeInvalid), "invalid payload"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.auth.Register(stdCtx, req.Username, req.Password, req.Name)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, user)
}
