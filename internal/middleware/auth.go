package middleware

import (
	"context"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/AxonC/auctor/domain"
	"github.com/AxonC/auctor/pkg/httpcontext"
)

// HeaderUsername is where the verified caller identity is forwarded to
// handlers. Any client-supplied value is discarded before authorization.
const HeaderUsername = "X-Username"

// Authorizer resolves a bearer token to the user it was issued for.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*domain.User, error)
}

// BearerAuth wraps a handler so that only requests carrying a valid bearer
// token reach it. Invalid, expired or absent tokens short-circuit with 401
// before any persistence logic runs.
func BearerAuth(gate Authorizer, adapter *httpcontext.Adapter, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Request.Header.Del(HeaderUsername)

			token := extractToken(ctx)
			if token == "" {
				unauthorized(ctx)
				return
			}

			stdCtx, cancel := attach(adapter, ctx)
			defer cancel()

			user, err := gate.Authorize(stdCtx, token)
			if err != nil {
				logger.Warn("request not authorized", zap.Error(err))
				unauthorized(ctx)
				return
			}

			ctx.Request.Header.Set(HeaderUsername, user.Username)
			next(ctx)
		}
	}
}

func attach(adapter *httpcontext.Adapter, ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if adapter != nil {
		return adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func unauthorized(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("WWW-Authenticate", "Bearer")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
}
