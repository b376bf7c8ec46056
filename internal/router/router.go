package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/AxonC/auctor/api/handler"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Login is the only unauthenticated resource route. User registration
	// sits behind the middleware: only authenticated callers may create
	// accounts, so the first account has to be seeded out of band.
	r.POST("/token", handlers.Auth.Token)
	r.POST("/users", authMiddleware(handlers.Auth.CreateUser))

	r.GET("/tasks/mine", authMiddleware(handlers.Task.GetMine))
	r.POST("/tasks", authMiddleware(handlers.Task.Create))
	r.GET("/tasks/{id}", authMiddleware(handlers.Task.Get))
	r.GET("/tasks/{id}/comments", authMiddleware(handlers.Task.GetComments))
	r.PATCH("/tasks/{id}/comments", authMiddleware(handlers.Task.AddComment))
	r.PATCH("/tasks/{id}/complete", authMiddleware(handlers.Task.Complete))
	r.DELETE("/tasks/{id}/complete", authMiddleware(handlers.Task.Uncomplete))

	return r
}
