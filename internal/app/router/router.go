package router

import (
	"github.com/gin-gonic/gin"

	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	"task_backend/internal/platform/http/handler"
	jwtmw "task_backend/internal/platform/jwt"
)

// NewRouter wires the route table. gin.Default() installs the recovery
// middleware, so a panicking request returns 500 instead of taking the
// process down.
func NewRouter(auth *authhandler.AuthHandler, tasks *taskhandler.TaskHandler, tokens *jwtmw.Manager) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.Any("/healthz", handler.Health)
	r.POST("/api/auth/register", auth.Register)
	r.POST("/api/auth/login", auth.Login)

	// Every task route requires a valid bearer token
	authed := r.Group("/api/tasks")
	authed.Use(jwtmw.AuthRequired(tokens))
	{
		authed.GET("", tasks.List)
		authed.POST("", tasks.Create)
		authed.PUT("/:id", tasks.Update)
		authed.DELETE("/:id", tasks.Delete)
		authed.PATCH("/:id/toggle", tasks.Toggle)
	}

	return r
}
