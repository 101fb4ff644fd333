package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/oksasatya/task-management-api/internal/application"
	handlers "github.com/oksasatya/task-management-api/internal/interface/http"
	"github.com/oksasatya/task-management-api/internal/interface/middleware"
)

// TaskModule wires task CRUD routes behind bearer authentication.
type TaskModule struct {
	Handler *handlers.TaskHandler
	Auth    *application.AuthService
}

func NewTaskModule(h *handlers.TaskHandler, auth *application.AuthService) *TaskModule {
	return &TaskModule{Handler: h, Auth: auth}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	tasks := rg.Group("/tasks")
	tasks.Use(middleware.Auth(m.Auth))
	{
		tasks.POST("/", m.Handler.Create)
		tasks.GET("/", m.Handler.List)
		tasks.GET("/:id", m.Handler.Get)
		tasks.PUT("/:id", m.Handler.Update)
		tasks.DELETE("/:id", m.Handler.Delete)
	}
}
