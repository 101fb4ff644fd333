package router

import (
	"github.com/oksasatya/task-management-api/internal/application"
	"github.com/oksasatya/task-management-api/internal/container"
	"github.com/oksasatya/task-management-api/internal/infrastructure/mongodb"
	handlers "github.com/oksasatya/task-management-api/internal/interface/http"
	"github.com/oksasatya/task-management-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	users := mongodb.NewUserRepository(container.GetMongo())
	tasks := mongodb.NewTaskRepository(container.GetMongo())

	authSvc := application.NewAuthService(users, container.GetJWT(), container.GetLogger())
	taskSvc := application.NewTaskService(tasks, container.GetLogger())

	authHandler := handlers.NewAuthHandler(authSvc, container.GetLogger())
	taskHandler := handlers.NewTaskHandler(taskSvc, container.GetLogger())

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewTaskModule(taskHandler, authSvc))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
