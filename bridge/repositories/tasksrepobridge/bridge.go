// Package tasksrepobridge exposes task repository operations over HTTP.
package tasksrepobridge

import (
	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdesk/infrastructure/web"
	"github.com/jrazmi/taskdesk/sdk/logger"
)

// Config holds configuration for the task bridge.
type Config struct {
	Log        *logger.Logger
	Repository *tasksrepo.Repository
	Middleware []web.Middleware
}

type bridge struct {
	tasksRepository *tasksrepo.Repository
}

func newBridge(tasksRepository *tasksrepo.Repository) *bridge {
	return &bridge{
		tasksRepository: tasksRepository,
	}
}

// AddHttpRoutes registers all HTTP routes for tasks. The stats route is a
// literal path, so the mux matches it ahead of the {task_id} wildcard.
func AddHttpRoutes(group *web.RouteGroup, cfg Config) {
	b := newBridge(cfg.Repository)

	group.GET("/tasks", b.httpList, cfg.Middleware...)
	group.POST("/tasks", b.httpCreate, cfg.Middleware...)
	group.GET("/tasks/stats/summary", b.httpStats, cfg.Middleware...)
	group.GET("/tasks/{task_id}", b.httpGetByID, cfg.Middleware...)
	group.PUT("/tasks/{task_id}", b.httpUpdate, cfg.Middleware...)
	group.DELETE("/tasks/{task_id}", b.httpDelete, cfg.Middleware...)
}
