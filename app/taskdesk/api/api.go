// Package api wires the HTTP routes for the taskdesk service.
package api

import (
	"context"
	"net/http"

	"github.com/jrazmi/taskdesk/app/taskdesk/config"
	"github.com/jrazmi/taskdesk/bridge/repositories/tasksrepobridge"
	"github.com/jrazmi/taskdesk/bridge/scaffolding/errs"
	"github.com/jrazmi/taskdesk/bridge/scaffolding/fopbridge"
	"github.com/jrazmi/taskdesk/infrastructure/postgresdb"
	"github.com/jrazmi/taskdesk/infrastructure/web"
)

// AddRoutes registers every route group on the web handler. Task routes are
// served unprefixed at the root.
func AddRoutes(app *web.WebHandler, cfg config.TaskDesk) {
	tasksrepobridge.AddHttpRoutes(app.Group(""), tasksrepobridge.Config{
		Log:        cfg.Logger,
		Repository: cfg.Repositories.Tasks,
	})

	app.GET("/health", health(cfg))
}

// health reports liveness plus database reachability.
func health(cfg config.TaskDesk) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		if err := postgresdb.StatusCheck(ctx, cfg.DB); err != nil {
			return errs.Newf(errs.Unavailable, "database not ready")
		}
		return fopbridge.NewCodeResponse("ok", "service healthy")
	}
}
