package mid

import (
	"context"
	"net/http"
	"time"

	"github.com/jrazmi/taskdesk/infrastructure/web"
	"github.com/jrazmi/taskdesk/sdk/logger"
	"github.com/jrazmi/taskdesk/sdk/telemetry"
)

// Logger writes information about the request to the logs.
func Logger(log *logger.Logger, tel telemetry.Telemetry) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			now := time.Now()

			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path = path + "?" + r.URL.RawQuery
			}

			log.InfoContext(ctx, "request started",
				"trace_id", tel.GetTraceID(ctx),
				"method", r.Method,
				"path", path,
				"remoteaddr", r.RemoteAddr)

			resp := next(ctx, r)

			log.InfoContext(ctx, "request completed",
				"trace_id", tel.GetTraceID(ctx),
				"method", r.Method,
				"path", path,
				"since", time.Since(now).String())

			return resp
		}
	}
}
