package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jrazmi/taskdesk/app/taskdesk/api"
	"github.com/jrazmi/taskdesk/app/taskdesk/config"
	"github.com/jrazmi/taskdesk/bridge/scaffolding/mid"
	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskdesk/infrastructure/postgresdb"
	"github.com/jrazmi/taskdesk/infrastructure/web"
	"github.com/jrazmi/taskdesk/sdk/logger"
	"github.com/jrazmi/taskdesk/sdk/telemetry"
)

var build = "develop"
var appName = "TASKDESK"

func main() {
	godotenv.Load()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Println("unable to configure logging:", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	tel := telemetry.NewTelemetry()

	// :*: START DATABASES :*:
	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	tasksRepository := tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pg))

	cfg := config.TaskDesk{
		Build:  build,
		Logger: log,
		Repositories: config.Repositories{
			Tasks: tasksRepository,
		},
		Telemetry: tel,
		DB:        pg,
	}

	webHandler, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(log.Logger),
		web.WithTelemetry(tel),
		web.WithGlobalMiddleware(
			mid.Logger(log, tel),
			mid.Errors(log),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	if err != nil {
		return fmt.Errorf("configuring web handler: %w", err)
	}

	api.AddRoutes(webHandler, cfg)

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(webHandler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("configuring web server: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
