package config

import (
	"github.com/jrazmi/taskdesk/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdesk/infrastructure/postgresdb"
	"github.com/jrazmi/taskdesk/sdk/logger"
	"github.com/jrazmi/taskdesk/sdk/telemetry"
)

// Repositories represents the repositories this instance of taskdesk
// needs.
type Repositories struct {
	Tasks *tasksrepo.Repository
}

// TaskDesk is the overall configuration for the taskdesk application.
type TaskDesk struct {
	Build  string
	Logger *logger.Logger

	Repositories Repositories
	Telemetry    telemetry.Telemetry

	// Datastores
	DB *postgresdb.Pool
}
