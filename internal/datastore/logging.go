package datastore

import (
	"log/slog"
	"sync"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/logging"
)

var (
	serviceLogger *slog.Logger
	loggerOnce    sync.Once
)

// getLogger returns the datastore service logger, falling back to the
// default logger when logging.Init has not run (tests).
func getLogger() *slog.Logger {
	loggerOnce.Do(func() {
		serviceLogger = logging.ForService("datastore")
		if serviceLogger == nil {
			serviceLogger = slog.Default().With("service", "datastore")
		}
	})
	return serviceLogger
}
