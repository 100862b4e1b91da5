package audio

import (
	"log/slog"
	"sync"

	"github.com/IsaacGridGainsDev/Legacy-Recorder/internal/logging"
)

var (
	serviceLogger *slog.Logger
	loggerOnce    sync.Once
)

func getLogger() *slog.Logger {
	loggerOnce.Do(func() {
		serviceLogger = logging.ForService("audio")
		if serviceLogger == nil {
			serviceLogger = slog.Default().With("service", "audio")
		}
	})
	return serviceLogger
}
