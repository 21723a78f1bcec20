package application

import (
	"io"

	"github.com/bnema/serverpacks/internal/ports"
	"github.com/charmbracelet/log"
)

func loggerOrDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}

func metricsOrNoop(metrics ports.SyncMetrics) ports.SyncMetrics {
	if metrics == nil {
		return ports.NoopMetrics{}
	}
	return metrics
}
