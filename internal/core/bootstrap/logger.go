package bootstrap

import (
	"go.uber.org/zap"

	"artist-portfolio/internal/core/config"
	"artist-portfolio/internal/core/logger"
)

// Logger builds the process logger from the log section. file, when set,
// adds a rotating sink next to stdout.
func Logger(c config.Log) (*zap.Logger, func()) {
	if c.File == "" {
		return logger.New(c.Level, c.JSON)
	}
	return logger.NewWithRotate(c.Level, c.JSON, c.File, c.MaxSizeMB, c.MaxBackups, c.MaxAgeDays, c.Compress)
}
