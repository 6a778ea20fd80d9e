package logger

import (
	"go.uber.org/zap"
)

// NewLogger builds the shared zap logger. "production" gives JSON output with
// sampling, anything else a human readable development logger.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
