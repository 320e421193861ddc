package logger

import "go.uber.org/zap"

// New builds the process logger: human-readable output in debug mode, JSON
// in release mode.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
