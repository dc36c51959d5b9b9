// Package obslog wraps zap for the driver's internal tracing. It is
// deliberately separate from internal/diag: diag carries user-facing
// name-analysis diagnostics, obslog carries operational trace/debug
// output for whoever runs the CLI with --verbose.
package obslog

import "go.uber.org/zap"

type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New builds a console logger at debug level when verbose is true, warn
// level otherwise.
func New(verbose bool) (*Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: z.Sugar(), base: z}, nil
}

// NewNop returns a logger that discards everything, for tests and for
// callers that don't want tracing wired up.
func NewNop() *Logger {
	z := zap.NewNop()
	return &Logger{SugaredLogger: z.Sugar(), base: z}
}

// Sync flushes any buffered log entries. Callers should defer it right
// after constructing a non-nop Logger.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
