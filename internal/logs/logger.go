package logs

import (
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger *zap.SugaredLogger = zap.NewNop().Sugar()
	base   *zap.Logger
	mu     sync.Mutex
)

// Initialize points the logger at <logDir>/debug.log. Until it is called all
// output is discarded.
func Initialize(logDir, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return err
		}
		lvl = parsed
	}

	logPath := filepath.Join(logDir, "debug.log")

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{logPath}
	cfg.ErrorOutputPaths = []string{logPath}

	l, err := cfg.Build(zap.AddCaller())
	if err != nil {
		Logger.Errorf("Failed to open log file at %s: %v", logPath, err)
		return err
	}

	if base != nil {
		_ = base.Sync()
	}

	base = l
	Logger = l.Sugar().Named("memo")

	Logger.Infof("Logger initialized at: %s", logPath)

	return nil
}

// Close flushes buffered log entries.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		return base.Sync()
	}
	return nil
}
