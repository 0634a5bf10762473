package configslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Log is the structured logger.
	Log = zap.NewNop()
	// SLog is the sugared logger for printf-style calls.
	SLog = Log.Sugar()
)

// InitLogger builds the global loggers. Production uses the JSON encoder,
// every other environment the colored console encoder.
func InitLogger(production bool, level string) {
	var zc zap.Config
	if production {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := zc.Build(zap.AddCaller())
	if err != nil {
		// fall back to no-op rather than crash on a bad config
		logger = zap.NewNop()
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered entries; call it deferred from main.
func SyncLogger() {
	_ = Log.Sync()
}
