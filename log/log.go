package log

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	level  zap.AtomicLevel
)

func init() {
	encConfig := zap.NewDevelopmentEncoderConfig()
	encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encConfig.EncodeCaller = nil
	encConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.StampMicro))
	}

	encoder := zapcore.NewConsoleEncoder(encConfig)

	// Logs go to stderr so that commands can write their output to stdout.
	stderr, _, err := zap.Open("stderr")
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if os.Getenv("DEBUG") != "" {
		level.SetLevel(zapcore.DebugLevel)
	}

	core := zapcore.NewCore(encoder, stderr, level)
	logger = zap.New(core, zap.ErrorOutput(stderr))
}

// SetDevelopment enables debug logs for development builds.
func SetDevelopment(development bool) {
	if development {
		level.SetLevel(zapcore.DebugLevel)
	}
}

// S returns a *[zap.SugaredLogger].
func S() *zap.SugaredLogger {
	return logger.Sugar()
}

// L returns a *[zap.Logger].
func L() *zap.Logger {
	return logger
}
