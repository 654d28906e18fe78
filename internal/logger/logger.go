package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global logger instance
	Logger *zap.SugaredLogger
	// Flag to track if JSON output is enabled
	JSONOutput bool
)

// Standard field names used by the seeder and gateways.
const (
	FieldComponent = "component"
	FieldTable     = "table"
	FieldCount     = "count"
	FieldProvider  = "provider"
	FieldFacultyID = "faculty_id"
	FieldDuration  = "duration_ms"
)

func init() {
	// Safe no-op logger until Initialize is called
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. JSON output is meant for machine
// consumption; otherwise a compact console encoder writes to stderr so it does
// not interleave with the CLI's colored progress on stdout.
func Initialize(jsonOutput bool, level string) error {
	JSONOutput = jsonOutput

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}

	var zapLogger *zap.Logger
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)
		config.OutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
		if err != nil {
			return err
		}
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.TimeKey = ""
		encoderConfig.CallerKey = ""
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapLogger = zap.New(
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig),
				zapcore.AddSync(os.Stderr),
				lvl,
			),
		)
	}

	Logger = zapLogger.Sugar()
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	if strings.TrimSpace(level) == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(strings.ToLower(level))
}

// Named returns a child logger tagged with a component name.
func Named(component string) *zap.SugaredLogger {
	return Logger.With(FieldComponent, component)
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
