// Package logger builds the zap loggers used by the server, worker and CLI.
package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ParseLevel converts a level name such as "debug" or "warn" to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return l, fmt.Errorf("unknown log level %q", level)
	}
	return l, nil
}

// New returns a logger writing to stderr with the given level and format.
func New(level, format string) (*zap.Logger, error) {
	l, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch format {
	case "", FormatConsole:
		format = FormatConsole
	case FormatJSON:
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	cfg := zap.Config{
		Encoding:         format,
		Level:            zap.NewAtomicLevelAt(l),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			EncodeDuration: zapcore.MillisDurationEncoder,
		},
	}
	return cfg.Build()
}

// AnalysisFields summarises a result for one log line.
func AnalysisFields(result *types.AnalysisResult) []zap.Field {
	if result == nil {
		return nil
	}
	return []zap.Field{
		zap.Int("overall_score", result.OverallScore),
		zap.Int("keyword_percentage", result.KeywordMatches.Percentage),
		zap.Int("matched_skills", len(result.MatchedSkills)),
		zap.Int("missing_skills", len(result.MissingSkills)),
		zap.Int("suggestions", len(result.Suggestions)),
		zap.Duration("processing_time", time.Duration(result.ProcessingTimeMs)*time.Millisecond),
	}
}
