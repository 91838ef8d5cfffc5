package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sitesspectral/spectral-go/internal/infrastructure/config"
)

// New builds a zap logger from the logging configuration.
func New(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "text" {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	sink, err := openSink(cfg)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, sink, level)

	var opts []zap.Option
	if cfg.IncludeCaller {
		opts = append(opts, zap.AddCaller())
	}
	if cfg.IncludeStacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	logger := zap.New(core, opts...)
	if cfg.Service != "" {
		logger = logger.With(zap.String("service", cfg.Service))
	}
	return logger, nil
}

// MustNew builds a logger or panics. Intended for main() wiring.
func MustNew(cfg config.LoggingConfig) *zap.Logger {
	logger, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}

func openSink(cfg config.LoggingConfig) (zapcore.WriteSyncer, error) {
	switch cfg.Output {
	case "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "file":
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("logging output is 'file' but file_path is empty")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		if cfg.Rotation.Enabled {
			return zapcore.AddSync(&lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.Rotation.MaxSize,
				MaxBackups: cfg.Rotation.MaxBackups,
				MaxAge:     cfg.Rotation.MaxAge,
				Compress:   cfg.Rotation.Compress,
			}), nil
		}
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return zapcore.Lock(f), nil
	default:
		return zapcore.Lock(os.Stdout), nil
	}
}
