package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ZapConfig struct {
	// Debug enables debug level and the development console encoder
	Debug bool
	// File additionally writes JSON logs to a rotated file
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// NewZapLogger creates the diagnostic logger writing to stderr
// and, if configured, to a rotated log file.
func NewZapLogger(conf *ZapConfig) *zap.Logger {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	encoderConf := zap.NewProductionEncoderConfig()
	if conf.Debug {
		level.SetLevel(zap.DebugLevel)
		encoderConf = zap.NewDevelopmentEncoderConfig()
	}
	encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConf), zapcore.Lock(os.Stderr), level),
	}
	if len(conf.File) > 0 {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    conf.MaxSizeMB,
			MaxBackups: conf.MaxBackups,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConf), fileWriter, level))
	}
	return zap.New(zapcore.NewTee(cores...))
}
