// Package logger 封装 zap，为各系统提供统一的结构化日志
//
// 日志消息沿用 "[SystemName] message" 的前缀风格，键值对作为结构化字段输出。
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 日志记录器
type Logger struct {
	SugaredLogger *zap.SugaredLogger
}

// ModeFor 前端的日志模式：verbose 为 "dev"，否则为仅输出 warn 及以上的 "quiet"
func ModeFor(verbose bool) string {
	if verbose {
		return "dev"
	}
	return "quiet"
}

// New 根据模式创建日志记录器
//
// 参数：
//   - mode: "dev"/"development" 输出 debug 级别的可读日志；
//     "prod"/"production" 输出 JSON 格式；其他值等同于 "quiet"（仅 warn 及以上）
//   - outputs: 可选输出路径，默认 stderr（终端界面独占屏幕时改写到文件）
func New(mode string, outputs ...string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "dev", "development":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "prod", "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	default:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	if len(outputs) > 0 {
		cfg.OutputPaths = outputs
		cfg.ErrorOutputPaths = outputs
	}
	zl, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: zl.Sugar()}, nil
}

// Nop 返回不输出任何内容的日志记录器（测试和降级模式使用）
func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// OrNop 在 l 为 nil 时返回 Nop()
func OrNop(l *Logger) *Logger {
	if l == nil {
		return Nop()
	}
	return l
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}

func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Debugw(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Infow(msg, keysAndValues...)
}

func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Warnw(msg, keysAndValues...)
}

func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.SugaredLogger.Errorw(msg, keysAndValues...)
}

// With 返回附带固定字段的子记录器
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(keysAndValues...)}
}
