package logger

import (
	"os"
	"strings"
	"sync"

	"signalrelay/conf"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field 日志键值对
type Field = zap.Field

var (
	mu     sync.RWMutex
	base   = zap.NewNop()
	sugar  = base.Sugar()
	levels = map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"fatal": zapcore.FatalLevel,
	}
)

// InitLogger 初始化全局日志，文件输出使用lumberjack切割
func InitLogger(cfg *conf.LogConfig, appName string) {
	level, ok := levels[strings.ToLower(cfg.Level)]
	if !ok {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	if cfg.TimeFormat != "" {
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)
	} else {
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	var cores []zapcore.Core
	if cfg.FileName != "" {
		w := &lumberjack.Logger{
			Filename:   cfg.FileName,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), level))
	}
	if cfg.Console || len(cores) == 0 {
		consoleCfg := encCfg
		consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stdout), level))
	}

	l := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).
		With(zap.String("app", appName))

	mu.Lock()
	base = l
	sugar = l.Sugar()
	mu.Unlock()
}

// Sync 刷新缓冲区，进程退出前调用
func Sync() {
	_ = L().Sync()
}

// L 返回底层zap logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

func s() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Pair(key string, v any) Field {
	return zap.Any(key, v)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Debug(msg string, fields ...Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...Field) { L().Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { L().Fatal(msg, fields...) }

func Debugf(template string, args ...any) { s().Debugf(template, args...) }
func Infof(template string, args ...any)  { s().Infof(template, args...) }
func Warnf(template string, args ...any)  { s().Warnf(template, args...) }
func Errorf(template string, args ...any) { s().Errorf(template, args...) }
func Fatalf(template string, args ...any) { s().Fatalf(template, args...) }
