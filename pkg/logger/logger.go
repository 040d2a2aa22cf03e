package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu  sync.Mutex
	log = zap.NewNop()
)

// Init 初始化全局 logger；mode 为 debug 时输出开发格式
func Init(mode string) error {
	var (
		l   *zap.Logger
		err error
	)
	if mode == "debug" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	mu.Lock()
	log = l
	mu.Unlock()
	return nil
}

// L 返回全局 logger
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { L().Fatal(msg, fields...) }

// Sync 进程退出前刷新缓冲
func Sync() { _ = L().Sync() }
