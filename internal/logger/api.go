package logger

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// APILogger 记录与历史记录后端之间的 HTTP 往返。
type APILogger interface {
	Request(method, path, requestID string)
	Response(method, path, requestID string, status int, elapsed time.Duration)
	Error(method, path, requestID string, err error)
}

// APILog 是全局唯一的 API 日志器实例。
var APILog APILogger = NewAPILogger(nil)

// SetGlobalAPILogger 覆盖全局 API 日志实例，传入 nil 将重置为默认实现。
func SetGlobalAPILogger(l APILogger) {
	if l == nil {
		l = NewAPILogger(nil)
	}
	APILog = l
}

// StdAPILogger 使用 logrus 输出日志。
type StdAPILogger struct {
	logger *logrus.Entry
}

// NewAPILogger 构造默认的 API 日志记录器，nil 时挂到全局 logger。
func NewAPILogger(l *Logger) *StdAPILogger {
	if l == nil {
		l = root()
	}
	return &StdAPILogger{logger: logrus.NewEntry(l).WithField("component", "api")}
}

func (l *StdAPILogger) Request(method, path, requestID string) {
	l.printf(logrus.InfoLevel, requestID, "-> %s %s", method, sanitize(path))
}

func (l *StdAPILogger) Response(method, path, requestID string, status int, elapsed time.Duration) {
	level := logrus.InfoLevel
	if status < 200 || status > 299 {
		level = logrus.WarnLevel
	}
	l.printf(level, requestID, "<- %s %s status=%d elapsed=%s", method, sanitize(path), status, elapsed.Round(time.Millisecond))
}

func (l *StdAPILogger) Error(method, path, requestID string, err error) {
	l.printf(logrus.ErrorLevel, requestID, "!! %s %s err=%v", method, sanitize(path), err)
}

// NoopAPILogger 忽略所有日志输出。
type NoopAPILogger struct{}

func (NoopAPILogger) Request(method, path, requestID string) {}
func (NoopAPILogger) Response(method, path, requestID string, status int, elapsed time.Duration) {
}
func (NoopAPILogger) Error(method, path, requestID string, err error) {}

func (l *StdAPILogger) printf(level logrus.Level, requestID string, format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	if !l.logger.Logger.IsLevelEnabled(level) {
		return
	}

	entry := l.logger
	if requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}
	if caller := findCaller(); caller != "" {
		entry = entry.WithField("caller", caller)
	}
	entry.Log(level, fmt.Sprintf(format, args...))
}

func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\n", `\n`)
	text = strings.ReplaceAll(text, "\r", `\r`)
	return text
}

// findCaller 跳过本文件的栈帧，返回真正发起请求的位置。
func findCaller() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !strings.HasSuffix(frame.File, "logger/api.go") {
			return fmt.Sprintf("%s:%d", shortenFilePath(frame.File), frame.Line)
		}
		if !more {
			break
		}
	}
	return ""
}
