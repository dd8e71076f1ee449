package history

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyID 在未指定记录 id 时返回，不会发出请求。
	ErrEmptyID = errors.New("history item id is empty")
	// ErrNoEndpoint 表示未配置后端地址。
	ErrNoEndpoint = errors.New("history api url is not configured")
)

// StatusError 表示后端返回了非 2xx 状态码。
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	text := http.StatusText(e.StatusCode)
	if text == "" {
		text = "unknown status"
	}
	if e.Body == "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, text)
	}
	return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.StatusCode, text, e.Body)
}

// IsUnauthorized 判断错误是否来自 401/403，仅用于日志与 CLI 提示。
func IsUnauthorized(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	return se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden
}
