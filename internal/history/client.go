package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"transhist/internal/logger"

	"github.com/google/uuid"
)

const (
	historyPath     = "/history"
	requestIDHeader = "X-Request-ID"
	errorBodyLimit  = 512
)

// Options 配置 Client。
type Options struct {
	BaseURL    string
	Token      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client 访问后端的翻译历史接口：
//
//	GET    {base}/history        列出全部记录
//	DELETE {base}/history/{id}   删除单条记录
//
// 两者都携带 Bearer token；非 2xx 一律视为失败，不重试。
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logger.LogEntry
}

func New(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, ErrNoEndpoint
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse history api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("history api url must be http(s), got %q", base)
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL: base,
		token:   strings.TrimSpace(opts.Token),
		http:    hc,
		log:     logger.Named("history"),
	}, nil
}

// WithToken 返回共享连接但使用新凭证的副本。
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = strings.TrimSpace(token)
	return &cp
}

// Token 返回当前使用的凭证。
func (c *Client) Token() string {
	return c.token
}

// List 拉取当前用户的全部翻译历史，保持后端返回顺序。
func (c *Client) List(ctx context.Context) ([]Item, error) {
	resp, err := c.do(ctx, http.MethodGet, historyPath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		c.log.WithError(err).Warn("decode history list failed")
		return nil, fmt.Errorf("decode history list: %w", err)
	}
	if items == nil {
		items = []Item{}
	}
	c.log.WithField("count", len(items)).Debug("fetched history")
	return items, nil
}

// Delete 删除单条记录；响应体被忽略，只看状态码。
func (c *Client) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrEmptyID
	}
	resp, err := c.do(ctx, http.MethodDelete, historyPath+"/"+url.PathEscape(id))
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	c.log.WithField("id", id).Debug("deleted history item")
	return nil
}

// do 发送请求并在非 2xx 时返回 *StatusError；成功时由调用方关闭 Body。
func (c *Client) do(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	logger.APILog.Request(method, path, requestID)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.APILog.Error(method, path, requestID, err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	logger.APILog.Response(method, path, requestID, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp, nil
}
