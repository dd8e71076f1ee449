package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"transhist/internal/config"
	"transhist/internal/history"
	log "transhist/internal/logger"
	"transhist/internal/tui"
)

// loadConfig 读取配置文件并叠加 -c 覆盖项。
func loadConfig(root rootArgs) (config.Config, error) {
	cfg, err := config.Load(root.cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return config.ApplyKVOverrides(cfg, root.overrides), nil
}

func buildClient(cfg config.Config) (*history.Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, errors.New("missing url: set " + config.EnvURL + " or configure url in ~/.transhist/config.toml")
	}
	return history.New(history.Options{
		BaseURL: cfg.URL,
		Token:   cfg.Token,
		Timeout: cfg.Timeout(),
	})
}

func clientFromRoot(root rootArgs) (*history.Client, config.Config, error) {
	cfg, err := loadConfig(root)
	if err != nil {
		return nil, cfg, err
	}
	client, err := buildClient(cfg)
	if err != nil {
		return nil, cfg, err
	}
	return client, cfg, nil
}

// describeAPIError 将后端错误转为面向终端用户的提示。
func describeAPIError(action string, err error) error {
	if history.IsUnauthorized(err) {
		return fmt.Errorf("%s: not authorized; run `transhist login` to store a valid token", action)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// reloader 在 ctrl+r 时重新读取配置；地址与超时未变时复用现有连接，只替换 token。
type reloader struct {
	root rootArgs

	mu     sync.Mutex
	cfg    config.Config
	client *history.Client
}

func (r *reloader) reload() (tui.HistoryAPI, error) {
	next, err := loadConfig(r.root)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil && sameEndpoint(r.cfg, next) {
		if r.client.Token() == strings.TrimSpace(next.Token) {
			log.Infof("credentials unchanged in %s; refetching", next.Source)
		} else {
			log.Infof("token reloaded from %s", next.Source)
		}
		r.client = r.client.WithToken(next.Token)
		r.cfg = next
		return r.client, nil
	}

	client, err := buildClient(next)
	if err != nil {
		return nil, err
	}
	log.Infof("history api reloaded from %s", next.Source)
	r.client = client
	r.cfg = next
	return client, nil
}

func sameEndpoint(a, b config.Config) bool {
	trim := func(u string) string { return strings.TrimRight(strings.TrimSpace(u), "/") }
	return trim(a.URL) == trim(b.URL) && a.Timeout() == b.Timeout()
}
