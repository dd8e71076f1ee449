package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// EnvURL 覆盖配置文件中的 url。
	EnvURL = "TRANSHIST_URL"
	// EnvToken 覆盖配置文件中的 token。
	EnvToken = "TRANSHIST_TOKEN"

	defaultTimeoutSeconds = 30
)

// Config is the only persisted config file schema.
type Config struct {
	URL            string `toml:"url"`
	Token          string `toml:"token"`
	Language       string `toml:"language,omitempty"`
	TimeoutSeconds int    `toml:"timeout_seconds,omitempty"`
	Source         string `toml:"-"`
}

func Default() Config {
	return Config{TimeoutSeconds: defaultTimeoutSeconds}
}

// Timeout 返回单次请求超时，未配置时回退到默认值。
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".transhist", "config.toml")
}

// Load 读取配置文件并叠加 TRANSHIST_URL / TRANSHIST_TOKEN 环境变量。
func Load(path string) (Config, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

// LoadFile 只读取配置文件本身，文件不存在时返回默认值。
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv(EnvURL)); env != "" {
		cfg.URL = env
	}
	if env := strings.TrimSpace(os.Getenv(EnvToken)); env != "" {
		cfg.Token = env
	}
	return cfg
}
