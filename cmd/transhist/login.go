package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"transhist/internal/auth"
	"transhist/internal/config"
	"transhist/internal/i18n"
	log "transhist/internal/logger"
)

func loginMain(root rootArgs, args []string) {
	if err := runLogin(root, args, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("login failed: %v", err)
	}
}

func runLogin(root rootArgs, args []string, in io.Reader, out io.Writer) error {
	if len(args) > 0 && args[0] == "status" {
		return runLoginStatus(root, out, time.Now)
	}

	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var withToken bool
	fs.BoolVar(&withToken, "with-token", false, "Read the token from stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadFileConfig(root.cfgPath)
	if err != nil {
		return err
	}
	lang := outputLanguage(root, cfg)

	var token string
	switch {
	case withToken:
		token, err = readTokenFromStdin(in)
	case strings.TrimSpace(os.Getenv(config.EnvToken)) != "":
		token = strings.TrimSpace(os.Getenv(config.EnvToken))
	default:
		token, err = promptToken(in, out, lang)
	}
	if err != nil {
		return err
	}

	cfg.Token = token
	if err := config.Save(root.cfgPath, cfg); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	_, err = fmt.Fprintln(out, lang.T(i18n.KeyTokenSaved))
	return err
}

func runLoginStatus(root rootArgs, out io.Writer, now func() time.Time) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	lang := i18n.Normalize(cfg.Language)
	if strings.TrimSpace(cfg.Token) == "" {
		_, err = fmt.Fprintln(out, lang.T(i18n.KeyNotLoggedIn))
		return err
	}
	line := lang.T(i18n.KeyTokenConfigured)
	info, err := auth.Inspect(cfg.Token)
	if err != nil {
		_, err = fmt.Fprintln(out, line)
		return err
	}
	if info.Subject != "" {
		line += lang.Tf(i18n.KeyTokenOwner, info.Subject)
	}
	switch {
	case info.ExpiresAt.IsZero():
	case info.Expired(now()):
		line += lang.Tf(i18n.KeyTokenExpired, lang.Ago(info.ExpiresAt, now()))
	default:
		line += lang.Tf(i18n.KeyTokenExpires, lang.Ago(info.ExpiresAt, now()))
	}
	_, err = fmt.Fprintln(out, line)
	return err
}

func logoutMain(root rootArgs, args []string) {
	if err := runLogout(root, os.Stdout); err != nil {
		log.Fatalf("logout failed: %v", err)
	}
}

func runLogout(root rootArgs, out io.Writer) error {
	cfg, err := loadFileConfig(root.cfgPath)
	if err != nil {
		return err
	}
	cfg.Token = ""
	if err := config.Save(root.cfgPath, cfg); err != nil {
		return fmt.Errorf("clear stored token: %w", err)
	}
	_, err = fmt.Fprintln(out, outputLanguage(root, cfg).T(i18n.KeyLoggedOut))
	return err
}

func loadFileConfig(path string) (config.Config, error) {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// outputLanguage 取文件配置叠加 -c 覆盖后的界面语言。
func outputLanguage(root rootArgs, cfg config.Config) i18n.Language {
	return i18n.Normalize(config.ApplyKVOverrides(cfg, root.overrides).Language)
}

func readTokenFromStdin(in io.Reader) (string, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read token from stdin: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", errors.New("no token provided on stdin")
	}
	return token, nil
}

func promptToken(in io.Reader, out io.Writer, lang i18n.Language) (string, error) {
	fmt.Fprint(out, lang.T(i18n.KeyEnterToken))
	reader := bufio.NewReader(in)
	token, _ := reader.ReadString('\n')
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errors.New("empty token provided")
	}
	return token, nil
}
