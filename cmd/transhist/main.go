package main

import (
	"fmt"
	"os"

	"transhist/internal/config"
	"transhist/internal/logger"
	"transhist/internal/tui"
)

func main() {
	logger.Configure()
	if logFile, _, err := logger.SetupFile(logger.DefaultLogPath); err != nil {
		logger.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}
	if entry, apiCloser, _, err := logger.SetupComponentFile("api", logger.DefaultAPILogPath); err != nil {
		logger.Warnf("failed to initialize api log (%s): %v", logger.DefaultAPILogPath, err)
	} else {
		logger.SetGlobalAPILogger(logger.NewAPILogger(entry.Logger))
		if apiCloser != nil {
			defer apiCloser.Close()
		}
	}

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		logger.Fatalf("parse args: %v", err)
	}
	if err := logger.SetLevel(root.logLevel); err != nil {
		logger.Warnf("%v", err)
	}
	if len(rest) > 0 {
		switch rest[0] {
		case "list", "ls":
			listMain(root, rest[1:])
			return
		case "delete", "rm":
			deleteMain(root, rest[1:])
			return
		case "export":
			exportMain(root, rest[1:])
			return
		case "login":
			loginMain(root, rest[1:])
			return
		case "logout":
			logoutMain(root, rest[1:])
			return
		default:
			logger.Fatalf("unknown command %q (want list, delete, export, login or logout)", rest[0])
		}
	}
	interactiveMain(root)
}

func interactiveMain(root rootArgs) {
	cfg, err := loadConfig(root)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	res, err := tui.Run(tuiOptions(root, cfg))
	if err != nil {
		logger.Fatalf("tui failed: %v", err)
	}
	if res.Selected != nil {
		fmt.Println(res.Selected.TranslatedText)
	}
}

// tuiOptions 组装交互界面参数；url 缺失时仍进入界面，由界面提示加载失败。
func tuiOptions(root rootArgs, cfg config.Config) tui.Options {
	r := &reloader{root: root, cfg: cfg}
	opts := tui.Options{
		Language:  cfg.Language,
		Timeout:   cfg.Timeout(),
		Inline:    root.inline,
		ReloadAPI: r.reload,
	}
	client, err := buildClient(cfg)
	if err != nil {
		logger.Warnf("history api unavailable: %v", err)
		return opts
	}
	r.client = client
	opts.API = client
	return opts
}
