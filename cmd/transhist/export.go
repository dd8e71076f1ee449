package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"transhist/internal/history"
	"transhist/internal/i18n"
	log "transhist/internal/logger"
)

func exportMain(root rootArgs, args []string) {
	if err := runExport(root, args, os.Stdout); err != nil {
		log.Fatalf("export failed: %v", err)
	}
}

// runExport 拉取完整历史并以 JSONL 写出；指定 -o 时写文件并回显条数。
func runExport(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var outPath string
	fs.StringVar(&outPath, "o", "", "Write JSONL to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	items, cfg, err := fetchAll(root)
	if err != nil {
		return err
	}

	if strings.TrimSpace(outPath) == "" {
		return history.WriteJSONL(out, items)
	}
	archive := &history.Archive{Path: outPath}
	if err := archive.Write(items); err != nil {
		return err
	}
	log.Infof("exported %d items to %s", len(items), outPath)
	lang := i18n.Normalize(cfg.Language)
	_, err = fmt.Fprintln(out, lang.Tf(i18n.KeyExported, len(items), outPath))
	return err
}
