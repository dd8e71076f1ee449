package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"transhist/internal/i18n"
	log "transhist/internal/logger"
)

func deleteMain(root rootArgs, args []string) {
	if err := runDelete(root, args, os.Stdout); err != nil {
		log.Fatalf("delete failed: %v", err)
	}
}

func runDelete(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || strings.TrimSpace(fs.Arg(0)) == "" {
		return errors.New("usage: transhist delete <id>")
	}
	id := strings.TrimSpace(fs.Arg(0))

	client, cfg, err := clientFromRoot(root)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()
	if err := client.Delete(ctx, id); err != nil {
		return describeAPIError("delete "+id, err)
	}
	lang := i18n.Normalize(cfg.Language)
	_, err = fmt.Fprintf(out, "%s: %s\n", lang.T(i18n.KeyDeleted), id)
	return err
}
