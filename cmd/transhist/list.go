package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"transhist/internal/config"
	"transhist/internal/history"
	"transhist/internal/i18n"
	log "transhist/internal/logger"
	"transhist/internal/tui/render"
)

const listTextWidth = 40

func listMain(root rootArgs, args []string) {
	if err := runList(root, args, os.Stdout, time.Now); err != nil {
		log.Fatalf("list failed: %v", err)
	}
}

func runList(root rootArgs, args []string, out io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var asJSON bool
	var from string
	fs.BoolVar(&asJSON, "json", false, "Print the raw JSON array")
	fs.StringVar(&from, "from", "", "Read a JSONL file written by `export -o` instead of calling the API")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var items []history.Item
	var cfg config.Config
	var err error
	if strings.TrimSpace(from) != "" {
		cfg, err = loadConfig(root)
		if err != nil {
			return err
		}
		if _, err := os.Stat(from); err != nil {
			return fmt.Errorf("read archive: %w", err)
		}
		items, err = (&history.Archive{Path: from}).Load()
		if err != nil {
			return fmt.Errorf("read archive %s: %w", from, err)
		}
		if items == nil {
			items = []history.Item{}
		}
	} else {
		items, cfg, err = fetchAll(root)
		if err != nil {
			return err
		}
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(items)
	}
	lang := i18n.Normalize(cfg.Language)
	if len(items) == 0 {
		_, err := fmt.Fprintln(out, lang.T(i18n.KeyEmpty))
		return err
	}
	return writeTable(out, items, lang, now())
}

func fetchAll(root rootArgs) ([]history.Item, config.Config, error) {
	client, cfg, err := clientFromRoot(root)
	if err != nil {
		return nil, cfg, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()
	items, err := client.List(ctx)
	if err != nil {
		return nil, cfg, describeAPIError("fetch history", err)
	}
	return items, cfg, nil
}

func writeTable(out io.Writer, items []history.Item, lang i18n.Language, now time.Time) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tORIGINAL\tTRANSLATED\tCREATED")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			it.ID,
			oneLine(it.OriginalText),
			oneLine(it.TranslatedText),
			lang.Ago(it.CreatedAt, now),
		)
	}
	return tw.Flush()
}

func oneLine(text string) string {
	lines := render.ClampLines(strings.Join(strings.Fields(text), " "), listTextWidth, 1)
	return lines[0]
}
