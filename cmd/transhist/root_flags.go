package main

import (
	"flag"
	"io"
)

type rootArgs struct {
	overrides []string
	cfgPath   string
	inline    bool
	logLevel  string
}

func parseRootArgs(args []string) (rootArgs, []string, error) {
	fs := flag.NewFlagSet("transhist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var overrides stringSlice
	var root rootArgs
	fs.Var(&overrides, "c", "Override config value key=value (repeatable, e.g. -c url=http://127.0.0.1:3000/api)")
	fs.StringVar(&root.cfgPath, "config", "", "Path to config file (default ~/.transhist/config.toml)")
	fs.BoolVar(&root.inline, "inline", false, "Render without the alternate screen")
	fs.StringVar(&root.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	if err := fs.Parse(args); err != nil {
		return rootArgs{}, nil, err
	}
	root.overrides = append([]string{}, overrides...)
	return root, fs.Args(), nil
}
