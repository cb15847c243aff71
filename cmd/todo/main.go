package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todos/internal/cli"
	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	cfgPath := flag.String("config", config.DefaultPath(), "config file (TOML)")
	endpoint := flag.String("endpoint", "", "endpoint to fetch todos from")
	route := flag.String("route", "", "initial view: / | /active | /completed")
	theme := flag.String("theme", "", "classic | neon | mono")
	logLevel := flag.String("log-level", "", "debug | info | warn | error")
	logFile := flag.String("log-file", "", "write logs here while the TUI runs")
	timeout := flag.Duration("timeout", 0, "fetch timeout")
	noColor := flag.Bool("no-color", false, "disable colour output")
	groupPending := flag.Bool("group", false, "ls: group output by pending/done")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
	overrideString(&cfg.Endpoint, *endpoint)
	overrideString(&cfg.Route, *route)
	overrideString(&cfg.Theme, *theme)
	overrideString(&cfg.LogLevel, *logLevel)
	overrideString(&cfg.LogFile, *logFile)
	if *timeout > 0 {
		cfg.Timeout = config.Duration{Duration: *timeout}
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	ui.SetTheme(cfg.Theme)
	ui.SetColorForcing(false, *noColor || os.Getenv("NO_COLOR") != "")

	code := cli.Run(flag.Args(), cli.Options{
		Config:     cfg,
		ConfigPath: *cfgPath,
		Group:      *groupPending,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
