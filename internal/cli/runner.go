package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todos/internal/config"
	"github.com/idilsaglam/todos/internal/fixture"
	"github.com/idilsaglam/todos/internal/logging"
	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/remote"
	"github.com/idilsaglam/todos/internal/store/jsonstore"
	"github.com/idilsaglam/todos/internal/tui"
	"github.com/idilsaglam/todos/internal/ui"
	"github.com/idilsaglam/todos/internal/version"
)

// Options carry the merged configuration and root flags.
type Options struct {
	Config     config.Config
	ConfigPath string
	Group      bool // ls: group output by pending/done
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		return doUI(opt)

	case "ls":
		fs := flag.NewFlagSet("ls", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		route := fs.String("route", opt.Config.Route, "view: / | /active | /completed (or all|active|completed)")
		group := fs.Bool("group", opt.Group, "group output by pending/done")
		if err := fs.Parse(a); err != nil {
			ui.Fail("usage: todo ls [--route /active] [--group]")
			return 2
		}
		f, err := model.ParseFilter(*route)
		if err != nil {
			ui.Fail("ls: " + err.Error())
			return 2
		}
		return doList(opt, f, *group)

	case "dump":
		if len(a) != 1 {
			ui.Fail("usage: todo dump <file>")
			return 2
		}
		return doDump(opt, a[0])

	case "serve":
		fs := flag.NewFlagSet("serve", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		file := fs.String("file", "", "fixture JSON file (default: built-in sample)")
		addr := fs.String("addr", opt.Config.Addr, "listen address")
		if err := fs.Parse(a); err != nil {
			ui.Fail("usage: todo serve [--file todos.json] [--addr host:port]")
			return 2
		}
		return doServe(opt, *file, *addr)

	case "config":
		if len(a) == 1 && a[0] == "init" {
			return doConfigInit(opt)
		}
		if len(a) != 0 {
			ui.Fail("usage: todo config [init]")
			return 2
		}
		return doConfigShow(opt)

	case "version", "--version":
		fmt.Println(version.String())
		return 0
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - a small todo list client

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  ui                 Interactive list (default)
  ls [--route R]     Fetch once and print a view (/, /active, /completed)
  dump <file>        Fetch once and write the list to a JSON file
  serve [--file F]   Serve a local read-only endpoint from a JSON file
  config [init]      Show the effective config, or write a default file
  version            Print the version

Flags:
  -config <path>     Config file (TOML)
  -endpoint <url>    Endpoint to fetch todos from
  -route <path>      Initial view
  -theme <name>      classic | neon | mono
  -no-color          Disable colour output
  -group             ls: group output by pending/done

Examples:
  todo
  todo -route /active
  todo ls --route /completed
  todo dump todos.json && todo serve --file todos.json
  todo -endpoint http://127.0.0.1:8088/todos
`)
}

// -------------- subcommand impls ----------------

func cliLogger(opt Options) *log.Logger {
	return logging.New(os.Stderr, logging.Options{
		Level:  opt.Config.LogLevel,
		Format: opt.Config.LogFormat,
	})
}

func newClient(opt Options, logger *log.Logger) *remote.Client {
	return remote.New(opt.Config.Endpoint, opt.Config.Timeout.Duration, logger)
}

func doUI(opt Options) int {
	f, err := model.ParseFilter(opt.Config.Route)
	if err != nil {
		ui.Fail("route: " + err.Error())
		return 2
	}
	logger, closer, err := logging.ForTUI(logging.Options{
		Level:  opt.Config.LogLevel,
		Format: opt.Config.LogFormat,
		File:   opt.Config.LogFile,
	})
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}
	defer closer.Close()

	client := newClient(opt, logger)
	err = tui.Run(tui.Options{
		Fetch:   client.Fetch,
		Timeout: opt.Config.Timeout.Duration,
		Route:   f,
		Logger:  logger,
	})
	if err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func fetchOnce(opt Options) ([]model.Task, bool) {
	logger := cliLogger(opt)
	ctx, cancel := context.WithTimeout(context.Background(), opt.Config.Timeout.Duration)
	defer cancel()
	tasks, err := newClient(opt, logger).Fetch(ctx)
	if err != nil {
		ui.Fail("could not load todos: " + err.Error())
		switch {
		case errors.Is(err, remote.ErrInvalidPayload):
			ui.Hint("the endpoint must return a JSON array of {id, title, isDone}")
		case errors.Is(err, remote.ErrUnexpectedStatus):
			ui.Hint("check the endpoint URL (-endpoint or TODOS_ENDPOINT)")
		}
		return nil, false
	}
	return tasks, true
}

func doList(opt Options, f model.Filter, group bool) int {
	tasks, ok := fetchOnce(opt)
	if !ok {
		return 1
	}
	ui.Panel(renderList(model.NewList(tasks), f, group))
	return 0
}

func doDump(opt Options, path string) int {
	tasks, ok := fetchOnce(opt)
	if !ok {
		return 1
	}
	if err := jsonstore.Save(path, tasks); err != nil {
		ui.Fail("dump: " + err.Error())
		return 1
	}
	ui.OK(fmt.Sprintf("wrote %d todos to %s", len(tasks), path))
	return 0
}

func doServe(opt Options, file, addr string) int {
	logger := cliLogger(opt)
	tasks, err := fixtureTasks(file, logger)
	if err != nil {
		ui.Fail("serve: " + err.Error())
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := fixture.Serve(ctx, addr, fixture.NewRouter(tasks, logger), logger); err != nil {
		ui.Fail("serve: " + err.Error())
		return 1
	}
	return 0
}

// fixtureTasks reads the file to serve, or the built-in sample when no file
// is given or it does not exist.
func fixtureTasks(file string, logger *log.Logger) ([]model.Task, error) {
	if file == "" {
		return fixture.Sample, nil
	}
	if _, err := os.Stat(file); errors.Is(err, os.ErrNotExist) {
		logger.Warn("fixture file not found, serving sample", "file", file)
		return fixture.Sample, nil
	}
	return jsonstore.Load(file)
}

func doConfigShow(opt Options) int {
	fmt.Println(ui.Paint(ui.Current().Muted, "# "+opt.ConfigPath))
	if err := toml.NewEncoder(os.Stdout).Encode(opt.Config); err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	return 0
}

func doConfigInit(opt Options) int {
	if _, err := os.Stat(opt.ConfigPath); err == nil {
		ui.Fail("config: " + opt.ConfigPath + " already exists")
		return 1
	}
	if err := config.Save(opt.ConfigPath, opt.Config); err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	ui.OK("wrote " + opt.ConfigPath)
	return 0
}

// -------------- rendering helpers --------------

func renderList(l *model.List, f model.Filter, group bool) []string {
	th := ui.Current()
	done, pending := l.CompletedCount(), l.ActiveCount()

	header := fmt.Sprintf("%s %s  %s %d  %s %d  %s %d",
		ui.Paint(th.Title, "todos"),
		ui.Paint(th.Muted, f.Path()),
		ui.Paint(th.Success, th.SymDone), done,
		ui.Paint(th.Pending, th.SymPending), pending,
		ui.Paint(th.Accent, "Total"), l.Len(),
	)

	lines := []string{header, ui.Paint(th.Muted, ui.ProgressBar(done, done+pending, 28)), ""}
	if group && f == model.FilterAll {
		lines = append(lines, groupLines(l)...)
	} else {
		lines = append(lines, flatLines(l.Filtered(f))...)
	}
	lines = append(lines, "", ui.Paint(th.Muted, model.ItemsLeft(pending)))
	return lines
}

func flatLines(tasks []model.Task) []string {
	th := ui.Current()
	if len(tasks) == 0 {
		return []string{ui.Paint(th.Muted, "no items")}
	}
	out := make([]string, 0, len(tasks))
	for i, t := range tasks {
		idx := fmt.Sprintf("%2d.", i+1)
		box := ui.Paint(th.Muted, th.BoxUnchecked)
		title := truncate(t.Title, 80)
		if t.IsDone {
			box = ui.Paint(th.Success, th.BoxChecked)
			title = ui.Paint(th.Done, title)
		}
		out = append(out, fmt.Sprintf("%s %s %s", ui.Paint(th.Muted, idx), box, title))
	}
	return out
}

func groupLines(l *model.List) []string {
	th := ui.Current()
	var lines []string
	lines = append(lines, ui.Paint(th.Accent, "Active"))
	lines = append(lines, flatLines(l.Filtered(model.FilterActive))...)
	lines = append(lines, "")
	lines = append(lines, ui.Paint(th.Accent, "Completed"))
	lines = append(lines, flatLines(l.Filtered(model.FilterCompleted))...)
	return lines
}

func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n-3]) + "..."
}
