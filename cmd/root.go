// Package cmd implements the CLI command structure for priotasks.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/priotasks/internal/config"
	"github.com/nibzard/priotasks/internal/logging"
	"github.com/nibzard/priotasks/internal/session"
	"github.com/nibzard/priotasks/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// streams are the process streams a command reads and writes.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

// Run executes the priotasks CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr})
}

func run(ctx context.Context, args []string, std streams) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("priotasks", flag.ContinueOnError)
	fs.SetOutput(std.err)
	fs.Usage = func() {
		printUsage(fs, std.err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, std.out)
		return nil
	}
	if *showVersion {
		return versionCommand(std.out)
	}

	// No args or a leading flag means the default command
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs, std)
	case "batch":
		return batchCommand(ctx, cfg, remainingArgs, std)
	case "logs":
		return logsCommand(ctx, cfg, remainingArgs, std)
	case "config":
		return configCommand(cws, remainingArgs, std)
	case "version":
		return versionCommand(std.out)
	case "help":
		printUsage(fs, std.out)
		return nil
	default:
		fmt.Fprintf(std.err, "Unknown command: %s\n", subcommand)
		printUsage(fs, std.err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// tuiCommand launches the interactive task list.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string, std streams) error {
	fs := flag.NewFlagSet("priotasks tui", flag.ContinueOnError)
	fs.SetOutput(std.err)
	inline := fs.Bool("inline", false, "Render inline instead of using the alternate screen")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	logger := logging.Discard()
	if cfg.LogDir != "" {
		sessionLog, err := logging.OpenSessionLog(cfg.LogDir)
		if err != nil {
			return fmt.Errorf("opening session log: %w", err)
		}
		defer sessionLog.Close()
		logger = newLogger(cfg, sessionLog.Writer())
		logger.Info("session started", "session", sessionLog.SessionID, "version", Version)
	}

	sess := session.New(sessionOptions(cfg), logger)
	err := ui.RunTUI(ctx, cfg, sess, ui.WithAltScreen(!*inline))
	logger.Info("session ended", "tasks", sess.Len())
	if err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

// batchCommand replays line commands from a file or stdin.
func batchCommand(ctx context.Context, cfg *config.Config, args []string, std streams) error {
	fs := flag.NewFlagSet("priotasks batch", flag.ContinueOnError)
	fs.SetOutput(std.err)
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}

	in := std.in
	name := "stdin"
	if len(remaining) == 1 && remaining[0] != "-" {
		f, err := os.Open(remaining[0])
		if err != nil {
			return fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		in = f
		name = remaining[0]
	}

	logger := newLogger(cfg, std.err)
	sess := session.New(sessionOptions(cfg), logger)
	if err := runBatch(ctx, cfg, sess, in, std.out); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// logsCommand prints the newest session log.
func logsCommand(ctx context.Context, cfg *config.Config, args []string, std streams) error {
	fs := flag.NewFlagSet("priotasks logs", flag.ContinueOnError)
	fs.SetOutput(std.err)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if cfg.LogDir == "" {
		fmt.Fprintln(std.out, "Session logging is disabled; set log_dir to enable it.")
		return nil
	}

	logPath, err := logging.FindLatestLog(cfg.LogDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(std.out, "No log files found.")
		return nil
	}

	fmt.Fprintf(std.out, "Log: %s\n", logPath)
	if *follow {
		fmt.Fprintln(std.out, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(std.out)

	return logging.TailLog(ctx, std.out, logPath, *n, *follow)
}

// configCommand prints an example config, or with -show the effective one.
func configCommand(cws *config.ConfigWithSources, args []string, std streams) error {
	fs := flag.NewFlagSet("priotasks config", flag.ContinueOnError)
	fs.SetOutput(std.err)
	show := fs.Bool("show", false, "Show effective values and where they came from")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !*show {
		fmt.Fprint(std.out, config.ExampleConfig())
		return nil
	}

	if file := cws.ActiveFile(); file != "" {
		fmt.Fprintf(std.out, "# config file: %s\n", file)
	} else {
		fmt.Fprintln(std.out, "# config file: none")
	}
	for _, field := range config.Fields() {
		fmt.Fprintf(std.out, "%-20s = %-20s # %s\n", field, cws.Config.Value(field), cws.Sources[field])
	}
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "priotasks version %s (%s, %s/%s)\n", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "priotasks - a prioritised task list for the terminal")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  priotasks [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui           Launch the terminal UI (default command)")
	fmt.Fprintln(w, "  batch [file]  Run task commands from a file or stdin")
	fmt.Fprintln(w, "  logs          Print the latest session log")
	fmt.Fprintln(w, "  config        Print an example config file")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TUI Options:")
	fmt.Fprintln(w, "  -inline")
	fmt.Fprintln(w, "        Render inline instead of using the alternate screen")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logs Options:")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w, "  -f, -follow")
	fmt.Fprintln(w, "        Follow the log")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config Options:")
	fmt.Fprintln(w, "  -show")
	fmt.Fprintln(w, "        Show effective values and their sources")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Batch Commands:")
	fmt.Fprintln(w, "  add <priority> <deadline> <title...>")
	fmt.Fprintln(w, "  complete <id> | delete <id>")
	fmt.Fprintln(w, "  sort date|priority")
	fmt.Fprintln(w, "  toggle form|active|completed")
	fmt.Fprintln(w, "  list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Config files: ~/.priotasks/priotasks.toml, ./priotasks.toml")
	fmt.Fprintln(w, "Environment:  PRIOTASKS_* overrides (e.g. PRIOTASKS_SORT_BY=priority)")
}

func sessionOptions(cfg *config.Config) session.Options {
	return session.Options{
		DefaultPriority: cfg.Priority(),
		Sort:            cfg.Sort(),
		Sections: session.Sections{
			Form:      cfg.Sections.Form,
			Active:    cfg.Sections.Active,
			Completed: cfg.Sections.Completed,
		},
	}
}

func newLogger(cfg *config.Config, w io.Writer) *log.Logger {
	return logging.New(w, logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
}
