package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/roljohnt/chronosort/internal/config"
	"github.com/roljohnt/chronosort/internal/engine"
	"github.com/roljohnt/chronosort/internal/report"
)

// main delegates to runMain so deferred cleanup runs before the process
// exits; os.Exit does not run defers.
func main() {
	os.Exit(runMain())
}

func runMain() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:      config.CLIName,
		Usage:     config.CLIUsage,
		ArgsUsage: config.ArgsUsageDir,
		Version:   config.Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  config.FlagDryRun,
				Usage: config.FlagDescDryRun,
			},
			&cli.BoolFlag{
				Name:    config.FlagYes,
				Aliases: []string{config.FlagYesShrt},
				Usage:   config.FlagDescYes,
			},
			&cli.BoolFlag{
				Name:  config.FlagDebug,
				Usage: config.FlagDescDebug,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			setupLogging(c.Bool(config.FlagDebug))
			return ctx, nil
		},
		Action: run,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		return config.ExitCodeError
	}
	return config.ExitCodeSuccess
}

// run executes one organizing pass over the requested directory. Per-file
// failures are reported but never fail the invocation; only an invalid
// target (or cancellation) yields a nonzero exit.
func run(ctx context.Context, c *cli.Command) error {
	dir := c.Args().First()
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return err
		}
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	dryRun := c.Bool(config.FlagDryRun)

	if !dryRun && !c.Bool(config.FlagYes) && !confirm(dir) {
		fmt.Fprint(os.Stdout, config.MsgCancelled)
		return nil
	}

	logStartupInfo()

	console := report.NewConsole(os.Stdout, dir)
	console.Banner(dryRun)

	org := &engine.Organizer{
		Clock:    engine.RealClock{},
		Metadata: engine.ExifReader{},
		Report:   console.Record,
	}

	_, summary, err := org.Organize(ctx, engine.OrganizeConfig{
		TargetDir: dir,
		DryRun:    dryRun,
	})
	if err != nil {
		return err
	}

	console.Summary(summary, dryRun)
	return nil
}

// confirm asks the user before a real (mutating) run.
func confirm(dir string) bool {
	fmt.Fprintf(os.Stdout, config.MsgConfirmPrompt, dir)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	for _, ok := range config.ConfirmAnswers {
		if answer == ok {
			return true
		}
	}
	return false
}

// setupLogging configures the default slog logger. Human-readable results go
// to stdout through the reporter, so structured logs stay on stderr.
func setupLogging(debugMode bool) {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, opts)))
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Debug(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}
