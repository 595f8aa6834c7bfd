package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/alexanderramin/timetrack/internal/cli"
	"github.com/alexanderramin/timetrack/internal/config"
	"github.com/alexanderramin/timetrack/internal/domain"
	"github.com/alexanderramin/timetrack/internal/logging"
	"github.com/alexanderramin/timetrack/internal/repository"
	"github.com/alexanderramin/timetrack/internal/service"
	"github.com/alexanderramin/timetrack/internal/stats"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Resolve(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	applyColorMode(cfg.Output.Color)

	logger, err := logging.New(os.Stderr, logging.Options{
		Level:  cfg.Log.Level,
		Logfmt: !isTerminal(os.Stderr),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	logger = logger.With("invocation", uuid.NewString())

	store, err := repository.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	defer store.Close()
	logger.Debug("event log opened", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)

	clock := domain.SystemClock{}
	targets := stats.Targets{
		DayHours: cfg.Schedule.DayDuration(),
		WeekDays: cfg.Schedule.WeekDays,
	}
	observer := service.NewLogUseCaseObserver(logger)

	app := &cli.App{
		Tracking: service.NewTrackingService(store, clock, observer),
		Reports:  service.NewReportService(store, clock, targets, observer),
		Messages: cfg.Output.Messages,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		IsInteractive: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
	}

	root := cli.NewRootCmd(app)
	root.SetArgs(cli.PrepareArgs(root, os.Args[1:]))
	return fang.Execute(ctx, root, fang.WithVersion(version))
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// applyColorMode forces the lipgloss profile for "always" and "never";
// "auto" keeps lipgloss' own terminal detection.
func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	case config.ColorAuto:
		if !isTerminal(os.Stdout) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	}
}
