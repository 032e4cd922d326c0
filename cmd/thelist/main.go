package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/thelist/internal/backend"
	"github.com/jask/thelist/internal/config"
	"github.com/jask/thelist/internal/logging"
	"github.com/jask/thelist/internal/tui"
)

// stderr receives every failure message.
var stderr io.Writer = os.Stderr

func main() {
	os.Exit(run(os.Args[1:]))
}

func fail(what string, err error) int {
	fmt.Fprintf(stderr, "%s: %v\n", what, err)
	return 1
}

func run(args []string) int {
	fs := pflag.NewFlagSet("thelist", pflag.ContinueOnError)
	config.Flags(fs)
	writeConfig := fs.Bool("write-config", false, "write the resolved configuration to the config file and exit")
	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fail("config", err)
	}

	if *writeConfig {
		path, err := config.Save(cfg)
		if err != nil {
			return fail("config", err)
		}
		fmt.Println(path)
		return 0
	}

	logger, closer, err := logging.Open(cfg.Log)
	if err != nil {
		return fail("log", err)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := backend.New(cfg.API.BaseURL,
		backend.WithTimeout(cfg.API.Timeout),
		backend.WithLogger(logger.With().Str("component", "backend").Logger()),
	)
	logger.Info().Str("base_url", client.BaseURL()).Msg("starting")

	tuiLog := logger.With().Str("component", "tui").Logger()
	app := tui.New(ctx, client, tui.Options{Title: cfg.UI.Title, Logger: &tuiLog})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("program exited")
		return fail("error", err)
	}
	return 0
}
