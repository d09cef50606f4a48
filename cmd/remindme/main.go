// remindme is a conversational reminder assistant for the terminal.
//
// Reminders are (task, time) pairs kept in a local SQLite file; a background
// poller announces each one when the clock label matches. The time picked
// most often is offered as the default when a reminder is given without one.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/jeanpaul/remindme/internal/assistant"
	"github.com/jeanpaul/remindme/internal/config"
	"github.com/jeanpaul/remindme/internal/console"
	"github.com/jeanpaul/remindme/internal/preferences"
	"github.com/jeanpaul/remindme/internal/reminder"
	"github.com/jeanpaul/remindme/internal/tasks"
)

func main() {
	// logger writes operational messages to stderr; replies go to stdout
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "remindme",
	})

	cfg, err := config.Load()
	if err != nil {
		fatal(logger, "config error", err)
	}
	if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		fatal(logger, "assistant stopped", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	store, err := tasks.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open task store: %w", err)
	}
	defer store.Close()

	prefs, err := preferences.Load(cfg.PreferencesPath())
	if err != nil {
		return fmt.Errorf("load preferences: %w", err)
	}

	session := assistant.NewSession()
	interp := assistant.NewInterpreter(store, prefs, session, logger)
	out := console.New(os.Stdout, true)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryFile:     filepath.Join(os.TempDir(), "remindme-history"),
		Stdin:           readline.NewCancelableStdin(os.Stdin),
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()
	out.SetOutput(rl.Stdout())

	pollCtx, cancelPoll := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		reminder.New(store, out.Notify, cfg.Reminder.Interval,
			reminder.WithLogger(logger)).Run(pollCtx)
	}()
	// A signal closes readline so the blocked read returns.
	go func() {
		<-pollCtx.Done()
		rl.Close()
	}()

	out.Banner(greeting, exitHint)
	loopErr := runLoop(ctx, rl, interp, out, logger)

	cancelPoll()
	wg.Wait()

	if cfg.History.Save {
		path, err := session.History.Save(cfg.HistoryDir())
		if err != nil {
			logger.Warn("could not save history", "err", err)
		} else if path != "" {
			logger.Info("history saved", "path", path)
		}
	}
	return loopErr
}

func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	os.Exit(1)
}
