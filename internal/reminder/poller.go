// Package reminder announces stored tasks whose time label matches the
// current wall-clock minute.
package reminder

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jeanpaul/remindme/internal/tasks"
)

// ClockLayout renders times the way labels are compared, e.g. "03:45 pm".
const ClockLayout = "03:04 pm"

// Lister is the read side of the task store.
type Lister interface {
	List(ctx context.Context) ([]tasks.Task, error)
}

// Notifier receives one message per due task.
type Notifier func(msg string)

// Label formats t as a lower-case 12-hour clock label.
func Label(t time.Time) string {
	return strings.ToLower(t.Format(ClockLayout))
}

// Message is the announcement text for a due task.
func Message(task string) string {
	return fmt.Sprintf("Reminder: It's time to '%s'!", task)
}

type Poller struct {
	store    Lister
	notify   Notifier
	interval time.Duration
	now      func() time.Time
	logger   *log.Logger
}

type Option func(*Poller)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

func WithLogger(l *log.Logger) Option {
	return func(p *Poller) { p.logger = l }
}

func New(store Lister, notify Notifier, interval time.Duration, opts ...Option) *Poller {
	p := &Poller{
		store:    store,
		notify:   notify,
		interval: interval,
		now:      time.Now,
		logger:   log.New(io.Discard),
	}
	for _, o := range opts {
		o(p)
	}
	if p.interval <= 0 {
		p.interval = time.Minute
	}
	return p
}

// Run checks immediately and then once per interval until ctx is cancelled.
// A minute skipped by a late tick is never revisited.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("reminder loop started", "interval", p.interval)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.check(ctx)
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("reminder loop stopped")
			return
		case <-ticker.C:
			p.check(ctx)
		}
	}
}

func (p *Poller) check(ctx context.Context) {
	if _, err := p.Tick(ctx); err != nil && ctx.Err() == nil {
		p.logger.Error("reminder check failed", "err", err)
	}
}

// Tick announces every task due at the current minute and returns how many
// were announced.
func (p *Poller) Tick(ctx context.Context) (int, error) {
	label := Label(p.now())

	all, err := p.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("reminder check: %w", err)
	}

	fired := 0
	for _, t := range all {
		if strings.ToLower(t.Time) != label {
			continue
		}
		p.notify(Message(t.Text))
		p.logger.Debug("reminder fired", "id", t.ID, "task", t.Text, "time", t.Time)
		fired++
	}
	return fired, nil
}
