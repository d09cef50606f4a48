// Package tasks persists reminder records: a free-form task text paired with
// a free-form time label.
package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/jeanpaul/remindme/internal/config"
)

// ErrUnknownDriver is returned by Open for a driver it does not know.
var ErrUnknownDriver = errors.New("unknown store driver")

// Task is a single stored reminder.
type Task struct {
	ID   int64
	Text string
	Time string
}

// Store defines the persisted reminder table.
// Both backends serialize their own access, so a Store may be shared between
// the interactive loop and the reminder poller.
type Store interface {
	// Add appends a record. Duplicate text/time pairs are allowed.
	Add(ctx context.Context, text, time string) (Task, error)

	// Delete removes every record whose text equals text exactly and
	// reports whether at least one row was removed.
	Delete(ctx context.Context, text string) (bool, error)

	// List returns all records in insertion order.
	List(ctx context.Context) ([]Task, error)

	Close() error
}

// Open builds the backend selected by cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config, logger *log.Logger) (Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		path := cfg.TasksPath()
		s, err := OpenSQLite(ctx, path)
		if err != nil {
			return nil, err
		}
		if logger != nil {
			logger.Info("task store opened", "driver", "sqlite", "path", path)
		}
		return s, nil
	case "postgres":
		s, err := OpenPostgres(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		if logger != nil {
			logger.Info("task store opened", "driver", "postgres")
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Store.Driver)
	}
}
