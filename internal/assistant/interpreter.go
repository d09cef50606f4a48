// Package assistant turns a line of user input into an action on the task
// store and a reply.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/jeanpaul/remindme/internal/preferences"
	"github.com/jeanpaul/remindme/internal/tasks"
)

// ErrNoPreferredTime means a pending task was confirmed before any time had
// ever been recorded.
var ErrNoPreferredTime = errors.New("no preferred reminder time recorded")

const (
	msgSet         = "Reminder set: '%s' at %s"
	msgNeedTime    = "I need a time for '%s'. %s"
	msgNoUsualTime = "I don't have a usual time for '%s' yet. Try 'remind me to %s at [time]'."
	msgMissingTask = "Please tell me what to be reminded about, e.g., 'remind me to call john at 3pm'"
	msgDeleted     = "Deleted reminder: '%s'"
	msgNotFound    = "No reminder found for '%s'"
	msgDeleteUsage = "Please specify a task to delete, e.g., 'delete reminder call john'"
	msgNoTasks     = "No tasks set yet."
	msgGreeting    = "Hello! How can I assist you today?"
	msgHelp        = "Sorry, I didn't understand that. Try 'remind me to [task] at [time]', 'list tasks', or 'delete reminder [task]'."
	msgListLineFmt = "- %s at %s"
)

// Interpreter maps input lines to intents and executes them.
type Interpreter struct {
	store   tasks.Store
	prefs   *preferences.Tracker
	session *Session
	logger  *log.Logger
}

func NewInterpreter(store tasks.Store, prefs *preferences.Tracker, session *Session, logger *log.Logger) *Interpreter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Interpreter{store: store, prefs: prefs, session: session, logger: logger}
}

// Process handles one line and returns the reply. A non-nil error means the
// task store or preference file failed; the line is recorded in the history
// but no reply is.
func (in *Interpreter) Process(ctx context.Context, input string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	in.session.History.AddUser(input)

	reply, err := in.respond(ctx, input)
	if err != nil {
		return "", err
	}
	in.session.History.AddAssistant(reply)
	return reply, nil
}

func (in *Interpreter) respond(ctx context.Context, input string) (string, error) {
	if pending, ok := in.session.Pending(); ok && isAffirmative(input) {
		in.session.ClearPending()
		reply, err := in.confirmPending(ctx, pending)
		if errors.Is(err, ErrNoPreferredTime) {
			return fmt.Sprintf(msgNoUsualTime, pending, pending), nil
		}
		return reply, err
	}
	in.session.ClearPending()

	intent := DetectIntent(input)
	in.logger.Debug("intent detected", "intent", intent)

	switch intent {
	case IntentRemind:
		return in.remind(ctx, input)
	case IntentDelete:
		return in.delete(ctx, input)
	case IntentList:
		return in.list(ctx)
	case IntentGreet:
		return msgGreeting, nil
	default:
		return msgHelp, nil
	}
}

func isAffirmative(input string) bool {
	return input == "yes" || input == "y"
}

func (in *Interpreter) confirmPending(ctx context.Context, task string) (string, error) {
	when, ok := in.prefs.MostCommon()
	if !ok {
		return "", ErrNoPreferredTime
	}
	return in.create(ctx, task, when)
}

func (in *Interpreter) remind(ctx context.Context, input string) (string, error) {
	cmd := parseRemind(input)
	if !cmd.HasTask {
		return msgMissingTask, nil
	}
	if !cmd.HasTime {
		in.session.SetPending(cmd.Task)
		return fmt.Sprintf(msgNeedTime, cmd.Task, in.prefs.Suggest().Prompt), nil
	}
	return in.create(ctx, cmd.Task, cmd.Time)
}

func (in *Interpreter) create(ctx context.Context, task, when string) (string, error) {
	if _, err := in.store.Add(ctx, task, when); err != nil {
		return "", err
	}
	if err := in.prefs.Record(when); err != nil {
		return "", err
	}
	in.logger.Info("reminder created", "task", task, "time", when)
	return fmt.Sprintf(msgSet, task, when), nil
}

func (in *Interpreter) delete(ctx context.Context, input string) (string, error) {
	key := parseDeleteKey(input)
	if key == "" {
		return msgDeleteUsage, nil
	}
	found, err := in.store.Delete(ctx, key)
	if err != nil {
		return "", err
	}
	if !found {
		return fmt.Sprintf(msgNotFound, key), nil
	}
	in.logger.Info("reminder deleted", "task", key)
	return fmt.Sprintf(msgDeleted, key), nil
}

func (in *Interpreter) list(ctx context.Context) (string, error) {
	all, err := in.store.List(ctx)
	if err != nil {
		return "", err
	}
	if len(all) == 0 {
		return msgNoTasks, nil
	}
	lines := make([]string, len(all))
	for i, t := range all {
		lines[i] = fmt.Sprintf(msgListLineFmt, t.Text, t.Time)
	}
	return strings.Join(lines, "\n"), nil
}
