package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/remindme/internal/assistant"
	"github.com/jeanpaul/remindme/internal/console"
	"github.com/jeanpaul/remindme/internal/preferences"
	"github.com/jeanpaul/remindme/internal/tasks"
)

type step struct {
	line string
	err  error
}

// scriptedReader replays steps and then reports EOF.
type scriptedReader struct {
	steps []step
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.steps) == 0 {
		return "", io.EOF
	}
	s := r.steps[0]
	r.steps = r.steps[1:]
	return s.line, s.err
}

func lines(ss ...string) *scriptedReader {
	r := &scriptedReader{}
	for _, s := range ss {
		r.steps = append(r.steps, step{line: s})
	}
	return r
}

func newInterpreter(t *testing.T) (*assistant.Interpreter, tasks.Store) {
	t.Helper()
	dir := t.TempDir()
	store, err := tasks.OpenSQLite(context.Background(), filepath.Join(dir, "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	prefs := preferences.New(filepath.Join(dir, "preferences.json"))
	return assistant.NewInterpreter(store, prefs, assistant.NewSession(), nil), store
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

func TestRunLoop_Conversation(t *testing.T) {
	interp, store := newInterpreter(t)
	var buf bytes.Buffer

	err := runLoop(context.Background(),
		lines("remind me to call john at 3pm", "list tasks", "EXIT", "hello"),
		interp, console.New(&buf, false), quietLogger())
	require.NoError(t, err)

	assert.Equal(t, "Reminder set: 'call john' at 3pm\n"+
		"- call john at 3pm\n"+
		"Goodbye!\n", buf.String())

	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRunLoop_ExitWords(t *testing.T) {
	for _, word := range []string{"exit", "quit", "Quit", "  exit  "} {
		t.Run(word, func(t *testing.T) {
			interp, _ := newInterpreter(t)
			var buf bytes.Buffer
			require.NoError(t, runLoop(context.Background(), lines(word, "list tasks"),
				interp, console.New(&buf, false), quietLogger()))
			assert.Equal(t, "Goodbye!\n", buf.String())
		})
	}
}

func TestRunLoop_EOF(t *testing.T) {
	interp, _ := newInterpreter(t)
	var buf bytes.Buffer

	require.NoError(t, runLoop(context.Background(), lines("hi"),
		interp, console.New(&buf, false), quietLogger()))
	assert.Equal(t, "Hello! How can I assist you today?\nGoodbye!\n", buf.String())
}

func TestRunLoop_Interrupt(t *testing.T) {
	interp, _ := newInterpreter(t)
	var buf bytes.Buffer

	r := &scriptedReader{steps: []step{
		{line: "half typed", err: readline.ErrInterrupt},
		{line: "list tasks"},
		{line: "", err: readline.ErrInterrupt},
		{line: "hello"},
	}}
	require.NoError(t, runLoop(context.Background(), r,
		interp, console.New(&buf, false), quietLogger()))
	assert.Equal(t, "No tasks set yet.\nGoodbye!\n", buf.String())
}

type failingProcessor struct{}

func (failingProcessor) Process(context.Context, string) (string, error) {
	return "", errors.New("list tasks: database is locked")
}

func TestRunLoop_ErrorsAreReportedAndLoopContinues(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, runLoop(context.Background(), lines("list tasks", "list tasks", "quit"),
		failingProcessor{}, console.New(&buf, false), quietLogger()))
	assert.Equal(t, "Error: list tasks: database is locked\n"+
		"Error: list tasks: database is locked\n"+
		"Goodbye!\n", buf.String())
}

func TestRunLoop_ReaderFailure(t *testing.T) {
	interp, _ := newInterpreter(t)
	boom := errors.New("tty gone")

	r := &scriptedReader{steps: []step{{err: boom}}}
	err := runLoop(context.Background(), r, interp, console.New(io.Discard, false), quietLogger())
	assert.ErrorIs(t, err, boom)
}
