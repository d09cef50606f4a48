package main

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/jeanpaul/remindme/internal/console"
)

const (
	greeting = "Hello! I'm your Virtual Personal Assistant. How can I help you?"
	exitHint = "You can say 'exit' or 'quit' to stop me anytime."
	farewell = "Goodbye!"
)

// LineReader is satisfied by *readline.Instance.
type LineReader interface {
	Readline() (string, error)
}

// Processor is satisfied by *assistant.Interpreter.
type Processor interface {
	Process(ctx context.Context, input string) (string, error)
}

func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}

// runLoop reads lines until exit, EOF, or an interrupt on an empty line.
// A failed operation is reported and the loop continues.
func runLoop(ctx context.Context, in LineReader, proc Processor, out *console.Printer, logger *log.Logger) error {
	for {
		line, err := in.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				out.Reply(farewell)
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			out.Reply(farewell)
			return nil
		case err != nil:
			return err
		}

		if isExit(line) {
			out.Reply(farewell)
			return nil
		}

		reply, err := proc.Process(ctx, line)
		if err != nil {
			logger.Error("command failed", "input", line, "err", err)
			out.Error(err)
			continue
		}
		out.Reply(reply)
	}
}
