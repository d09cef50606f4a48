package assistant

import "strings"

// RemindCommand is the result of parsing a "remind me" line.
type RemindCommand struct {
	Task    string
	Time    string
	HasTask bool
	HasTime bool
}

// parseRemind splits on the literal substrings "to" and "at", not on words,
// so "tomorrow" or "water" count as delimiters. The task is the text between
// the first and second "to", cut at its first "at". The time is the text
// between the first and second "at" of the whole line.
func parseRemind(input string) RemindCommand {
	var cmd RemindCommand

	afterTo, ok := segment(input, "to", 1)
	if !ok {
		return cmd
	}
	cmd.HasTask = true

	if t, ok := segment(input, "at", 1); ok {
		task, _ := segment(afterTo, "at", 0)
		cmd.Task = strings.TrimSpace(task)
		cmd.Time = strings.TrimSpace(t)
		cmd.HasTime = true
		return cmd
	}
	cmd.Task = strings.TrimSpace(afterTo)
	return cmd
}

// segment returns the n-th piece of s split on sep, and whether that piece
// exists.
func segment(s, sep string, n int) (string, bool) {
	parts := strings.SplitN(s, sep, n+2)
	if len(parts) <= n {
		return "", false
	}
	return parts[n], true
}

// parseDeleteKey returns the text after "delete reminder" with surrounding
// whitespace and quotes removed.
func parseDeleteKey(input string) string {
	rest, ok := segment(input, "delete reminder", 1)
	if !ok {
		return ""
	}
	return strings.Trim(strings.TrimSpace(rest), `'"`)
}
