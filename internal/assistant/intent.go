package assistant

import "strings"

// Intent is what a line of input asks for.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentRemind
	IntentDelete
	IntentList
	IntentGreet
)

// intentKeywords is checked in order; the first intent with a matching
// keyword wins.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentRemind, []string{"remind me"}},
	{IntentDelete, []string{"delete reminder"}},
	{IntentList, []string{"list tasks", "show reminders"}},
	{IntentGreet, []string{"hello", "hi"}},
}

// DetectIntent classifies lower-cased input by plain substring presence.
// "hi" therefore also matches words like "this" or "nothing".
func DetectIntent(input string) Intent {
	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(input, kw) {
				return entry.intent
			}
		}
	}
	return IntentUnknown
}

func (i Intent) String() string {
	switch i {
	case IntentRemind:
		return "remind"
	case IntentDelete:
		return "delete"
	case IntentList:
		return "list"
	case IntentGreet:
		return "greet"
	default:
		return "unknown"
	}
}
