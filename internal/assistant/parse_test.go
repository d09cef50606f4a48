package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRemind(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RemindCommand
	}{
		{
			name:  "task and time",
			input: "remind me to call john at 3pm",
			want:  RemindCommand{Task: "call john", Time: "3pm", HasTask: true, HasTime: true},
		},
		{
			name:  "clock time",
			input: "remind me to call mom at 5:00 pm",
			want:  RemindCommand{Task: "call mom", Time: "5:00 pm", HasTask: true, HasTime: true},
		},
		{
			name:  "no time",
			input: "remind me to call john",
			want:  RemindCommand{Task: "call john", HasTask: true},
		},
		{
			name:  "no task delimiter",
			input: "remind me at 3pm",
			want:  RemindCommand{},
		},
		{
			// second "to" ends the task segment
			name:  "second to truncates task",
			input: "remind me to go to the store at 5pm",
			want:  RemindCommand{Task: "go", Time: "5pm", HasTask: true, HasTime: true},
		},
		{
			// "at" inside "water" is a delimiter
			name:  "at inside a word",
			input: "remind me to water plants",
			want:  RemindCommand{Task: "w", Time: "er plants", HasTask: true, HasTime: true},
		},
		{
			// "to" inside "tomorrow" is a delimiter
			name:  "to inside a word",
			input: "remind me tomorrow",
			want:  RemindCommand{Task: "morrow", HasTask: true},
		},
		{
			name:  "time cut at second at",
			input: "remind me to call at 3 at home",
			want:  RemindCommand{Task: "call", Time: "3", HasTask: true, HasTime: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRemind(tt.input))
		})
	}
}

func TestParseDeleteKey(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"delete reminder call john", "call john"},
		{"delete reminder 'call john'", "call john"},
		{`delete reminder "call john"`, "call john"},
		{"please delete reminder   pay rent  ", "pay rent"},
		{"delete reminder", ""},
		{"delete reminder ''", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDeleteKey(tt.input))
		})
	}
}
