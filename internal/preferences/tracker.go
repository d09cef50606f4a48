// Package preferences counts how often each reminder time label is used and
// suggests the most frequent one.
package preferences

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const (
	promptUsual = "Would you like it set for %s, your usual time?"
	promptAsk   = "When would you like the reminder?"
)

// file is the on-disk shape: {"reminder_times": {"5:00 pm": 3}}.
type file struct {
	ReminderTimes map[string]int `json:"reminder_times"`
}

// Suggestion is the result of Suggest. OK is false when nothing has been
// recorded yet, in which case Time is empty.
type Suggestion struct {
	Prompt string
	Time   string
	OK     bool
}

// Tracker is a frequency table of time labels backed by a JSON file.
type Tracker struct {
	mu     sync.RWMutex
	counts map[string]int
	path   string
}

// New returns an empty tracker that saves to path.
func New(path string) *Tracker {
	return &Tracker{counts: map[string]int{}, path: path}
}

// Load reads the table from path. A missing file yields an empty table.
func Load(path string) (*Tracker, error) {
	t := New(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("preferences %s: %w", path, err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	if f.ReminderTimes != nil {
		t.counts = f.ReminderTimes
	}
	return t, nil
}

// Record increments the count for label and saves the table synchronously.
func (t *Tracker) Record(label string) error {
	t.mu.Lock()
	t.counts[label]++
	t.mu.Unlock()
	return t.Save()
}

// Save writes the table to disk via a temp file and rename.
func (t *Tracker) Save() error {
	t.mu.RLock()
	data, err := json.Marshal(file{ReminderTimes: t.counts})
	t.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".preferences-*.json")
	if err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// MostCommon returns the label with the highest count. Ties go to the label
// that sorts first.
func (t *Tracker) MostCommon() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.counts) == 0 {
		return "", false
	}
	labels := make([]string, 0, len(t.counts))
	for l := range t.counts {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	best := labels[0]
	for _, l := range labels[1:] {
		if t.counts[l] > t.counts[best] {
			best = l
		}
	}
	return best, true
}

// Suggest returns the usual time and a prompt offering it.
func (t *Tracker) Suggest() Suggestion {
	label, ok := t.MostCommon()
	if !ok {
		return Suggestion{Prompt: promptAsk}
	}
	return Suggestion{Prompt: fmt.Sprintf(promptUsual, label), Time: label, OK: true}
}

// Counts returns a copy of the table.
func (t *Tracker) Counts() map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

func (t *Tracker) Path() string { return t.path }
