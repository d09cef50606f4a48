package assistant

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role      `yaml:"role"`
	Content string    `yaml:"content"`
	At      time.Time `yaml:"at"`
}

// History is an append-only transcript of the session. Nothing in the
// interpreter reads it back.
type History struct {
	mu        sync.Mutex
	sessionID string
	messages  []Message
}

func NewHistory() *History {
	return &History{sessionID: uuid.NewString()}
}

func (h *History) AddUser(content string)      { h.add(RoleUser, content) }
func (h *History) AddAssistant(content string) { h.add(RoleAssistant, content) }

func (h *History) add(role Role, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, Message{Role: role, Content: content, At: time.Now()})
}

// Messages returns a copy of the transcript.
func (h *History) Messages() []Message {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Message, len(h.messages))
	copy(out, h.messages)
	return out
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.messages)
}

func (h *History) SessionID() string { return h.sessionID }

// Save writes the transcript to dir/<session-id>.yaml and returns the path.
// An empty transcript is not written.
func (h *History) Save(dir string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.messages) == 0 {
		return "", nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	doc := struct {
		Session  string    `yaml:"session"`
		Messages []Message `yaml:"messages"`
	}{h.sessionID, h.messages}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode history: %w", err)
	}
	path := filepath.Join(dir, h.sessionID+".yaml")
	return path, os.WriteFile(path, data, 0644)
}
