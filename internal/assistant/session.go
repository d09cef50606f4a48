package assistant

import "sync"

// Session is the per-process conversational state: the transcript and the
// task waiting for a time. One Session lives as long as the assistant.
type Session struct {
	History *History

	mu      sync.Mutex
	pending string
}

func NewSession() *Session {
	return &Session{History: NewHistory()}
}

// Pending returns the task awaiting a time, if any.
func (s *Session) Pending() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.pending != ""
}

func (s *Session) SetPending(task string) {
	s.mu.Lock()
	s.pending = task
	s.mu.Unlock()
}

func (s *Session) ClearPending() { s.SetPending("") }
