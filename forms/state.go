package forms

import "sync"

// State is the flat field-key to value mapping shared by every stage of the
// wizard. Values are stored as entered, including answers to questions that
// a later answer change has hidden again: hidden answers are retained so the
// previous value reappears if the question is re-shown.
type State struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewState creates a State seeded from a plan record. A nil seed yields
// empty defaults.
func NewState(seed map[string]string) *State {
	values := make(map[string]string, len(seed))
	for k, v := range seed {
		values[k] = v
	}
	return &State{values: values}
}

// Set assigns a field value.
func (s *State) Set(key, value string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.values[key] = value
}

// Get retrieves a field value, returning "" for unanswered fields.
func (s *State) Get(key string) string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Snapshot copies the current values.
func (s *State) Snapshot() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}
