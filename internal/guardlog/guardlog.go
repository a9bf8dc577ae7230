// Package guardlog records guard events: the moments a symbolic value was
// forced to a concrete one, with the expression, the resolved value, and
// the call site that forced it. The ledger is how an embedding system
// audits which specialization decisions were made and where.
package guardlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one forcing decision.
type Event struct {
	ID    uuid.UUID
	Expr  string // rendering of the expression that was forced
	Kind  string // "int" or "bool"
	Value string // resolved value, rendered
	File  string // forcing call site, may be empty
	Line  int
	At    time.Time
}

// Recorder accepts guard events. Implementations must be safe for
// concurrent use.
type Recorder interface {
	Record(ev Event) error
}

// Memory is an in-process recorder, mainly for tests and the default CLI
// path.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Record(ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

// Events returns a snapshot of everything recorded so far.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Len reports the number of recorded events.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events)
}
