package session

import (
	"strings"
	"sync"
	"time"

	"github.com/curewell/carepartner/core"
)

// Store is a volatile, in-process SessionStore holding the ordered turn log
// and the current lifecycle phase. It is created at session start and torn
// down with the process; nothing persists across sessions.
//
// Contract:
//   - The log is append-only and insertion order is chronological order
//   - Snapshot returns defensive copies to avoid external mutation
//   - Pending cannot be entered while already pending (single-flight)
//   - Subscribers receive a coalesced signal after every mutation, replacing
//     the implicit re-render reactivity of framework-managed state.
type Store struct {
	mu    sync.RWMutex
	turns []core.Turn
	phase core.Phase
	subs  []chan struct{}
}

// NewStore constructs an empty store in the idle phase.
func NewStore() *Store {
	return &Store{phase: core.Idle()}
}

// AppendUserTurn appends a user query to the log. Blank or whitespace-only
// text is rejected with a ValidationError and the log is left untouched.
func (s *Store) AppendUserTurn(text string) error {
	if strings.TrimSpace(text) == "" {
		return &core.ValidationError{Reason: "user turn text is blank"}
	}
	s.mu.Lock()
	s.turns = append(s.turns, core.UserTurn{Text: text, Timestamp: time.Now()})
	s.mu.Unlock()
	s.notify()
	return nil
}

// AppendReportTurn appends a synthesized report to the log. Only the query
// engine calls this, after successful response validation.
func (s *Store) AppendReportTurn(r core.Report) {
	s.mu.Lock()
	s.turns = append(s.turns, core.ReportTurn{Report: r})
	s.mu.Unlock()
	s.notify()
}

// SetPhase transitions the lifecycle phase. Entering pending while already
// pending fails with an InvalidTransitionError; the engine's own sequencing
// should make that unreachable.
func (s *Store) SetPhase(p core.Phase) error {
	s.mu.Lock()
	if s.phase.Kind == core.PhasePending && p.Kind == core.PhasePending {
		from := s.phase
		s.mu.Unlock()
		return &core.InvalidTransitionError{From: from, To: p}
	}
	s.phase = p
	s.mu.Unlock()
	s.notify()
	return nil
}

// Phase returns the current lifecycle phase without copying the log.
func (s *Store) Phase() core.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Snapshot returns the current ordered turns and phase for rendering. The
// returned slice is a copy and safe for caller mutation.
func (s *Store) Snapshot() core.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	turns := make([]core.Turn, len(s.turns))
	copy(turns, s.turns)
	return core.Snapshot{Turns: turns, Phase: s.phase}
}

// Subscribe returns a channel that receives a signal after every store
// mutation. Signals are coalesced; a consumer that falls behind still sees
// at least one pending signal and can re-read via Snapshot.
func (s *Store) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) notify() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
