package artifact

import (
	"sync"

	"github.com/curewell/carepartner/core"
)

// InMemoryStore keeps exported artifacts in a process-local map guarded by an
// RWMutex. Data is copied on save and retrieval to avoid external mutation of
// internal buffers. Like the session log, nothing survives the process.
type InMemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string]core.Artifact // report ID -> artifact
}

// NewInMemoryStore returns an empty in-memory artifact store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{artifacts: make(map[string]core.Artifact)}
}

// Save stores (or overwrites) the artifact for the given report id. The data
// slice is copied before storage.
func (s *InMemoryStore) Save(reportID string, a core.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := a
	cp.Data = make([]byte, len(a.Data))
	copy(cp.Data, a.Data)
	s.artifacts[reportID] = cp
	return nil
}

// Get returns a copy of the stored artifact or ErrNotFound.
func (s *InMemoryStore) Get(reportID string) (core.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.artifacts[reportID]
	if !ok {
		return core.Artifact{}, ErrNotFound
	}
	cp := a
	cp.Data = make([]byte, len(a.Data))
	copy(cp.Data, a.Data)
	return cp, nil
}

// List returns the report ids with stored artifacts. The slice is a snapshot
// and safe for caller mutation.
func (s *InMemoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.artifacts))
	for id := range s.artifacts {
		ids = append(ids, id)
	}
	return ids
}

// Delete removes the artifact if present or returns ErrNotFound.
func (s *InMemoryStore) Delete(reportID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.artifacts[reportID]; !ok {
		return ErrNotFound
	}
	delete(s.artifacts, reportID)
	return nil
}
