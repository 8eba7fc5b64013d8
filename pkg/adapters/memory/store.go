package memory

import (
	"context"
	"sync"

	"github.com/aretw0/abacus/pkg/algebra"
)

// Store implements ports.ProblemStore in memory.
// Safe for concurrent use.
type Store struct {
	problems []algebra.Problem
	seen     map[string]struct{}
	mu       sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		seen: make(map[string]struct{}),
	}
}

// Add appends the problem unless its key was seen before.
func (s *Store) Add(ctx context.Context, p algebra.Problem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.seen[p.Key()]; dup {
		return false, nil
	}
	s.seen[p.Key()] = struct{}{}
	s.problems = append(s.problems, p)
	return true, nil
}

// List returns the stored problems in insertion order.
func (s *Store) List(ctx context.Context) ([]algebra.Problem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Copy on read so the caller can't mutate store state.
	out := make([]algebra.Problem, len(s.problems))
	copy(out, s.problems)
	return out, nil
}

// Len returns the number of stored problems.
func (s *Store) Len(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.problems), nil
}

// Clear removes every stored problem.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.problems = nil
	s.seen = make(map[string]struct{})
	return nil
}
