package checklist

import (
	"context"
	"math/rand"
	"sync"
)

// SearchResult is what the document search reports for a requested item.
type SearchResult struct {
	Found      bool
	Value      string
	Source     string
	Confidence float64
}

// DocumentSearcher locates a requested piece of information in the case
// document set. The engine only depends on this capability; production wiring
// decides whether it is the simulated stand-in or a real search backend.
type DocumentSearcher interface {
	Search(ctx context.Context, term string) (SearchResult, error)
}

// DocumentSearcherFunc adapts a function into a DocumentSearcher.
type DocumentSearcherFunc func(ctx context.Context, term string) (SearchResult, error)

// Search implements DocumentSearcher.
func (f DocumentSearcherFunc) Search(ctx context.Context, term string) (SearchResult, error) {
	return f(ctx, term)
}

// SimulatedSearcher is the placeholder used until a real document-search
// integration exists: a coin flip decides whether the item was found.
type SimulatedSearcher struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedSearcher seeds the simulation from the wall clock.
func NewSimulatedSearcher() *SimulatedSearcher {
	return &SimulatedSearcher{rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewSimulatedSearcherWithSeed fixes the simulation for reproducible runs.
func NewSimulatedSearcherWithSeed(seed int64) *SimulatedSearcher {
	return &SimulatedSearcher{rng: rand.New(rand.NewSource(seed))}
}

// Search flips the coin. Found items report a generic source with middling
// confidence; unfound items report nothing.
func (s *SimulatedSearcher) Search(_ context.Context, term string) (SearchResult, error) {
	s.mu.Lock()
	found := s.rng.Intn(2) == 0
	s.mu.Unlock()
	if !found {
		return SearchResult{}, nil
	}
	return SearchResult{
		Found:      true,
		Value:      term,
		Source:     "uploaded documents",
		Confidence: 0.5,
	}, nil
}
