package storage

import (
	"context"
	"fmt"
	"sync"

	"zugzwang/internal/model"
)

// MemoryStore is the default Store: everything lives in process memory and
// is lost on exit. Used whenever the binary is built without the sqlite
// build tag, and in tests.
type MemoryStore struct {
	mu sync.RWMutex

	agents       map[string]*model.Agent
	populations  map[string]PopulationRecord
	diagnostics  map[string]GenerationDiagnostics
	lineage      map[string]LineageRecord
	fitness      []FitnessRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		agents:      make(map[string]*model.Agent),
		populations: make(map[string]PopulationRecord),
		diagnostics: make(map[string]GenerationDiagnostics),
		lineage:     make(map[string]LineageRecord),
	}
}

func (s *MemoryStore) Init(ctx context.Context) error { return nil }

func (s *MemoryStore) SaveAgent(ctx context.Context, a *model.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[a.ID] = a
	return nil
}

func (s *MemoryStore) GetAgent(ctx context.Context, id string) (*model.Agent, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.agents[id]
	return a, ok, nil
}

func (s *MemoryStore) SavePopulation(ctx context.Context, p PopulationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.populations[populationKey(p.RunID, p.Generation)] = p
	return nil
}

func (s *MemoryStore) GetPopulation(ctx context.Context, runID string, generation int) (PopulationRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.populations[populationKey(runID, generation)]
	return p, ok, nil
}

func (s *MemoryStore) SaveFitness(ctx context.Context, f FitnessRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitness = append(s.fitness, f)
	return nil
}

func (s *MemoryStore) SaveGenerationDiagnostics(ctx context.Context, d GenerationDiagnostics) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.diagnostics[populationKey(d.RunID, d.Generation)] = d
	return nil
}

func (s *MemoryStore) GetGenerationDiagnostics(ctx context.Context, runID string, generation int) (GenerationDiagnostics, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.diagnostics[populationKey(runID, generation)]
	return d, ok, nil
}

func (s *MemoryStore) SaveLineage(ctx context.Context, l LineageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lineage[lineageKey(l.RunID, l.ChildID)] = l
	return nil
}

func (s *MemoryStore) GetLineage(ctx context.Context, runID string, childID string) (LineageRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lineage[lineageKey(runID, childID)]
	return l, ok, nil
}

func populationKey(runID string, generation int) string {
	return fmt.Sprintf("%s/%d", runID, generation)
}

func lineageKey(runID, childID string) string {
	return fmt.Sprintf("%s/%s", runID, childID)
}
