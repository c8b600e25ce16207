// Package platform wires storage, evolution, and chess rules together into
// a single runnable coordinator sitting in front of a store.
package platform

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"zugzwang/internal/agent"
	"zugzwang/internal/chessrules"
	"zugzwang/internal/evo"
	"zugzwang/internal/match"
	"zugzwang/internal/model"
	"zugzwang/internal/mutate"
	"zugzwang/internal/storage"
)

// Config configures a single Arena instance.
type Config struct {
	Store   storage.Store
	Adapter chessrules.Adapter
}

// EvolutionConfig parameterizes one call to RunEvolution.
type EvolutionConfig struct {
	RunID             string
	PopulationSize    int
	Generations       int
	InitialGeneration int
	Workers           int
	Seed              int64
	TurnBudget        time.Duration
	MigrationEvery    int
	MigrationPool     []*model.Agent
}

func (cfg *EvolutionConfig) withDefaults() {
	if cfg.PopulationSize <= 0 {
		cfg.PopulationSize = 16
	}
	if cfg.Generations <= 0 {
		cfg.Generations = 1
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.TurnBudget <= 0 {
		cfg.TurnBudget = match.DefaultTurnBudget
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
}

// EvolutionResult summarizes a completed RunEvolution call.
type EvolutionResult struct {
	RunID                 string
	GenerationDiagnostics []storage.GenerationDiagnostics
	FinalPopulation       []*model.Agent
	BestFitness           float64
	SurvivorID            string
}

// Arena is the single coordinator that a CLI or long-running process talks
// to: it owns the store and the chess adapter, and drives the
// tournament -> diagnostics -> evolve -> persist loop described by
// RunEvolution.
type Arena struct {
	mu      sync.RWMutex
	store   storage.Store
	adapter chessrules.Adapter
	started bool
}

var (
	defaultArenaMu sync.Mutex
	defaultArena   *Arena
)

func NewArena(cfg Config) *Arena {
	return &Arena{store: cfg.Store, adapter: cfg.Adapter}
}

// StartDefault initializes and installs the process-wide default Arena, or
// returns the existing one if it is already running.
func StartDefault(ctx context.Context, cfg Config) (*Arena, error) {
	defaultArenaMu.Lock()
	defer defaultArenaMu.Unlock()

	if defaultArena != nil && defaultArena.Started() {
		return defaultArena, nil
	}

	a := NewArena(cfg)
	if err := a.Init(ctx); err != nil {
		return nil, err
	}
	defaultArena = a
	return defaultArena, nil
}

func Default() (*Arena, bool) {
	defaultArenaMu.Lock()
	a := defaultArena
	defaultArenaMu.Unlock()
	if a == nil || !a.Started() {
		return nil, false
	}
	return a, true
}

func (a *Arena) Init(ctx context.Context) error {
	if a.store == nil {
		return fmt.Errorf("store is required")
	}
	if a.adapter == nil {
		return fmt.Errorf("chess adapter is required")
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.started {
		return nil
	}
	if err := a.store.Init(ctx); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	a.started = true
	return nil
}

func (a *Arena) Started() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.started
}

func (a *Arena) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.started = false
}

// RunEvolution drives cfg.Generations rounds of tournament -> rank ->
// evolve -> persist, starting from a freshly generated population (or the
// stored population for cfg.RunID at cfg.InitialGeneration, if present).
func (a *Arena) RunEvolution(ctx context.Context, cfg EvolutionConfig) (EvolutionResult, error) {
	cfg.withDefaults()

	a.mu.RLock()
	started := a.started
	a.mu.RUnlock()
	if !started {
		return EvolutionResult{}, fmt.Errorf("arena is not initialized")
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	population, generation, err := a.loadOrSeedPopulation(ctx, cfg, rng)
	if err != nil {
		return EvolutionResult{}, err
	}

	matchCfg := match.Config{Adapter: a.adapter, TurnBudget: cfg.TurnBudget}
	tournamentCfg := evo.TournamentConfig{Match: matchCfg, Workers: cfg.Workers}

	var diagnostics []storage.GenerationDiagnostics
	var best float64
	var survivorID string

	for round := 0; round < cfg.Generations; round++ {
		fitness, records, err := evo.RunTournament(ctx, population, rng, tournamentCfg)
		if err != nil {
			return EvolutionResult{}, fmt.Errorf("tournament at generation %d: %w", generation, err)
		}

		diag := summarizeGeneration(cfg.RunID, generation, population, fitness)
		diagnostics = append(diagnostics, diag)
		best = diag.BestFitness
		survivorID = diag.SurvivorID

		log.Info().
			Str("run_id", cfg.RunID).
			Int("generation", generation).
			Int("matches", len(records)).
			Float64("best_fitness", diag.BestFitness).
			Float64("mean_fitness", diag.MeanFitness).
			Int("distinct_trees", diag.DistinctTrees).
			Msg("generation complete")

		if err := a.persistGeneration(ctx, cfg.RunID, generation, population, fitness, diag); err != nil {
			return EvolutionResult{}, err
		}

		next, err := evo.Evolve(population, fitness, rng, generation+1)
		if err != nil {
			return EvolutionResult{}, fmt.Errorf("evolve at generation %d: %w", generation, err)
		}
		if err := a.persistLineage(ctx, cfg.RunID, generation+1, diag.SurvivorID, next); err != nil {
			return EvolutionResult{}, err
		}

		if cfg.MigrationEvery > 0 && len(cfg.MigrationPool) > 0 && (generation+1)%cfg.MigrationEvery == 0 {
			next = evo.Migrate(next, cfg.MigrationPool, generation+1)
			log.Info().Str("run_id", cfg.RunID).Int("generation", generation+1).Int("imports", len(cfg.MigrationPool)).Msg("migration applied")
		}

		population = next
		generation++
	}

	if err := a.savePopulation(ctx, cfg.RunID, generation, population); err != nil {
		return EvolutionResult{}, err
	}

	return EvolutionResult{
		RunID:                 cfg.RunID,
		GenerationDiagnostics: diagnostics,
		FinalPopulation:       population,
		BestFitness:           best,
		SurvivorID:            survivorID,
	}, nil
}

func (a *Arena) loadOrSeedPopulation(ctx context.Context, cfg EvolutionConfig, rng *rand.Rand) ([]*model.Agent, int, error) {
	if cfg.InitialGeneration > 0 {
		rec, ok, err := a.store.GetPopulation(ctx, cfg.RunID, cfg.InitialGeneration)
		if err != nil {
			return nil, 0, fmt.Errorf("load population: %w", err)
		}
		if ok {
			population := make([]*model.Agent, 0, len(rec.AgentIDs))
			for _, id := range rec.AgentIDs {
				stored, found, err := a.store.GetAgent(ctx, id)
				if err != nil {
					return nil, 0, fmt.Errorf("load agent %s: %w", id, err)
				}
				if !found {
					return nil, 0, fmt.Errorf("missing agent %s for run %s generation %d", id, cfg.RunID, cfg.InitialGeneration)
				}
				population = append(population, stored)
			}
			return population, cfg.InitialGeneration, nil
		}
	}
	return agent.NewPopulation(rng, cfg.PopulationSize), 0, nil
}

func (a *Arena) persistGeneration(ctx context.Context, runID string, generation int, population []*model.Agent, fitness map[string]float64, diag storage.GenerationDiagnostics) error {
	for _, ag := range population {
		if err := a.store.SaveAgent(ctx, ag); err != nil {
			return fmt.Errorf("save agent %s: %w", ag.ID, err)
		}
		if err := a.store.SaveFitness(ctx, storage.FitnessRecord{
			RunID:      runID,
			Generation: generation,
			AgentID:    ag.ID,
			Score:      fitness[ag.ID],
		}); err != nil {
			return fmt.Errorf("save fitness for %s: %w", ag.ID, err)
		}
	}
	if err := a.savePopulation(ctx, runID, generation, population); err != nil {
		return err
	}
	if err := a.store.SaveGenerationDiagnostics(ctx, diag); err != nil {
		return fmt.Errorf("save diagnostics at generation %d: %w", generation, err)
	}
	return nil
}

func (a *Arena) savePopulation(ctx context.Context, runID string, generation int, population []*model.Agent) error {
	ids := make([]string, len(population))
	for i, ag := range population {
		ids[i] = ag.ID
	}
	return a.store.SavePopulation(ctx, storage.PopulationRecord{
		RunID:      runID,
		Generation: generation,
		AgentIDs:   ids,
	})
}

func (a *Arena) persistLineage(ctx context.Context, runID string, generation int, parentID string, children []*model.Agent) error {
	for i, ag := range children {
		if err := a.store.SaveLineage(ctx, storage.LineageRecord{
			RunID:      runID,
			Generation: generation,
			ChildID:    ag.ID,
			ParentID:   parentID,
		}); err != nil {
			return fmt.Errorf("save lineage for child %d: %w", i, err)
		}
	}
	return nil
}

func summarizeGeneration(runID string, generation int, population []*model.Agent, fitness map[string]float64) storage.GenerationDiagnostics {
	if len(population) == 0 {
		return storage.GenerationDiagnostics{RunID: runID, Generation: generation}
	}

	scores := make([]float64, len(population))
	sum := 0.0
	for i, ag := range population {
		scores[i] = fitness[ag.ID]
		sum += scores[i]
	}
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	best, worst := sorted[len(sorted)-1], sorted[0]
	mean := sum / float64(len(population))

	// Ties break toward the most recently arrived agent (highest index),
	// matching evo.rank's tie-break so the reported survivor always agrees
	// with the one Evolve actually carries forward.
	bestIdx := 0
	for i, ag := range population {
		if fitness[ag.ID] >= fitness[population[bestIdx].ID] {
			bestIdx = i
		}
	}

	distinct := countDistinctTrees(population)

	return storage.GenerationDiagnostics{
		RunID:         runID,
		Generation:    generation,
		BestFitness:   best,
		MeanFitness:   mean,
		WorstFitness:  worst,
		SurvivorID:    population[bestIdx].ID,
		DistinctTrees: distinct,
	}
}

func countDistinctTrees(population []*model.Agent) int {
	seen := make(map[string]struct{}, len(population))
	for _, ag := range population {
		seen[mutate.ContentHash(ag)] = struct{}{}
	}
	return len(seen)
}
