package storage

import (
	"context"

	"zugzwang/internal/model"
)

// VersionedRecord captures schema evolution for anything persisted, so a
// later schema change can detect and migrate older rows.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
}

const CurrentSchemaVersion = 1

// PopulationRecord snapshots a generation's full agent roster.
type PopulationRecord struct {
	VersionedRecord
	RunID      string   `json:"run_id"`
	Generation int      `json:"generation"`
	AgentIDs   []string `json:"agent_ids"`
}

// FitnessRecord is one agent's score for one generation of one run.
type FitnessRecord struct {
	VersionedRecord
	RunID      string  `json:"run_id"`
	Generation int     `json:"generation"`
	AgentID    string  `json:"agent_id"`
	Score      float64 `json:"score"`
}

// GenerationDiagnostics summarizes one completed generation.
type GenerationDiagnostics struct {
	VersionedRecord
	RunID         string  `json:"run_id"`
	Generation    int     `json:"generation"`
	BestFitness   float64 `json:"best_fitness"`
	MeanFitness   float64 `json:"mean_fitness"`
	WorstFitness  float64 `json:"worst_fitness"`
	SurvivorID    string  `json:"survivor_id"`
	DistinctTrees int     `json:"distinct_trees"`
}

// LineageRecord links a child agent back to its parent and the generation
// it was produced in.
type LineageRecord struct {
	VersionedRecord
	RunID      string `json:"run_id"`
	Generation int    `json:"generation"`
	ChildID    string `json:"child_id"`
	ParentID   string `json:"parent_id"`
}

// Store is the persistence boundary every evolution run writes through.
// Every method is context-aware so a caller can bound how long persistence
// is allowed to take without that leaking into match/tournament timing.
type Store interface {
	Init(ctx context.Context) error

	SaveAgent(ctx context.Context, a *model.Agent) error
	GetAgent(ctx context.Context, id string) (*model.Agent, bool, error)

	SavePopulation(ctx context.Context, p PopulationRecord) error
	GetPopulation(ctx context.Context, runID string, generation int) (PopulationRecord, bool, error)

	SaveFitness(ctx context.Context, f FitnessRecord) error
	SaveGenerationDiagnostics(ctx context.Context, d GenerationDiagnostics) error
	GetGenerationDiagnostics(ctx context.Context, runID string, generation int) (GenerationDiagnostics, bool, error)

	SaveLineage(ctx context.Context, l LineageRecord) error
	GetLineage(ctx context.Context, runID string, childID string) (LineageRecord, bool, error)
}
