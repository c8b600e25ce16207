//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"zugzwang/internal/model"
)

// SQLiteStore persists every record type to a single sqlite file using the
// pure-Go, cgo-free modernc.org/sqlite driver. Only built when the sqlite
// build tag is set; otherwise MemoryStore is the default.
type SQLiteStore struct {
	path string
	mu   sync.RWMutex
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init(ctx context.Context) error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite store: %w", err)
	}
	s.db = db
	return s.createTables(ctx)
}

func (s *SQLiteStore) createTables(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS agents (
			id TEXT PRIMARY KEY,
			blob TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS populations (
			run_id TEXT NOT NULL,
			generation INTEGER NOT NULL,
			agent_ids TEXT NOT NULL,
			PRIMARY KEY (run_id, generation)
		)`,
		`CREATE TABLE IF NOT EXISTS fitness (
			run_id TEXT NOT NULL,
			generation INTEGER NOT NULL,
			agent_id TEXT NOT NULL,
			score REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS generation_diagnostics (
			run_id TEXT NOT NULL,
			generation INTEGER NOT NULL,
			best_fitness REAL NOT NULL,
			mean_fitness REAL NOT NULL,
			worst_fitness REAL NOT NULL,
			survivor_id TEXT NOT NULL,
			distinct_trees INTEGER NOT NULL,
			PRIMARY KEY (run_id, generation)
		)`,
		`CREATE TABLE IF NOT EXISTS lineage (
			run_id TEXT NOT NULL,
			generation INTEGER NOT NULL,
			child_id TEXT NOT NULL,
			parent_id TEXT NOT NULL,
			PRIMARY KEY (run_id, child_id)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) SaveAgent(ctx context.Context, a *model.Agent) error {
	blob, err := EncodeAgent(a)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO agents (id, blob) VALUES (?, ?) ON CONFLICT(id) DO UPDATE SET blob = excluded.blob`,
		a.ID, string(blob))
	return err
}

func (s *SQLiteStore) GetAgent(ctx context.Context, id string) (*model.Agent, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var blob string
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM agents WHERE id = ?`, id).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	a, err := DecodeAgent([]byte(blob))
	if err != nil {
		return nil, false, err
	}
	return a, true, nil
}

func (s *SQLiteStore) SavePopulation(ctx context.Context, p PopulationRecord) error {
	ids, err := json.Marshal(p.AgentIDs)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO populations (run_id, generation, agent_ids) VALUES (?, ?, ?)
		 ON CONFLICT(run_id, generation) DO UPDATE SET agent_ids = excluded.agent_ids`,
		p.RunID, p.Generation, string(ids))
	return err
}

func (s *SQLiteStore) GetPopulation(ctx context.Context, runID string, generation int) (PopulationRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids string
	err := s.db.QueryRowContext(ctx,
		`SELECT agent_ids FROM populations WHERE run_id = ? AND generation = ?`, runID, generation).Scan(&ids)
	if err == sql.ErrNoRows {
		return PopulationRecord{}, false, nil
	}
	if err != nil {
		return PopulationRecord{}, false, err
	}
	var agentIDs []string
	if err := json.Unmarshal([]byte(ids), &agentIDs); err != nil {
		return PopulationRecord{}, false, err
	}
	return PopulationRecord{
		VersionedRecord: VersionedRecord{SchemaVersion: CurrentSchemaVersion},
		RunID:           runID,
		Generation:      generation,
		AgentIDs:        agentIDs,
	}, true, nil
}

func (s *SQLiteStore) SaveFitness(ctx context.Context, f FitnessRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fitness (run_id, generation, agent_id, score) VALUES (?, ?, ?, ?)`,
		f.RunID, f.Generation, f.AgentID, f.Score)
	return err
}

func (s *SQLiteStore) SaveGenerationDiagnostics(ctx context.Context, d GenerationDiagnostics) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO generation_diagnostics
			(run_id, generation, best_fitness, mean_fitness, worst_fitness, survivor_id, distinct_trees)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(run_id, generation) DO UPDATE SET
			best_fitness = excluded.best_fitness,
			mean_fitness = excluded.mean_fitness,
			worst_fitness = excluded.worst_fitness,
			survivor_id = excluded.survivor_id,
			distinct_trees = excluded.distinct_trees`,
		d.RunID, d.Generation, d.BestFitness, d.MeanFitness, d.WorstFitness, d.SurvivorID, d.DistinctTrees)
	return err
}

func (s *SQLiteStore) GetGenerationDiagnostics(ctx context.Context, runID string, generation int) (GenerationDiagnostics, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d := GenerationDiagnostics{RunID: runID, Generation: generation, VersionedRecord: VersionedRecord{SchemaVersion: CurrentSchemaVersion}}
	err := s.db.QueryRowContext(ctx,
		`SELECT best_fitness, mean_fitness, worst_fitness, survivor_id, distinct_trees
		 FROM generation_diagnostics WHERE run_id = ? AND generation = ?`, runID, generation).
		Scan(&d.BestFitness, &d.MeanFitness, &d.WorstFitness, &d.SurvivorID, &d.DistinctTrees)
	if err == sql.ErrNoRows {
		return GenerationDiagnostics{}, false, nil
	}
	if err != nil {
		return GenerationDiagnostics{}, false, err
	}
	return d, true, nil
}

func (s *SQLiteStore) SaveLineage(ctx context.Context, l LineageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lineage (run_id, generation, child_id, parent_id) VALUES (?, ?, ?, ?)
		 ON CONFLICT(run_id, child_id) DO UPDATE SET parent_id = excluded.parent_id, generation = excluded.generation`,
		l.RunID, l.Generation, l.ChildID, l.ParentID)
	return err
}

func (s *SQLiteStore) GetLineage(ctx context.Context, runID string, childID string) (LineageRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l := LineageRecord{RunID: runID, VersionedRecord: VersionedRecord{SchemaVersion: CurrentSchemaVersion}}
	err := s.db.QueryRowContext(ctx,
		`SELECT generation, child_id, parent_id FROM lineage WHERE run_id = ? AND child_id = ?`, runID, childID).
		Scan(&l.Generation, &l.ChildID, &l.ParentID)
	if err == sql.ErrNoRows {
		return LineageRecord{}, false, nil
	}
	if err != nil {
		return LineageRecord{}, false, err
	}
	return l, true, nil
}
