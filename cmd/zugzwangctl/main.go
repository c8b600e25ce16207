package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"zugzwang/internal/chessrules"
	"zugzwang/internal/platform"
	"zugzwang/internal/storage"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "evolve":
		return runEvolve(ctx, args[1:])
	case "population":
		return runPopulation(ctx, args[1:])
	case "fitness":
		return runFitness(ctx, args[1:])
	case "diagnostics":
		return runDiagnostics(ctx, args[1:])
	case "lineage":
		return runLineage(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: zugzwangctl <init|evolve|population|fitness|diagnostics|lineage> [flags]", msg)
}

func openStore(storeKind, dbPath string) (storage.Store, error) {
	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "zugzwang.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := openStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}

	arena, err := platform.StartDefault(ctx, platform.Config{
		Store:   store,
		Adapter: chessrules.NotnilAdapter{},
	})
	if err != nil {
		return err
	}

	fmt.Printf("initialized store=%s started=%t\n", *storeKind, arena.Started())
	return nil
}

func runEvolve(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("evolve", flag.ContinueOnError)
	runID := fs.String("run-id", "", "explicit run id (optional)")
	population := fs.Int("pop", 16, "population size")
	generations := fs.Int("gens", 10, "generation count")
	initialGeneration := fs.Int("initial-generation", 0, "resume from this persisted generation, if present")
	seed := fs.Int64("seed", 1, "rng seed")
	workers := fs.Int("workers", 4, "worker count")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "zugzwang.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *population <= 0 || *population%2 != 0 {
		return errors.New("pop must be a positive even number")
	}
	if *generations <= 0 {
		return errors.New("gens must be positive")
	}

	store, err := openStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}

	arena, err := platform.StartDefault(ctx, platform.Config{
		Store:   store,
		Adapter: chessrules.NotnilAdapter{},
	})
	if err != nil {
		return err
	}

	result, err := arena.RunEvolution(ctx, platform.EvolutionConfig{
		RunID:             *runID,
		PopulationSize:    *population,
		Generations:       *generations,
		InitialGeneration: *initialGeneration,
		Seed:              *seed,
		Workers:           *workers,
	})
	if err != nil {
		return err
	}

	log.Info().Str("run_id", result.RunID).Float64("best_fitness", result.BestFitness).Msg("evolution run complete")
	fmt.Printf("run completed run_id=%s generations=%s best_fitness=%.2f survivor=%s\n",
		result.RunID, humanize.Comma(int64(len(result.GenerationDiagnostics))), result.BestFitness, result.SurvivorID)
	return nil
}

func runPopulation(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("population", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	generation := fs.Int("generation", 0, "generation number")
	jsonOut := fs.Bool("json", false, "emit population as JSON")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "zugzwang.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("population requires --run-id")
	}

	store, err := openStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}

	rec, ok, err := store.GetPopulation(ctx, *runID, *generation)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no population recorded")
		return nil
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}
	fmt.Printf("run_id=%s generation=%d agents=%d\n", rec.RunID, rec.Generation, len(rec.AgentIDs))
	for _, id := range rec.AgentIDs {
		fmt.Println(id)
	}
	return nil
}

func runFitness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fitness", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	generation := fs.Int("generation", 0, "generation number")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "zugzwang.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("fitness requires --run-id")
	}

	store, err := openStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}

	diag, ok, err := store.GetGenerationDiagnostics(ctx, *runID, *generation)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no diagnostics recorded for that generation")
		return nil
	}
	fmt.Printf("generation=%d best=%.2f mean=%.2f worst=%.2f survivor=%s distinct_trees=%d\n",
		diag.Generation, diag.BestFitness, diag.MeanFitness, diag.WorstFitness, diag.SurvivorID, diag.DistinctTrees)
	return nil
}

func runLineage(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lineage", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	childID := fs.String("child-id", "", "child agent id")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "zugzwang.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("lineage requires --run-id")
	}
	if *childID == "" {
		return errors.New("lineage requires --child-id")
	}

	store, err := openStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}

	rec, ok, err := store.GetLineage(ctx, *runID, *childID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("no lineage recorded for that child")
		return nil
	}
	fmt.Printf("run_id=%s generation=%d child_id=%s parent_id=%s\n", rec.RunID, rec.Generation, rec.ChildID, rec.ParentID)
	return nil
}

func runDiagnostics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("diagnostics", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	fromGen := fs.Int("from-gen", 0, "start generation (inclusive)")
	toGen := fs.Int("to-gen", 0, "end generation (inclusive)")
	jsonOut := fs.Bool("json", false, "emit diagnostics as JSON")
	storeKind := fs.String("store", "memory", "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "zugzwang.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("diagnostics requires --run-id")
	}
	if *toGen < *fromGen {
		return errors.New("to-gen must be >= from-gen")
	}

	store, err := openStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}

	var rows []storage.GenerationDiagnostics
	for gen := *fromGen; gen <= *toGen; gen++ {
		diag, ok, err := store.GetGenerationDiagnostics(ctx, *runID, gen)
		if err != nil {
			return err
		}
		if ok {
			rows = append(rows, diag)
		}
	}
	if len(rows) == 0 {
		fmt.Println("no diagnostics recorded")
		return nil
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	for _, d := range rows {
		fmt.Printf("generation=%d best=%.2f mean=%.2f worst=%.2f survivor=%s distinct_trees=%d\n",
			d.Generation, d.BestFitness, d.MeanFitness, d.WorstFitness, d.SurvivorID, d.DistinctTrees)
	}
	return nil
}
