package evo

import (
	"context"
	"math/rand"
	"sync"

	"zugzwang/internal/match"
	"zugzwang/internal/model"
)

// TournamentConfig configures one round of pairwise games.
type TournamentConfig struct {
	Match   match.Config
	Workers int
}

func (c TournamentConfig) withDefaults() TournamentConfig {
	if c.Workers <= 0 {
		c.Workers = 4
	}
	return c
}

// MatchRecord is one played game's result, kept for diagnostics/lineage.
type MatchRecord struct {
	WhiteID, BlackID string
	Plies            int
}

// RunTournament shuffles the population into pairs and plays one game per
// pair, concurrently across a worker pool, summing each agent's fitness
// delta from its single game this round. With an odd population size the
// agent left over after pairing plays no game and scores 0.
func RunTournament(ctx context.Context, population []*model.Agent, rng *rand.Rand, cfg TournamentConfig) (map[string]float64, []MatchRecord, error) {
	cfg = cfg.withDefaults()

	order := rng.Perm(len(population))
	type pair struct{ a, b *model.Agent }
	pairs := make([]pair, 0, len(population)/2)
	for i := 0; i+1 < len(order); i += 2 {
		pairs = append(pairs, pair{population[order[i]], population[order[i+1]]})
	}

	type job struct {
		index int
		pair  pair
	}
	type result struct {
		index   int
		fitness map[string]float64
		record  MatchRecord
		err     error
	}

	jobs := make(chan job, len(pairs))
	results := make(chan result, len(pairs))

	var wg sync.WaitGroup
	workers := cfg.Workers
	if workers > len(pairs) && len(pairs) > 0 {
		workers = len(pairs)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		// Each worker gets its own seed drawn from the caller's rng, so
		// no *rand.Rand is shared across goroutines. Which worker plays
		// which pair depends on scheduling.
		workerRand := rand.New(rand.NewSource(rng.Int63()))
		go func(workerRand *rand.Rand) {
			defer wg.Done()
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					results <- result{index: j.index, err: err}
					continue
				}
				res, err := match.PlayGame(ctx, j.pair.a, j.pair.b, workerRand, cfg.Match)
				if err != nil {
					results <- result{index: j.index, err: err}
					continue
				}
				results <- result{
					index:   j.index,
					fitness: res.Fitness,
					record:  MatchRecord{WhiteID: j.pair.a.ID, BlackID: j.pair.b.ID, Plies: res.Plies},
				}
			}
		}(workerRand)
	}

	for i, p := range pairs {
		jobs <- job{index: i, pair: p}
	}
	close(jobs)
	wg.Wait()
	close(results)

	fitness := make(map[string]float64, len(population))
	for _, a := range population {
		fitness[a.ID] = 0
	}
	records := make([]MatchRecord, len(pairs))
	var firstErr error
	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		for id, delta := range r.fitness {
			fitness[id] += delta
		}
		records[r.index] = r.record
	}
	if firstErr != nil {
		return fitness, records, firstErr
	}
	return fitness, records, nil
}
