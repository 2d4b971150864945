package dataset

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"sync"

	"go.dedis.ch/kyber/v4/xof/blake2xb"

	"github.com/luca-patrignani/elemental-clash/domain/clash"
)

// DefaultPlayers is the table size of the published datasets.
const DefaultPlayers = 3

// Generator produces independent sample rounds. Each sample owns an RNG
// stream derived from Seed and its index, so the output does not depend on
// Workers.
type Generator struct {
	Players int
	Seed    uint64
	Workers int // 0 uses GOMAXPROCS
}

// NewGenerator returns a generator for the default three-player table.
func NewGenerator(seed uint64) *Generator {
	return &Generator{Players: DefaultPlayers, Seed: seed}
}

// Generate returns n labeled samples in index order.
func (g *Generator) Generate(ctx context.Context, n int) ([]Sample, error) {
	if g.Players < 2 || g.Players > clash.MaxPlayers {
		return nil, fmt.Errorf("players must be between 2 and %d, got %d", clash.MaxPlayers, g.Players)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative sample count %d", n)
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, max(n, 1))

	samples := make([]Sample, n)
	jobs := make(chan int)
	errChan := make(chan error, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s, err := g.sample(i)
				if err != nil {
					errChan <- err
					return
				}
				samples[i] = s
			}
		}()
	}

	var err error
feed:
	for i := 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case jobs <- i:
		case err = <-errChan:
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(errChan)
	if err != nil {
		return nil, err
	}
	for e := range errChan {
		return nil, e
	}
	slog.Debug("generated samples", "count", n, "players", g.Players, "seed", g.Seed)
	return samples, nil
}

// sample builds the i-th sample from its own RNG stream.
func (g *Generator) sample(i int) (Sample, error) {
	rng, err := SampleRand(g.Seed, i)
	if err != nil {
		return Sample{}, err
	}
	round := DrawRound(rng, g.Players)
	winner, err := clash.ResolveRound(round)
	if err != nil {
		return Sample{}, fmt.Errorf("sample %d: %w", i, err)
	}
	return Sample{ID: i, PlayerCards: round, Winner: winner}, nil
}

// DrawRound picks one card per player with replacement and redraws the
// whole set until no card repeats inside the round. Cards may repeat
// across rounds. The expected number of redraws grows quickly with the
// table size, so callers keep players at or below clash.MaxPlayers.
func DrawRound(rng *rand.Rand, players int) clash.Round {
	round := make(clash.Round, players)
	for {
		for p := range round {
			round[p] = clash.Play{Player: PlayerLabel(p), Card: clash.PickRandomCard(rng)}
		}
		if round.DistinctCards() {
			return round
		}
	}
}

// SampleRand derives the RNG stream of sample index from the master seed
// through a blake2xb XOF.
func SampleRand(seed uint64, index int) (*rand.Rand, error) {
	var in [16]byte
	binary.LittleEndian.PutUint64(in[:8], seed)
	binary.LittleEndian.PutUint64(in[8:], uint64(index))
	xof := blake2xb.New(in[:])
	var key [32]byte
	if _, err := xof.Read(key[:]); err != nil {
		return nil, fmt.Errorf("derive stream for sample %d: %w", index, err)
	}
	return rand.New(rand.NewChaCha8(key)), nil
}
