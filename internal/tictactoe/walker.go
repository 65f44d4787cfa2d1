package tictactoe

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-enumerator/internal/entity"
)

// PlyStats describes one expansion step of the walk.
type PlyStats struct {
	Ply      int
	Mark     entity.Mark
	Frontier int
	Counts   Counts
}

// WalkResult is the outcome of a full walk: terminal records by outcome,
// per-ply statistics and the grand totals.
type WalkResult struct {
	Buckets Buckets
	Plies   []PlyStats
	Totals  Counts
}

// Step is the result of expanding a single ply.
type Step struct {
	Frontier []entity.GameRecord
	Buckets  Buckets
	Counts   Counts
}

type Walker struct {
	workers int
}

// NewWalker returns a walker that expands each ply with up to workers goroutines.
func NewWalker(workers int) *Walker {
	return &Walker{workers: max(1, workers)}
}

// Walk expands the game tree from the empty board until no game is left in progress.
func (that *Walker) Walk(ctx context.Context) (*WalkResult, error) {
	result := &WalkResult{}
	frontier := []entity.GameRecord{entity.NewGameRecord()}

	for ply := 1; len(frontier) > 0; ply++ {
		mark := MarkForPly(ply)

		step, err := that.Expand(ctx, frontier, mark)
		if err != nil {
			return nil, fmt.Errorf("failed to expand ply %d: %w", ply, err)
		}

		result.Plies = append(result.Plies, PlyStats{
			Ply:      ply,
			Mark:     mark,
			Frontier: len(frontier),
			Counts:   step.Counts,
		})
		result.Buckets.merge(&step.Buckets)

		frontier = step.Frontier
	}

	result.Totals = result.Buckets.Counts()

	return result, nil
}

// Expand plays mark on every empty cell of every frontier record and
// classifies the successors. Frontier records are split into contiguous
// shards, one goroutine each, and shard results are concatenated in order.
func (that *Walker) Expand(ctx context.Context, frontier []entity.GameRecord, mark entity.Mark) (*Step, error) {
	shardCount := min(that.workers, max(1, len(frontier)))
	shards := make([]Step, shardCount)
	shardSize := (len(frontier) + shardCount - 1) / shardCount

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(that.workers)

	for i := range shards {
		lo := min(i*shardSize, len(frontier))
		hi := min(lo+shardSize, len(frontier))

		g.Go(func() error {
			return expandShard(ctx, frontier[lo:hi], mark, &shards[i])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	step := &Step{}
	for i := range shards {
		step.Frontier = append(step.Frontier, shards[i].Frontier...)
		step.Buckets.merge(&shards[i].Buckets)
	}

	step.Counts = step.Buckets.Counts()
	step.Counts.NonTerminal = len(step.Frontier)

	return step, nil
}

func expandShard(ctx context.Context, records []entity.GameRecord, mark entity.Mark, out *Step) error {
	for _, record := range records {
		if err := ctx.Err(); err != nil {
			return err
		}

		successors, err := Generate(record, mark)
		if err != nil {
			return err
		}

		for _, successor := range successors {
			outcome, err := Classify(successor)
			if err != nil {
				return err
			}

			if !outcome.IsTerminal() {
				out.Frontier = append(out.Frontier, successor)
				continue
			}

			if err = out.Buckets.add(outcome, successor); err != nil {
				return err
			}
		}
	}

	return nil
}
