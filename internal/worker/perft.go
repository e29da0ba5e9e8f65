package worker

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PerftFunc returns a ProcessFunc counting the nodes below each item's game
// to the item's depth. Workers share cache, which must be safe for
// concurrent use or nil.
func PerftFunc(src engine.MoveSource, cache engine.NodeCache) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{
			Index: item.Index,
			Label: item.Label,
			Nodes: engine.Perft(src, item.Game, item.Depth, cache),
		}
	}
}

// Divide is engine.Divide with one work item per root move.
func Divide(ctx context.Context, src engine.MoveSource, game engine.ChessGame, depth, workers int, cache engine.NodeCache) ([]engine.DivideResult, error) {
	if depth <= 0 {
		return nil, nil
	}
	start := time.Now()

	items := lo.Map(src.AllUpdates(game), func(u engine.Update, i int) WorkItem {
		return WorkItem{Index: i, Label: engine.Notation(u.Command), Game: u.Game, Depth: depth - 1}
	})
	pool := NewPool(PerftFunc(src, cache), WithWorkers(workers), WithBufferSize(len(items)))
	done, err := pool.Run(ctx, items)
	if err != nil {
		return nil, err
	}
	results := lo.Map(done, func(r ProcessResult, _ int) engine.DivideResult {
		return engine.DivideResult{Move: r.Label, Nodes: r.Nodes}
	})

	log.Debug().Int("depth", depth).Int("moves", len(results)).Dur("elapsed", time.Since(start)).Msg("divide-done")
	return sortDivide(results), nil
}

// Scan960 runs perft to depth on every Chess960 start position, one work
// item per index. Results are ordered by index and labelled with the back
// rank arrangement. On cancellation the positions counted so far are
// returned with the context error.
func Scan960(ctx context.Context, rb *engine.Chess960Rulebook, depth, workers int, cache engine.NodeCache) ([]ProcessResult, error) {
	items := make([]WorkItem, 0, engine.Chess960Positions)
	var failed []ProcessResult
	for i := 0; i < engine.Chess960Positions; i++ {
		game, err := rb.CreateGameAt(i)
		if err != nil {
			failed = append(failed, ProcessResult{Index: i, Error: fmt.Errorf("start position %d: %w", i, err)})
			continue
		}
		rank, _ := engine.Chess960BackRank(i)
		items = append(items, WorkItem{Index: i, Label: rank.String(), Game: game, Depth: depth})
	}

	pool := NewPool(PerftFunc(rb, cache), WithWorkers(workers), WithBufferSize(workers*2))
	results, err := pool.Run(ctx, items)
	if len(failed) > 0 {
		log.Warn().Int("failed", len(failed)).Msg("scan960-errors")
		results = sortByIndex(append(results, failed...))
	}
	return results, err
}

func sortDivide(results []engine.DivideResult) []engine.DivideResult {
	sort.Slice(results, func(i, j int) bool { return results[i].Move < results[j].Move })
	return results
}

func sortByIndex(results []ProcessResult) []ProcessResult {
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
