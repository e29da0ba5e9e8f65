package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

func TestDivideMatchesSequential(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := rb.CreateGame()

	parallel, err := Divide(context.Background(), rb, game, 2, 4, hashing.NewThreadSafePerftTable(0))
	require.NoError(t, err)
	sequential := engine.Divide(rb, game, 2, nil)

	require.Len(t, parallel, 20)
	assert.Equal(t, sequential, parallel)

	var total uint64
	for _, r := range parallel {
		total += r.Nodes
	}
	assert.Equal(t, uint64(400), total)
}

func TestDivideZeroDepth(t *testing.T) {
	rb := engine.NewStandardRulebook()
	results, err := Divide(context.Background(), rb, rb.CreateGame(), 0, 2, nil)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestScan960(t *testing.T) {
	rb := engine.NewChess960Rulebook()
	results, err := Scan960(context.Background(), rb, 1, 4, hashing.NewThreadSafePerftTable(0))
	require.NoError(t, err)

	require.Len(t, results, engine.Chess960Positions)
	for i, r := range results {
		require.NoError(t, r.Error)
		assert.Equal(t, i, r.Index)
		assert.NotZero(t, r.Nodes, "index %d", i)
	}

	standard := results[engine.StandardChess960Index]
	assert.Equal(t, "RNBQKBNR", standard.Label)
	assert.Equal(t, uint64(20), standard.Nodes)
}

func TestScan960Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Scan960(ctx, engine.NewChess960Rulebook(), 1, 2, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, len(results), engine.Chess960Positions)
}
