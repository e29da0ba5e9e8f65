package engine_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const kiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

var (
	_ engine.Rulebook   = (*engine.StandardRulebook)(nil)
	_ engine.Rulebook   = (*engine.Chess960Rulebook)(nil)
	_ engine.MoveSource = (*engine.StandardRulebook)(nil)
)

func sortedMoves(rb engine.Rulebook, game engine.ChessGame, square string) []string {
	moves := testutil.MovesFrom(rb, game, square)
	sort.Strings(moves)
	return moves
}

func TestStandardCreateGame(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := rb.CreateGame()

	assert.Equal(t, 32, game.Board().Len())
	assert.Equal(t, chess.White, game.ActivePlayer().Colour)
	assert.Equal(t, chess.Black, game.PassivePlayer().Colour)
	assert.Equal(t, 0, game.Ply())
	assert.Equal(t, engine.Status{Kind: engine.Ongoing}, rb.GetStatus(game))
	assert.Len(t, rb.AllUpdates(game), 20)
	assert.Equal(t, engine.InitialFEN, engine.FEN(game))

	_, ok := game.LastUpdate()
	assert.False(t, ok)
}

func TestGetUpdatesPerPiece(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := rb.CreateGame()

	tests := []struct {
		square string
		want   []string
	}{
		{"e2", []string{"e2e3", "e2e4"}},
		{"g1", []string{"g1f3", "g1h3"}},
		{"a1", nil},
		{"e1", nil},
		{"e4", nil}, // empty square
		{"e7", nil}, // opponent piece
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got := sortedMoves(rb, game, tt.square)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateEndsTurnAndRecordsItself(t *testing.T) {
	rb := engine.NewStandardRulebook()
	start := rb.CreateGame()

	updates := rb.GetUpdates(start, chess.Sq("e2"))
	u, ok := engine.FindUpdate(updates, "e2e4")
	require.True(t, ok)

	assert.Equal(t, chess.Black, u.Game.ActivePlayer().Colour)
	assert.Equal(t, 1, u.Game.Ply())

	last, ok := u.Game.LastUpdate()
	require.True(t, ok)
	assert.Equal(t, "e2e4", engine.Notation(last.Command))
	assert.Equal(t, engine.FEN(start), engine.FEN(last.Game))

	// Applying the returned command to the original game reproduces the state.
	again, err := rb.Apply(start, u.Command)
	require.NoError(t, err)
	assert.Equal(t, engine.FEN(u.Game), engine.FEN(again))
}

func TestUndo(t *testing.T) {
	rb := engine.NewStandardRulebook()
	start := rb.CreateGame()

	_, ok := rb.Undo(start)
	assert.False(t, ok)

	game := testutil.MustPlay(t, rb, start, "e2e4", "c7c5")
	prev, ok := rb.Undo(game)
	require.True(t, ok)
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", engine.FEN(prev))

	first, ok := rb.Undo(prev)
	require.True(t, ok)
	assert.Equal(t, engine.InitialFEN, engine.FEN(first))
}

func TestFoolsMate(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustPlay(t, rb, rb.CreateGame(), "f2f3", "e7e5", "g2g4", "d8h4")

	assert.Equal(t, engine.Status{Kind: engine.Checkmate, Colour: chess.White}, rb.GetStatus(game))
	assert.True(t, rb.GetStatus(game).IsTerminal())
	assert.Empty(t, rb.AllUpdates(game))

	// Without the queen the same position is quiet.
	noQueen, err := engine.Execute(game, engine.Remove(chess.Sq("h4")))
	require.NoError(t, err)
	assert.Equal(t, engine.Status{Kind: engine.Ongoing}, rb.GetStatus(noQueen))
}

func TestCheckStatus(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustParseFEN(t, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")

	status := rb.GetStatus(game)
	assert.Equal(t, engine.Status{Kind: engine.Check, Colour: chess.White}, status)
	assert.Equal(t, "Check(White)", status.String())
	assert.False(t, status.IsTerminal())

	// Only capturing the rook or stepping aside is legal.
	assert.Equal(t, []string{"e1d1", "e1e2", "e1f1"}, sortedMoves(rb, game, "e1"))
}

func TestStalemate(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustParseFEN(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")

	status := rb.GetStatus(game)
	assert.Equal(t, engine.Stalemate, status.Kind)
	assert.Equal(t, "Stalemate", status.String())
	assert.True(t, status.IsTerminal())
}

func TestPinnedPieceCannotMove(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustParseFEN(t, "4k3/8/8/8/4r3/8/4B3/4K3 w - - 0 1")

	assert.Empty(t, testutil.MovesFrom(rb, game, "e2"))
}

func TestEnPassant(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustPlay(t, rb, rb.CreateGame(), "e2e4", "a7a6", "e4e5", "d7d5")

	assert.Equal(t, []string{"e5d6", "e5e6"}, sortedMoves(rb, game, "e5"))

	captured := testutil.MustPlay(t, rb, game, "e5d6")
	assert.True(t, captured.Board().IsEmpty(chess.Sq("d5")), "passed pawn removed")
	assert.Len(t, captured.Board().Pieces(chess.Black), 15)
}

func TestEnPassantExpires(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustPlay(t, rb, rb.CreateGame(), "e2e4", "a7a6", "e4e5", "d7d5", "a2a3", "a6a5")

	assert.Equal(t, []string{"e5e6"}, sortedMoves(rb, game, "e5"))
}

func TestEnPassantFromFEN(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustParseFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")

	assert.Equal(t, []string{"e5e6", "e5f6"}, sortedMoves(rb, game, "e5"))
}

func TestPromotion(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustParseFEN(t, "7k/P7/8/8/8/8/8/K7 w - - 0 1")

	assert.Equal(t, []string{"a7a8b", "a7a8n", "a7a8q", "a7a8r"}, sortedMoves(rb, game, "a7"))

	knight := testutil.MustPlay(t, rb, game, "a7a8n")
	piece, ok := knight.Board().Piece(chess.Sq("a8"))
	require.True(t, ok)
	assert.Equal(t, chess.Knight, piece.Kind)
	assert.Equal(t, chess.White, piece.Colour)
	assert.True(t, piece.Moved)
}

func TestPromotedRookCannotCastle(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustParseFEN(t, "7k/P7/8/8/8/8/8/4K2R w K - 0 1")

	game = testutil.MustPlay(t, rb, game, "a7a8r")
	rook, ok := game.Board().Piece(chess.Sq("a8"))
	require.True(t, ok)
	assert.True(t, rook.Moved, "promoted piece starts as moved")

	game = testutil.MustPlay(t, rb, game, "h8g7", "a8a1", "g7g6")
	moves := sortedMoves(rb, game, "e1")
	assert.Contains(t, moves, "e1g1")
	assert.NotContains(t, moves, "e1c1")
}

func TestCastling(t *testing.T) {
	rb := engine.NewStandardRulebook()

	tests := []struct {
		name    string
		fen     string
		wantIn  []string
		wantOut []string
	}{
		{
			name:   "both sides",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			wantIn: []string{"e1g1", "e1c1"},
		},
		{
			name:    "through check",
			fen:     "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
			wantIn:  []string{"e1c1"},
			wantOut: []string{"e1g1"},
		},
		{
			name:    "out of check",
			fen:     "k7/8/8/4r3/8/8/8/R3K2R w KQ - 0 1",
			wantOut: []string{"e1g1", "e1c1"},
		},
		{
			name:    "into check",
			fen:     "k7/8/8/8/8/8/6r1/R3K2R w KQ - 0 1",
			wantIn:  []string{"e1c1"},
			wantOut: []string{"e1g1"},
		},
		{
			name:    "blocked",
			fen:     "r3k2r/8/8/8/8/8/8/RN2K1NR w KQkq - 0 1",
			wantOut: []string{"e1g1", "e1c1"},
		},
		{
			name:    "rook moved",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1",
			wantIn:  []string{"e1c1"},
			wantOut: []string{"e1g1"},
		},
		{
			name:   "queenside b-file attacked",
			fen:    "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1",
			wantIn: []string{"e1c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := testutil.MustParseFEN(t, tt.fen)
			moves := testutil.MovesFrom(rb, game, "e1")
			for _, m := range tt.wantIn {
				assert.Contains(t, moves, m)
			}
			for _, m := range tt.wantOut {
				assert.NotContains(t, moves, m)
			}
		})
	}
}

func TestCastlingResult(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustParseFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")

	castled := testutil.MustPlay(t, rb, game, "e1g1")
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 0 1", engine.FEN(castled))

	last, ok := castled.LastUpdate()
	require.True(t, ok)
	assert.True(t, last.Command.IsCastling())

	castled = testutil.MustPlay(t, rb, castled, "e8c8")
	assert.Equal(t, "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 2", engine.FEN(castled))
}

func TestChess960CastlingSwapsKingAndRook(t *testing.T) {
	rb := engine.NewChess960Rulebook()

	tests := []struct {
		name     string
		fen      string
		move     string
		wantKing string
		wantRook string
	}{
		{"king f1 rook g1", "4k3/8/8/8/8/8/8/5KR1 w G - 0 1", "f1g1", "g1", "f1"},
		{"king b1 rook a1", "4k3/8/8/8/8/8/8/RK6 w A - 0 1", "b1a1", "c1", "d1"},
		{"king stays on g1", "4k3/8/8/8/8/8/8/6KR w H - 0 1", "g1h1", "g1", "f1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := testutil.MustParseFEN(t, tt.fen)
			from := tt.move[:2]

			u, ok := engine.FindUpdate(rb.GetUpdates(game, chess.Sq(from)), tt.move)
			require.True(t, ok, "moves: %v", testutil.MovesFrom(rb, game, from))
			assert.True(t, u.Command.IsCastling())

			king, ok := u.Game.Board().Piece(chess.Sq(tt.wantKing))
			require.True(t, ok)
			assert.Equal(t, chess.King, king.Kind)

			rook, ok := u.Game.Board().Piece(chess.Sq(tt.wantRook))
			require.True(t, ok)
			assert.Equal(t, chess.Rook, rook.Kind)
			assert.Equal(t, 3, u.Game.Board().Len())
		})
	}
}

func TestChess960Rulebook(t *testing.T) {
	standard := engine.NewStandardRulebook().CreateGame()

	rb := engine.NewChess960Rulebook(engine.WithFixedIndex(engine.StandardChess960Index))
	assert.Equal(t, engine.FEN(standard), engine.FEN(rb.CreateGame()))

	game, err := rb.CreateGameAt(0)
	require.NoError(t, err)
	assert.Equal(t, "bbqnnrkr/pppppppp/8/8/8/8/PPPPPPPP/BBQNNRKR w KQkq - 0 1", engine.FEN(game))

	_, err = rb.CreateGameAt(960)
	assert.Error(t, err)

	bad := engine.NewChess960Rulebook(engine.WithFixedIndex(960))
	assert.Panics(t, func() { bad.CreateGame() })
}

func TestChess960RandomCreateGame(t *testing.T) {
	rb := engine.NewChess960Rulebook()
	for i := 0; i < 20; i++ {
		game := rb.CreateGame()

		var rank engine.BackRank
		for col := range rank {
			p, ok := game.Board().Piece(chess.MustPosition(chess.FirstRow, col))
			require.True(t, ok)
			rank[col] = p.Kind
		}
		_, err := engine.Chess960Index(rank)
		assert.NoError(t, err)
		assert.NotEmpty(t, rb.AllUpdates(game))
		assert.Equal(t, engine.Status{Kind: engine.Ongoing}, rb.GetStatus(game))
	}
}

func TestNoUpdateLeavesMoverInCheck(t *testing.T) {
	rb := engine.NewStandardRulebook()
	fens := []string{
		kiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	}

	for _, fen := range fens {
		game := testutil.MustParseFEN(t, fen)
		for _, u := range rb.AllUpdates(game) {
			assert.False(t, rb.IsInCheck(u.Game, u.Game.PassivePlayer()),
				"%s leaves the mover in check in %s", engine.Notation(u.Command), fen)
		}
	}
}

func TestConcurrentQueries(t *testing.T) {
	rb := engine.NewStandardRulebook()
	game := testutil.MustParseFEN(t, kiwipeteFEN)

	g := errgroup.Group{}
	for i := 0; i < 8; i++ {
		i := i
		g.Go(func() error {
			if n := len(rb.AllUpdates(game)); n != 48 {
				return fmt.Errorf("goroutine %d: %d updates, want 48", i, n)
			}
			if status := rb.GetStatus(game); status.Kind != engine.Ongoing {
				return fmt.Errorf("goroutine %d: status %s", i, status)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
