// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustParseFEN parses a FEN string and returns the game.
// It calls t.Fatal if parsing fails.
func MustParseFEN(t *testing.T, fen string) engine.ChessGame {
	t.Helper()
	game, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return game
}

// MustBoard builds a board from placements.
// It calls t.Fatal if a placement is rejected.
func MustBoard(t *testing.T, placements ...chess.PlacedPiece) chess.Board {
	t.Helper()
	board, err := chess.NewBoard(placements...)
	if err != nil {
		t.Fatalf("failed to build board: %v", err)
	}
	return board
}

// Place is shorthand for a PlacedPiece on a named square.
func Place(square string, piece chess.Piece) chess.PlacedPiece {
	return chess.PlacedPiece{Position: chess.Sq(square), Piece: piece}
}

// MustGame builds a game with White to move from placements.
// It calls t.Fatal if the board or players are rejected.
func MustGame(t *testing.T, placements ...chess.PlacedPiece) engine.ChessGame {
	t.Helper()
	game, err := engine.NewChessGame(MustBoard(t, placements...),
		engine.Player{Colour: chess.White}, engine.Player{Colour: chess.Black})
	if err != nil {
		t.Fatalf("failed to create game: %v", err)
	}
	return game
}

// MovesFrom returns the long algebraic notation of the legal updates for the
// piece on square.
func MovesFrom(rb engine.Rulebook, game engine.ChessGame, square string) []string {
	updates := rb.GetUpdates(game, chess.Sq(square))
	moves := make([]string, len(updates))
	for i, u := range updates {
		moves[i] = engine.Notation(u.Command)
	}
	return moves
}

// MustPlay plays long algebraic moves, e.g. "e2e4", and returns the game
// after the last one. It calls t.Fatal if a move is not legal.
func MustPlay(t *testing.T, rb engine.Rulebook, game engine.ChessGame, moves ...string) engine.ChessGame {
	t.Helper()
	for _, mv := range moves {
		from, err := chess.ParseSquare(mv[:2])
		if err != nil {
			t.Fatalf("bad move %q: %v", mv, err)
		}
		u, ok := engine.FindUpdate(rb.GetUpdates(game, from), mv)
		if !ok {
			t.Fatalf("move %q not legal in %s", mv, engine.FEN(game))
		}
		game = u.Game
	}
	return game
}
