// Package output formats positions, legal moves and perft counts as text
// or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Rules is what the writers need from a rulebook.
type Rules interface {
	GetStatus(game engine.ChessGame) engine.Status
	GetUpdates(game engine.ChessGame, position chess.Position) []engine.Update
	IsInCheck(game engine.ChessGame, player engine.Player) bool
}

// OutputPosition writes the diagram, optional FEN, side to move and status.
func OutputPosition(w io.Writer, rules Rules, game engine.ChessGame, showFEN bool) {
	fmt.Fprint(w, game.Board().String())
	if showFEN {
		fmt.Fprintf(w, "FEN: %s\n", engine.FEN(game))
	}
	fmt.Fprintf(w, "To move: %s\n", game.ActivePlayer().Colour)
	fmt.Fprintf(w, "Status: %s\n", rules.GetStatus(game))
}

// OutputMoves writes the legal moves of the piece on from, one per line,
// marking castling, captures and checks.
func OutputMoves(w io.Writer, rules Rules, game engine.ChessGame, from chess.Position) {
	moves := DescribeMoves(rules, game, from)
	fmt.Fprintf(w, "Moves from %s: %d\n", from, len(moves))
	for _, m := range moves {
		line := m.UCI
		switch {
		case m.Castling:
			line += " (castling)"
		case m.Captured != "":
			line += " x" + m.Captured
		}
		if m.Check {
			line += " +"
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
}

// OutputDivide writes one "move: nodes" line per root move and the total.
func OutputDivide(w io.Writer, depth int, results []engine.DivideResult) uint64 {
	var total uint64
	for _, r := range results {
		fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
		total += r.Nodes
	}
	OutputPerft(w, depth, total)
	return total
}

// OutputPerft writes a perft total.
func OutputPerft(w io.Writer, depth int, nodes uint64) {
	fmt.Fprintf(w, "Perft(%d): %d\n", depth, nodes)
}

// DescribeMoves converts the legal updates from a square into move records.
func DescribeMoves(rules Rules, game engine.ChessGame, from chess.Position) []JSONMove {
	updates := rules.GetUpdates(game, from)
	moves := make([]JSONMove, 0, len(updates))
	for _, u := range updates {
		moves = append(moves, describeMove(rules, game, u))
	}
	return moves
}

// describeMove fills a move record from the state before and after an update.
func describeMove(rules Rules, before engine.ChessGame, u engine.Update) JSONMove {
	m := JSONMove{
		UCI:      engine.Notation(u.Command),
		Castling: u.Command.IsCastling(),
		Check:    rules.IsInCheck(u.Game, u.Game.ActivePlayer()),
		FEN:      engine.FEN(u.Game),
	}
	if from, ok := u.Command.Origin(); ok {
		m.From = from.String()
		if p, ok := before.Board().Piece(from); ok {
			m.Piece = pieceTypeName(p.Kind)
		}
	}
	if to, ok := u.Command.Destination(); ok {
		m.To = to.String()
	}
	if kind, ok := u.Command.Promotion(); ok {
		m.Promotion = pieceTypeName(kind)
	}
	if kind, ok := capturedKind(before.Board(), u.Game.Board(), before.PassivePlayer().Colour); ok {
		m.Captured = pieceTypeName(kind)
	}
	return m
}

// capturedKind finds the opponent piece kind that left the board.
func capturedKind(before, after chess.Board, opponent chess.Colour) (chess.Kind, bool) {
	for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
		if after.Count(opponent, kind) < before.Count(opponent, kind) {
			return kind, true
		}
	}
	return 0, false
}
