package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnAttacks returns the pawn's forward diagonals not held by its own side.
func pawnAttacks(board chess.Board, from chess.Position, colour chess.Colour) []chess.Position {
	dir := colour.PawnDirection()
	var out []chess.Position
	for _, dc := range []int{-1, 1} {
		to, ok := from.Offset(dir, dc)
		if !ok {
			continue
		}
		if p, occupied := board.Piece(to); occupied && p.Colour == colour {
			continue
		}
		out = append(out, to)
	}
	return out
}

// pawnPushes returns the single push and, from the pawn rank, the double push.
// Both need every square on the way to be empty.
func pawnPushes(board chess.Board, from chess.Position, colour chess.Colour) []chess.Position {
	dir := colour.PawnDirection()
	one, ok := from.Offset(dir, 0)
	if !ok || !board.IsEmpty(one) {
		return nil
	}
	out := []chess.Position{one}
	if from.Row() == colour.PawnRank() {
		if two, ok := from.Offset(2*dir, 0); ok && board.IsEmpty(two) {
			out = append(out, two)
		}
	}
	return out
}

// pawnCaptures returns the forward diagonals holding an opponent piece.
func pawnCaptures(board chess.Board, from chess.Position, colour chess.Colour) []chess.Position {
	var out []chess.Position
	for _, to := range pawnAttacks(board, from, colour) {
		if _, ok := board.PieceOf(to, colour.Opposite()); ok {
			out = append(out, to)
		}
	}
	return out
}

// isDoubleStep reports whether a move from one square to another on the
// given board was a pawn advancing two rows.
func isDoubleStep(board chess.Board, mv Command) (chess.Piece, bool) {
	p, ok := board.Piece(mv.From)
	if !ok || p.Kind != chess.Pawn {
		return chess.Piece{}, false
	}
	if abs(mv.To.Row()-mv.From.Row()) != 2 || mv.To.Column() != mv.From.Column() {
		return chess.Piece{}, false
	}
	return p, true
}
