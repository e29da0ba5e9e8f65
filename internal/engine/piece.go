package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// reach returns the squares the piece on from attacks: every destination its
// ordinary movement could capture on, excluding squares held by its own side.
// Pawns reach their forward diagonals whether or not anything stands there.
// Castling and en passant are not attacks and are never included.
func reach(board chess.Board, from chess.Position, piece chess.Piece) []chess.Position {
	switch piece.Kind {
	case chess.Pawn:
		return pawnAttacks(board, from, piece.Colour)
	case chess.Knight:
		return steps(board, from, piece.Colour, chess.KnightJumps)
	case chess.Bishop:
		return slides(board, from, piece.Colour, chess.Diagonals)
	case chess.Rook:
		return slides(board, from, piece.Colour, chess.Orthogonals)
	case chess.Queen:
		return slides(board, from, piece.Colour, chess.AllDirections)
	case chess.King:
		return steps(board, from, piece.Colour, chess.AllDirections)
	}
	return nil
}

// pieceMoves turns the reach of a non-pawn piece into Move commands.
func pieceMoves(board chess.Board, from chess.Position, piece chess.Piece) []Command {
	targets := reach(board, from, piece)
	cmds := make([]Command, 0, len(targets))
	for _, to := range targets {
		cmds = append(cmds, Move(from, to))
	}
	return cmds
}
