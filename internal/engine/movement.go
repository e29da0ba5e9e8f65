package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// MovementRule produces the candidate commands for a piece, composing the
// special-move rules. Candidates are not yet filtered for check.
type MovementRule struct {
	castling  CastlingRule
	enPassant EnPassantRule
	promotion PromotionRule
}

// NewMovementRule creates a movement rule from its special-move sub-rules.
func NewMovementRule(castling CastlingRule, enPassant EnPassantRule, promotion PromotionRule) MovementRule {
	return MovementRule{castling: castling, enPassant: enPassant, promotion: promotion}
}

// Commands returns every candidate command for the piece on from.
// It returns nil for an empty square.
func (r MovementRule) Commands(game ChessGame, from chess.Position) []Command {
	board := game.Board()
	piece, ok := board.Piece(from)
	if !ok {
		return nil
	}

	switch piece.Kind {
	case chess.Pawn:
		return r.pawnCommands(game, from, piece)
	case chess.King:
		cmds := pieceMoves(board, from, piece)
		return append(cmds, r.castling.Commands(game, from, piece)...)
	}
	return pieceMoves(board, from, piece)
}

// pawnCommands generates pushes, captures, en passant and promotions.
func (r MovementRule) pawnCommands(game ChessGame, from chess.Position, pawn chess.Piece) []Command {
	board := game.Board()
	var cmds []Command
	for _, to := range pawnPushes(board, from, pawn.Colour) {
		cmds = append(cmds, r.promotion.Expand(Move(from, to), pawn)...)
	}
	for _, to := range pawnCaptures(board, from, pawn.Colour) {
		cmds = append(cmds, r.promotion.Expand(Move(from, to), pawn)...)
	}
	return append(cmds, r.enPassant.Commands(game, from, pawn)...)
}
