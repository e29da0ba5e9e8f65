package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// EnPassantRule allows a pawn to capture an opponent pawn that has just
// advanced two squares past it.
type EnPassantRule struct{}

// Commands returns the en passant capture for the pawn on from, if the last
// update was a double step landing beside it.
func (EnPassantRule) Commands(game ChessGame, from chess.Position, pawn chess.Piece) []Command {
	last, ok := game.LastUpdate()
	if !ok {
		return nil
	}
	mv, ok := last.Command.firstMove()
	if !ok {
		return nil
	}
	passed, ok := isDoubleStep(last.Game.Board(), mv)
	if !ok || passed.Colour == pawn.Colour {
		return nil
	}
	if mv.To.Row() != from.Row() || abs(mv.To.Column()-from.Column()) != 1 {
		return nil
	}
	if p, ok := game.Board().PieceOf(mv.To, passed.Colour); !ok || p.Kind != chess.Pawn {
		return nil
	}
	target, ok := from.Offset(pawn.Colour.PawnDirection(), mv.To.Column()-from.Column())
	if !ok || !game.Board().IsEmpty(target) {
		return nil
	}
	return []Command{Sequence(Move(from, target), Remove(mv.To))}
}
