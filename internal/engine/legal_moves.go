package engine

import (
	"github.com/samber/lo"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// legalUpdates runs the legality pipeline for the piece on from: each
// candidate is wrapped with EndTurn and a record of itself, executed against
// the game, and dropped if it fails or leaves the mover's king in check.
func legalUpdates(movement MovementRule, check CheckRule, game ChessGame, from chess.Position) []Update {
	if _, ok := game.Board().PieceOf(from, game.ActivePlayer().Colour); !ok {
		return nil
	}
	return lo.FilterMap(movement.Commands(game, from), func(c Command, _ int) (Update, bool) {
		turn := Sequence(c, EndTurn())
		record := Sequence(turn, SetLastUpdate(Update{Game: game, Command: turn}))
		next, err := Execute(game, record)
		if err != nil {
			return Update{}, false
		}
		// After EndTurn the mover is the passive player.
		if check.IsInCheck(next, next.PassivePlayer()) {
			return Update{}, false
		}
		return Update{Game: next, Command: record}, true
	})
}

// allLegalUpdates returns the legal updates of every piece of the active player.
func allLegalUpdates(movement MovementRule, check CheckRule, game ChessGame) []Update {
	var out []Update
	for _, pp := range game.ActivePlayer().Pieces(game.Board()) {
		out = append(out, legalUpdates(movement, check, game, pp.Position)...)
	}
	return out
}

// hasLegalMoves returns true if the active player has at least one legal update.
func hasLegalMoves(movement MovementRule, check CheckRule, game ChessGame) bool {
	for _, pp := range game.ActivePlayer().Pieces(game.Board()) {
		if len(legalUpdates(movement, check, game, pp.Position)) > 0 {
			return true
		}
	}
	return false
}
