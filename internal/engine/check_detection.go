package engine

import (
	"github.com/samber/lo"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ThreatAnalyzer answers whether a square is attacked. It uses raw piece
// reach only and never filters for check, so it cannot recurse into the
// legality pipeline.
type ThreatAnalyzer struct{}

// IsThreatened returns true if any piece of colour by could move to pos on
// its next turn, ignoring whether that move would be legal.
func (ThreatAnalyzer) IsThreatened(board chess.Board, pos chess.Position, by chess.Colour) bool {
	return lo.SomeBy(board.Pieces(by), func(pp chess.PlacedPiece) bool {
		return lo.Contains(reach(board, pp.Position, pp.Piece), pos)
	})
}

// Attackers returns the squares of the pieces of colour by that threaten pos.
func (ThreatAnalyzer) Attackers(board chess.Board, pos chess.Position, by chess.Colour) []chess.Position {
	return lo.FilterMap(board.Pieces(by), func(pp chess.PlacedPiece, _ int) (chess.Position, bool) {
		return pp.Position, lo.Contains(reach(board, pp.Position, pp.Piece), pos)
	})
}

// CheckRule decides whether a player's king is attacked.
type CheckRule struct {
	threats ThreatAnalyzer
}

// NewCheckRule creates a check rule using the given threat analyzer.
func NewCheckRule(threats ThreatAnalyzer) CheckRule {
	return CheckRule{threats: threats}
}

// IsInCheck returns true if the player's king is threatened by the opponent.
func (r CheckRule) IsInCheck(game ChessGame, player Player) bool {
	board := game.Board()
	king, ok := board.King(player.Colour)
	if !ok {
		return false // No king found
	}
	return r.threats.IsThreatened(board, king, player.Colour.Opposite())
}
