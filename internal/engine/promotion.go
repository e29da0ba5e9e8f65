package engine

import (
	"github.com/samber/lo"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// promotionKinds lists the pieces a pawn may become, strongest first.
var promotionKinds = []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// PromotionRule replaces a pawn reaching the far rank.
type PromotionRule struct{}

// Expand returns the move unchanged unless the pawn lands on its promotion
// rank, in which case it returns one command per promotion piece. Promoted
// pieces count as moved so they never qualify for castling.
func (PromotionRule) Expand(move Command, pawn chess.Piece) []Command {
	to := move.To
	if to.Row() != pawn.Colour.PromotionRank() {
		return []Command{move}
	}
	return lo.Map(promotionKinds, func(kind chess.Kind, _ int) Command {
		promoted := chess.NewPiece(pawn.Colour, kind).WithMoved()
		return Sequence(move, Remove(to), Spawn(to, promoted))
	})
}
