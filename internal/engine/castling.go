package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Castling destinations are fixed files in both standard chess and Chess960.
const (
	queensideKingColumn = 2 // c-file
	queensideRookColumn = 3 // d-file
	kingsideKingColumn  = 6 // g-file
	kingsideRookColumn  = 5 // f-file
)

// CastlingRule generates castling for a king. Rooks are found by scanning the
// back rank, so Chess960 start files work the same as standard ones.
type CastlingRule struct {
	threats ThreatAnalyzer
}

// NewCastlingRule creates a castling rule using the given threat analyzer.
func NewCastlingRule(threats ThreatAnalyzer) CastlingRule {
	return CastlingRule{threats: threats}
}

// Commands returns one castling command per eligible rook. Castling needs an
// unmoved king on its back rank and an unmoved rook on the same rank; every
// square either piece passes over or lands on must be empty apart from the
// two of them; and no square the king starts on, crosses or lands on may be
// threatened.
func (r CastlingRule) Commands(game ChessGame, kingPos chess.Position, king chess.Piece) []Command {
	row := king.Colour.BackRank()
	if king.Moved || kingPos.Row() != row {
		return nil
	}
	board := game.Board()

	var cmds []Command
	for col := chess.FirstColumn; col <= chess.LastColumn; col++ {
		rookPos := chess.MustPosition(row, col)
		rook, ok := board.PieceOf(rookPos, king.Colour)
		if !ok || rook.Kind != chess.Rook || rook.Moved {
			continue
		}

		kingCol, rookCol := kingsideKingColumn, kingsideRookColumn
		if col < kingPos.Column() {
			kingCol, rookCol = queensideKingColumn, queensideRookColumn
		}

		if !r.pathClear(board, kingPos, rookPos, kingCol, rookCol) {
			continue
		}
		if !r.pathSafe(board, kingPos, kingCol, king.Colour.Opposite()) {
			continue
		}

		kingDest := chess.MustPosition(row, kingCol)
		rookDest := chess.MustPosition(row, rookCol)
		cmds = append(cmds, Sequence(
			Remove(kingPos),
			Remove(rookPos),
			Spawn(kingDest, king.WithMoved()),
			Spawn(rookDest, rook.WithMoved()),
		))
	}
	return cmds
}

// pathClear checks the squares covered by both the king's and the rook's
// journeys. Only the castling king and rook may stand on them.
func (r CastlingRule) pathClear(board chess.Board, kingPos, rookPos chess.Position, kingCol, rookCol int) bool {
	row := kingPos.Row()
	squares := append(rowSpan(row, kingPos.Column(), kingCol), rowSpan(row, rookPos.Column(), rookCol)...)
	for _, sq := range squares {
		if sq == kingPos || sq == rookPos {
			continue
		}
		if !board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// pathSafe checks that the king never stands on a threatened square.
func (r CastlingRule) pathSafe(board chess.Board, kingPos chess.Position, kingCol int, by chess.Colour) bool {
	for _, sq := range rowSpan(kingPos.Row(), kingPos.Column(), kingCol) {
		if r.threats.IsThreatened(board, sq, by) {
			return false
		}
	}
	return true
}
