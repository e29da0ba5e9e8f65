package engine

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Chess960 numbering bounds. StandardChess960Index is RNBQKBNR.
const (
	Chess960Positions     = 960
	StandardChess960Index = 518
)

// knightPairs lists the placements of two knights on five free squares, in
// Scharnagl order.
var knightPairs = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// BackRank is the arrangement of pieces on a back rank, a-file first.
type BackRank [chess.BoardSize]chess.Kind

// StandardBackRank is the ordinary chess arrangement.
var StandardBackRank = BackRank{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// String returns the arrangement as piece letters, e.g. "RNBQKBNR".
func (r BackRank) String() string {
	var sb strings.Builder
	for _, k := range r {
		sb.WriteByte(k.Letter())
	}
	return sb.String()
}

// Chess960BackRank returns the arrangement numbered index in Scharnagl's
// scheme. Every index in [0,959] maps to a distinct arrangement with bishops
// on opposite colours and the king between the rooks.
//
//	light bishop  file 2*(n%4)+1
//	dark bishop   file 2*((n/4)%4)
//	queen         ((n/16)%6)-th free file
//	knights       knightPairs[n/96] among the five free files
//	R K R         the remaining three files in order
func Chess960BackRank(index int) (BackRank, error) {
	if index < 0 || index >= Chess960Positions {
		return BackRank{}, errors.Wrapf(errors.ErrInvalidChess960Index, "index %d", index)
	}

	var rank BackRank
	filled := [chess.BoardSize]bool{}
	place := func(col int, kind chess.Kind) {
		rank[col] = kind
		filled[col] = true
	}
	free := func() []int {
		var cols []int
		for col, f := range filled {
			if !f {
				cols = append(cols, col)
			}
		}
		return cols
	}

	n := index
	place(2*(n%4)+1, chess.Bishop)
	n /= 4
	place(2*(n%4), chess.Bishop)
	n /= 4
	place(free()[n%6], chess.Queen)
	n /= 6

	cols := free()
	pair := knightPairs[n]
	place(cols[pair[0]], chess.Knight)
	place(cols[pair[1]], chess.Knight)

	cols = free()
	place(cols[0], chess.Rook)
	place(cols[1], chess.King)
	place(cols[2], chess.Rook)

	return rank, nil
}

// Chess960Index returns the Scharnagl number of an arrangement.
func Chess960Index(rank BackRank) (int, error) {
	for i := 0; i < Chess960Positions; i++ {
		r, err := Chess960BackRank(i)
		if err != nil {
			return 0, err
		}
		if r == rank {
			return i, nil
		}
	}
	return 0, errors.Wrapf(errors.ErrInvalidChess960Index, "arrangement %s", rank)
}

// NewGameFromBackRank sets up the start position for an arrangement: the
// back ranks mirror each other by file and pawns fill the second and seventh
// ranks. White moves first.
func NewGameFromBackRank(rank BackRank) (ChessGame, error) {
	placements := make([]chess.PlacedPiece, 0, chess.MaxPieces)
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for col, kind := range rank {
			placements = append(placements,
				chess.PlacedPiece{
					Position: chess.MustPosition(colour.BackRank(), col),
					Piece:    chess.NewPiece(colour, kind),
				},
				chess.PlacedPiece{
					Position: chess.MustPosition(colour.PawnRank(), col),
					Piece:    chess.NewPiece(colour, chess.Pawn),
				},
			)
		}
	}

	board, err := chess.NewBoard(placements...)
	if err != nil {
		return ChessGame{}, err
	}
	return NewChessGame(board, Player{Colour: chess.White}, Player{Colour: chess.Black})
}
