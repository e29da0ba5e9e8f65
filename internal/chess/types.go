// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns +1 for White, -1 for Black (the row delta of a pawn push).
func (c Colour) PawnDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// BackRank returns the row holding the colour's pieces at the start of a game.
func (c Colour) BackRank() int {
	if c == White {
		return FirstRow
	}
	return LastRow
}

// PawnRank returns the row holding the colour's pawns at the start of a game.
func (c Colour) PawnRank() int {
	return c.BackRank() + c.PawnDirection()
}

// PromotionRank returns the row on which the colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().BackRank()
}

// Kind represents a chess piece type.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Piece is an immutable chess piece. Moved records whether the piece has left
// its square since the game began; it matters for castling eligibility.
type Piece struct {
	Kind   Kind
	Colour Colour
	Moved  bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates an unmoved white piece.
func W(kind Kind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind Kind) Piece {
	return NewPiece(Black, kind)
}

// WithMoved returns a copy of the piece marked as moved.
func (p Piece) WithMoved() Piece {
	p.Moved = true
	return p
}

// Letter returns the FEN letter of the piece: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Kind.String()
}

// Direction is a (row, column) step on the board.
type Direction struct {
	RowDelta    int
	ColumnDelta int
}

// Direction tables used by move generation.
var (
	Orthogonals = []Direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	Diagonals   = []Direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	AllDirections = append(append([]Direction{}, Orthogonals...), Diagonals...)

	KnightJumps = []Direction{
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	}
)

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	MaxPieces = 32

	FirstRow    = 0
	LastRow     = BoardSize - 1
	FirstColumn = 0
	LastColumn  = BoardSize - 1

	RankBase = '1'
	ColBase  = 'a'
)
