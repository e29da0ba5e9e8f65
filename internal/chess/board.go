package chess

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Board is an immutable mapping from Position to Piece. It is a plain value:
// Add and Remove return a new Board and never change the receiver.
type Board struct {
	squares  [BoardSize * BoardSize]Piece
	occupied uint64
}

// PlacedPiece pairs a piece with the square it stands on.
type PlacedPiece struct {
	Position Position
	Piece    Piece
}

// NewBoard builds a board from a set of placements.
func NewBoard(placements ...PlacedPiece) (Board, error) {
	var b Board
	var err error
	for _, pp := range placements {
		if b, err = b.Add(pp.Position, pp.Piece); err != nil {
			return Board{}, err
		}
	}
	return b, nil
}

// Piece returns the piece at the position, if any.
func (b Board) Piece(pos Position) (Piece, bool) {
	if b.occupied&bit(pos) == 0 {
		return Piece{}, false
	}
	return b.squares[pos.index()], true
}

// PieceOf returns the piece at the position only if it belongs to colour.
func (b Board) PieceOf(pos Position, colour Colour) (Piece, bool) {
	p, ok := b.Piece(pos)
	if !ok || p.Colour != colour {
		return Piece{}, false
	}
	return p, true
}

// IsEmpty reports whether no piece stands on the position.
func (b Board) IsEmpty(pos Position) bool {
	return b.occupied&bit(pos) == 0
}

// Add returns a new board with the piece placed on the position.
func (b Board) Add(pos Position, piece Piece) (Board, error) {
	if !b.IsEmpty(pos) {
		return Board{}, errors.Wrapf(errors.ErrSquareOccupied, "add %s", pos)
	}
	if b.Len() >= MaxPieces {
		return Board{}, errors.Wrapf(errors.ErrBoardFull, "add %s", pos)
	}
	b.squares[pos.index()] = piece
	b.occupied |= bit(pos)
	return b, nil
}

// Remove returns a new board without the piece on the position.
func (b Board) Remove(pos Position) (Board, error) {
	if b.IsEmpty(pos) {
		return Board{}, errors.Wrapf(errors.ErrSquareEmpty, "remove %s", pos)
	}
	b.squares[pos.index()] = Piece{}
	b.occupied &^= bit(pos)
	return b, nil
}

// Len returns the number of pieces on the board.
func (b Board) Len() int {
	n := 0
	for occ := b.occupied; occ != 0; occ &= occ - 1 {
		n++
	}
	return n
}

// All returns every piece on the board in a1..h8 order.
func (b Board) All() []PlacedPiece {
	out := make([]PlacedPiece, 0, b.Len())
	for _, pos := range AllPositions() {
		if p, ok := b.Piece(pos); ok {
			out = append(out, PlacedPiece{Position: pos, Piece: p})
		}
	}
	return out
}

// Pieces returns the pieces of one colour in a1..h8 order.
func (b Board) Pieces(colour Colour) []PlacedPiece {
	out := make([]PlacedPiece, 0, MaxPieces/2)
	for _, pp := range b.All() {
		if pp.Piece.Colour == colour {
			out = append(out, pp)
		}
	}
	return out
}

// Count returns how many pieces of the given colour and kind are on the board.
func (b Board) Count(colour Colour, kind Kind) int {
	n := 0
	for _, pp := range b.Pieces(colour) {
		if pp.Piece.Kind == kind {
			n++
		}
	}
	return n
}

// King returns the position of the colour's king.
func (b Board) King(colour Colour) (Position, bool) {
	for _, pp := range b.Pieces(colour) {
		if pp.Piece.Kind == King {
			return pp.Position, true
		}
	}
	return Position{}, false
}

// String renders the board as an 8x8 diagram with rank 8 at the top,
// FEN letters for pieces and '.' for empty squares.
func (b Board) String() string {
	var sb strings.Builder
	for row := LastRow; row >= FirstRow; row-- {
		sb.WriteByte(byte(RankBase + row))
		sb.WriteByte(' ')
		for col := FirstColumn; col <= LastColumn; col++ {
			if p, ok := b.Piece(MustPosition(row, col)); ok {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  abcdefgh\n")
	return sb.String()
}

func bit(pos Position) uint64 {
	return 1 << uint(pos.index())
}
