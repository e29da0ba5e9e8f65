package chess

import (
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Position is a square on the board. Row 0 is White's back rank and column 0
// is the a-file. The zero value is a1; any other value must come from
// NewPosition, MustPosition, ParseSquare or Offset so it is always on the board.
type Position struct {
	row    int8
	column int8
}

// NewPosition returns the position at (row, column), or ErrInvalidPosition if
// either coordinate is outside [0,7].
func NewPosition(row, column int) (Position, error) {
	if !onBoard(row, column) {
		return Position{}, errors.Wrapf(errors.ErrInvalidPosition, "row %d, column %d", row, column)
	}
	return Position{row: int8(row), column: int8(column)}, nil
}

// MustPosition is like NewPosition but panics on invalid coordinates.
// Use it for constants and tests.
func MustPosition(row, column int) Position {
	p, err := NewPosition(row, column)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSquare parses algebraic coordinates such as "e4".
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{Err: errors.ErrInvalidPosition, Input: s}
	}
	col := int(s[0]) - ColBase
	row := int(s[1]) - RankBase
	if !onBoard(row, col) {
		return Position{}, &errors.ParseError{Err: errors.ErrInvalidPosition, Input: s}
	}
	return Position{row: int8(row), column: int8(col)}, nil
}

// Sq is ParseSquare for literals known to be valid; it panics otherwise.
func Sq(s string) Position {
	p, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Row returns the row, 0 being White's back rank.
func (p Position) Row() int {
	return int(p.row)
}

// Column returns the column, 0 being the a-file.
func (p Position) Column() int {
	return int(p.column)
}

// Offset adds a delta to the position. The result is reported only if it
// stays on the board.
func (p Position) Offset(rowDelta, columnDelta int) (Position, bool) {
	row := int(p.row) + rowDelta
	column := int(p.column) + columnDelta
	if !onBoard(row, column) {
		return Position{}, false
	}
	return Position{row: int8(row), column: int8(column)}, true
}

// Step applies a direction to the position.
func (p Position) Step(d Direction) (Position, bool) {
	return p.Offset(d.RowDelta, d.ColumnDelta)
}

// IsLight reports whether the square is a light square (a1 is dark).
func (p Position) IsLight() bool {
	return (p.row+p.column)%2 == 1
}

// String returns algebraic coordinates, e.g. "e4".
func (p Position) String() string {
	return string([]byte{byte(ColBase + int(p.column)), byte(RankBase + int(p.row))})
}

// index orders positions a1, b1, ..., h8.
func (p Position) index() int {
	return int(p.row)*BoardSize + int(p.column)
}

func onBoard(row, column int) bool {
	return row >= FirstRow && row <= LastRow && column >= FirstColumn && column <= LastColumn
}

// AllPositions returns every square in a1..h8 order.
func AllPositions() []Position {
	out := make([]Position, 0, BoardSize*BoardSize)
	for row := FirstRow; row <= LastRow; row++ {
		for col := FirstColumn; col <= LastColumn; col++ {
			out = append(out, Position{row: int8(row), column: int8(col)})
		}
	}
	return out
}
