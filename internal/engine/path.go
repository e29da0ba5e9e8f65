package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// steps returns the squares one step away in each direction that are empty
// or hold an opponent piece.
func steps(board chess.Board, from chess.Position, colour chess.Colour, dirs []chess.Direction) []chess.Position {
	var out []chess.Position
	for _, d := range dirs {
		to, ok := from.Step(d)
		if !ok {
			continue
		}
		if p, occupied := board.Piece(to); occupied && p.Colour == colour {
			continue
		}
		out = append(out, to)
	}
	return out
}

// slides walks each direction until the board edge or the first piece. The
// first piece's square is included only if it holds an opponent piece.
func slides(board chess.Board, from chess.Position, colour chess.Colour, dirs []chess.Direction) []chess.Position {
	var out []chess.Position
	for _, d := range dirs {
		to, ok := from.Step(d)
		for ok {
			if p, occupied := board.Piece(to); occupied {
				if p.Colour != colour {
					out = append(out, to)
				}
				break // Blocked
			}
			out = append(out, to)
			to, ok = to.Step(d)
		}
	}
	return out
}

// rowSpan returns the squares of a row between two columns, both inclusive.
func rowSpan(row, a, b int) []chess.Position {
	lo, hi := a, b
	if lo > hi {
		lo, hi = hi, lo
	}
	out := make([]chess.Position, 0, hi-lo+1)
	for col := lo; col <= hi; col++ {
		out = append(out, chess.MustPosition(row, col))
	}
	return out
}
