package engine

import (
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Notation returns the long algebraic form of a command: origin and
// destination squares plus a lowercase promotion letter, e.g. "e2e4",
// "e7e8q". Castling is written as the king's journey, e.g. "e1g1", when the
// king travels two or more files. Otherwise, as can happen in Chess960, it is
// written as the king taking its own rook, e.g. "b1a1", so it never clashes
// with an ordinary king move. Commands that move nothing are written "0000".
func Notation(cmd Command) string {
	from, ok := cmd.Origin()
	if !ok {
		return "0000"
	}
	to, ok := cmd.Destination()
	if !ok {
		return "0000"
	}
	if cmd.IsCastling() && abs(to.Column()-from.Column()) < 2 {
		if rook, ok := castlingRook(cmd, from); ok {
			to = rook
		}
	}
	s := from.String() + to.String()
	if kind, ok := cmd.Promotion(); ok {
		s += string(unicode.ToLower(rune(kind.Letter())))
	}
	return s
}

// castlingRook returns the square the castling rook started on.
func castlingRook(cmd Command, king chess.Position) (chess.Position, bool) {
	for _, s := range cmd.Steps() {
		if s.Kind == RemoveCommand && s.At != king {
			return s.At, true
		}
	}
	return chess.Position{}, false
}

// FindUpdate returns the update whose notation matches move, e.g. "g1f3".
func FindUpdate(updates []Update, move string) (Update, bool) {
	for _, u := range updates {
		if Notation(u.Command) == move {
			return u, true
		}
	}
	return Update{}, false
}
