package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestEmptyBoard(t *testing.T) {
	var b Board

	t.Run("no pieces", func(t *testing.T) {
		if got := b.Len(); got != 0 {
			t.Errorf("Len() = %d; want 0", got)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for _, pos := range AllPositions() {
			if _, ok := b.Piece(pos); ok {
				t.Errorf("Piece(%s) found a piece on an empty board", pos)
			}
			if !b.IsEmpty(pos) {
				t.Errorf("IsEmpty(%s) = false; want true", pos)
			}
		}
	})

	t.Run("no kings", func(t *testing.T) {
		if _, ok := b.King(White); ok {
			t.Error("King(White) found a king on an empty board")
		}
	})
}

func TestBoardAdd(t *testing.T) {
	var b Board
	next, err := b.Add(Sq("d4"), W(Queen))
	if err != nil {
		t.Fatalf("Add(d4) error: %v", err)
	}

	if got, ok := next.Piece(Sq("d4")); !ok || got != W(Queen) {
		t.Errorf("Piece(d4) = %v, %v; want White Queen, true", got, ok)
	}
	if !b.IsEmpty(Sq("d4")) {
		t.Error("Add mutated the original board")
	}

	if _, err := next.Add(Sq("d4"), B(Rook)); !errors.Is(err, chesserrors.ErrSquareOccupied) {
		t.Errorf("Add(occupied) error = %v; want ErrSquareOccupied", err)
	}
}

func TestBoardRemove(t *testing.T) {
	b, err := NewBoard(PlacedPiece{Sq("a1"), W(Rook)}, PlacedPiece{Sq("h8"), B(Rook)})
	if err != nil {
		t.Fatal(err)
	}

	next, err := b.Remove(Sq("a1"))
	if err != nil {
		t.Fatalf("Remove(a1) error: %v", err)
	}
	if !next.IsEmpty(Sq("a1")) {
		t.Error("Remove(a1) left a piece behind")
	}
	if b.IsEmpty(Sq("a1")) {
		t.Error("Remove mutated the original board")
	}
	if next.Len() != 1 {
		t.Errorf("Len() = %d; want 1", next.Len())
	}

	if _, err := next.Remove(Sq("a1")); !errors.Is(err, chesserrors.ErrSquareEmpty) {
		t.Errorf("Remove(empty) error = %v; want ErrSquareEmpty", err)
	}
}

func TestBoardFull(t *testing.T) {
	var b Board
	var err error
	for i, pos := range AllPositions()[:MaxPieces] {
		colour := White
		if i%2 == 1 {
			colour = Black
		}
		if b, err = b.Add(pos, NewPiece(colour, Pawn)); err != nil {
			t.Fatalf("Add(%s) error: %v", pos, err)
		}
	}
	if _, err := b.Add(Sq("h8"), B(Queen)); !errors.Is(err, chesserrors.ErrBoardFull) {
		t.Errorf("Add(33rd piece) error = %v; want ErrBoardFull", err)
	}
}

func TestPieceOf(t *testing.T) {
	b, err := NewBoard(PlacedPiece{Sq("e1"), W(King)})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		colour Colour
		want   bool
	}{
		{"matching colour", White, true},
		{"other colour", Black, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := b.PieceOf(Sq("e1"), tt.colour)
			if ok != tt.want {
				t.Errorf("PieceOf(e1, %v) ok = %v; want %v", tt.colour, ok, tt.want)
			}
		})
	}
}

func TestPiecesAndCount(t *testing.T) {
	b, err := NewBoard(
		PlacedPiece{Sq("h1"), W(Rook)},
		PlacedPiece{Sq("a1"), W(Rook)},
		PlacedPiece{Sq("e1"), W(King)},
		PlacedPiece{Sq("e8"), B(King)},
	)
	if err != nil {
		t.Fatal(err)
	}

	white := b.Pieces(White)
	if len(white) != 3 {
		t.Fatalf("Pieces(White) = %d pieces; want 3", len(white))
	}
	if white[0].Position != Sq("a1") || white[2].Position != Sq("h1") {
		t.Errorf("Pieces(White) order = %v, %v ...; want a1 first and h1 last", white[0].Position, white[2].Position)
	}
	if got := b.Count(White, Rook); got != 2 {
		t.Errorf("Count(White, Rook) = %d; want 2", got)
	}
	if pos, ok := b.King(Black); !ok || pos != Sq("e8") {
		t.Errorf("King(Black) = %v, %v; want e8, true", pos, ok)
	}
}

func TestBoardString(t *testing.T) {
	b, err := NewBoard(PlacedPiece{Sq("e1"), W(King)}, PlacedPiece{Sq("e8"), B(King)})
	if err != nil {
		t.Fatal(err)
	}
	want := "8 ....k...\n" +
		"7 ........\n" +
		"6 ........\n" +
		"5 ........\n" +
		"4 ........\n" +
		"3 ........\n" +
		"2 ........\n" +
		"1 ....K...\n" +
		"  abcdefgh\n"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
