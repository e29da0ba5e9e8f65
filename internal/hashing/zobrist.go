// Package hashing provides Zobrist position keys and perft node tables.
package hashing

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// NoEnPassant is the en passant file passed to Hash when no pawn just
// advanced two squares.
const NoEnPassant = -1

// zobristSeed fixes the key set so hashes are stable between runs.
var zobristSeed = []byte("chessrules-go zobrist key seed 1")

// Zobrist holds one random key per square and piece state, plus keys for the
// side to move and the en passant file.
type Zobrist struct {
	pieces [chess.BoardSize * chess.BoardSize][2][chess.NumKinds][2]uint64
	black  uint64
	epFile [chess.BoardSize]uint64
}

// NewZobrist draws a key set from a ChaCha stream seeded with seed, which
// must be 32 bytes long.
func NewZobrist(seed []byte) *Zobrist {
	rng := frand.NewCustom(seed, 1024, 12)
	next := func() uint64 { return binary.LittleEndian.Uint64(rng.Bytes(8)) }

	z := &Zobrist{}
	for sq := range z.pieces {
		for colour := range z.pieces[sq] {
			for kind := range z.pieces[sq][colour] {
				for moved := range z.pieces[sq][colour][kind] {
					z.pieces[sq][colour][kind][moved] = next()
				}
			}
		}
	}
	z.black = next()
	for f := range z.epFile {
		z.epFile[f] = next()
	}
	return z
}

var defaultZobrist = NewZobrist(zobristSeed)

// Hash returns the Zobrist key of a position using the default key set.
func Hash(board chess.Board, toMove chess.Colour, epFile int) uint64 {
	return defaultZobrist.Hash(board, toMove, epFile)
}

// Hash returns the Zobrist key of a position. Moved flags only count for
// kings and rooks since only castling depends on them.
func (z *Zobrist) Hash(board chess.Board, toMove chess.Colour, epFile int) uint64 {
	var h uint64
	for _, pp := range board.All() {
		h ^= z.pieces[squareIndex(pp.Position)][pp.Piece.Colour][pp.Piece.Kind][movedIndex(pp.Piece)]
	}
	if toMove == chess.Black {
		h ^= z.black
	}
	if epFile >= chess.FirstColumn && epFile <= chess.LastColumn {
		h ^= z.epFile[epFile]
	}
	return h
}

func squareIndex(pos chess.Position) int {
	return pos.Row()*chess.BoardSize + pos.Column()
}

func movedIndex(p chess.Piece) int {
	if p.Moved && (p.Kind == chess.King || p.Kind == chess.Rook) {
		return 1
	}
	return 0
}
