package engine

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// MoveSource generates every legal update for the side to move.
// Both rulebooks implement it.
type MoveSource interface {
	AllUpdates(game ChessGame) []Update
}

// NodeCache memoizes subtree sizes by position key and depth.
type NodeCache interface {
	Lookup(hash uint64, depth int) (uint64, bool)
	Store(hash uint64, depth int, nodes uint64)
}

// DivideResult is the subtree size below one root move.
type DivideResult struct {
	Move  string
	Nodes uint64
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
// cache may be nil.
func Perft(src MoveSource, game ChessGame, depth int, cache NodeCache) uint64 {
	if depth <= 0 {
		return 1
	}

	var key uint64
	if cache != nil {
		key = PositionKey(game)
		if nodes, ok := cache.Lookup(key, depth); ok {
			return nodes
		}
	}

	updates := src.AllUpdates(game)
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(updates))
	} else {
		for _, u := range updates {
			nodes += Perft(src, u.Game, depth-1, cache)
		}
	}

	if cache != nil {
		cache.Store(key, depth, nodes)
	}
	return nodes
}

// Divide runs Perft below each root move, sorted by move notation.
func Divide(src MoveSource, game ChessGame, depth int, cache NodeCache) []DivideResult {
	if depth <= 0 {
		return nil
	}
	updates := src.AllUpdates(game)
	results := make([]DivideResult, 0, len(updates))
	for _, u := range updates {
		results = append(results, DivideResult{
			Move:  Notation(u.Command),
			Nodes: Perft(src, u.Game, depth-1, cache),
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Move < results[j].Move })
	return results
}

// PositionKey hashes everything that affects future move generation: the
// board with castling-relevant Moved flags, the side to move and the file of
// a pawn that just advanced two squares.
func PositionKey(game ChessGame) uint64 {
	epFile := hashing.NoEnPassant
	if sq, ok := enPassantSquare(game); ok {
		epFile = sq.Column()
	}
	return hashing.Hash(game.Board(), game.ActivePlayer().Colour, epFile)
}
