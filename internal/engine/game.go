package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Player is one side of the game.
type Player struct {
	Colour chess.Colour
}

// Pieces returns the player's pieces on the board.
func (p Player) Pieces(board chess.Board) []chess.PlacedPiece {
	return board.Pieces(p.Colour)
}

// Update pairs a game state with the command that produced it. This is the
// unit a caller applies when the user picks a move.
type Update struct {
	Game    ChessGame
	Command Command
}

// ChessGame is an immutable snapshot of a game. Every successful Execute
// produces a new ChessGame; none is changed after construction.
type ChessGame struct {
	board      chess.Board
	active     Player
	passive    Player
	lastUpdate *Update
	ply        int
}

// NewChessGame builds a game from a board and the two players. The players
// must have opposite colours and the board must hold exactly one king of each
// colour.
func NewChessGame(board chess.Board, active, passive Player) (ChessGame, error) {
	if active.Colour == passive.Colour {
		return ChessGame{}, errors.ErrInvalidPlayers
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(c, chess.King); n != 1 {
			return ChessGame{}, errors.Wrapf(errors.ErrMissingKing, "%s has %d", c, n)
		}
	}
	return ChessGame{board: board, active: active, passive: passive}, nil
}

// Board returns the current board.
func (g ChessGame) Board() chess.Board {
	return g.board
}

// ActivePlayer returns the player to move.
func (g ChessGame) ActivePlayer() Player {
	return g.active
}

// PassivePlayer returns the player who moved last.
func (g ChessGame) PassivePlayer() Player {
	return g.passive
}

// LastUpdate returns the update that led to this state. Its Game is the state
// the command was applied to, not this one.
func (g ChessGame) LastUpdate() (Update, bool) {
	if g.lastUpdate == nil {
		return Update{}, false
	}
	return *g.lastUpdate, true
}

// Ply returns the number of completed turns.
func (g ChessGame) Ply() int {
	return g.ply
}

// StatusKind classifies a game state.
type StatusKind int

const (
	Ongoing StatusKind = iota
	Check
	Checkmate
	Stalemate
)

// String returns the name of the status kind.
func (k StatusKind) String() string {
	switch k {
	case Check:
		return "Check"
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Ongoing"
}

// Status is the outcome of EndRule. Colour names the player in check or
// checkmated; it is meaningless for Ongoing and Stalemate.
type Status struct {
	Kind   StatusKind
	Colour chess.Colour
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool {
	return s.Kind == Checkmate || s.Kind == Stalemate
}

// String returns e.g. "Checkmate(Black)".
func (s Status) String() string {
	if s.Kind == Check || s.Kind == Checkmate {
		return s.Kind.String() + "(" + s.Colour.String() + ")"
	}
	return s.Kind.String()
}
