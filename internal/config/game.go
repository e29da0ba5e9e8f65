package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RandomIndex asks for a Chess960 start position drawn at random.
const RandomIndex = -1

// Chess960 indices run from 0 to maxChess960Index inclusive.
const maxChess960Index = 959

// GameConfig holds settings that choose the position to work on.
type GameConfig struct {
	// Variant selects standard chess or Chess960
	Variant Variant

	// Chess960Index is the start position number, or RandomIndex
	Chess960Index int

	// FEN overrides the start position when non-empty
	FEN string

	// Square lists the legal moves of the piece on it, e.g. "e2"
	Square string

	// Moves are long algebraic moves played from the start position
	Moves []string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Variant:       Standard,
		Chess960Index: RandomIndex,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.Chess960Index != RandomIndex && (g.Chess960Index < 0 || g.Chess960Index > maxChess960Index) {
		return invalid("chess960 index %d outside [0,%d]", g.Chess960Index, maxChess960Index)
	}
	if g.Chess960Index != RandomIndex && g.Variant != Chess960 {
		return invalid("chess960 index given for %s variant", g.Variant)
	}
	if len(g.Square) != 0 && len(g.Square) != 2 {
		return invalid("square %q", g.Square)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidConfig)
}
