package engine

import (
	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Rulebook is the surface the presentation layer talks to.
type Rulebook interface {
	// CreateGame returns a fresh initial state with White to move.
	CreateGame() ChessGame
	// GetStatus classifies the game for the active player.
	GetStatus(game ChessGame) Status
	// GetUpdates returns every legal update for the active player's piece on
	// position; it is empty if there is no such piece or it cannot move.
	GetUpdates(game ChessGame, position chess.Position) []Update
}

// rules holds the rule objects shared by every rulebook. They are wired once
// at construction and hold no mutable state, so a rulebook can serve
// concurrent callers.
type rules struct {
	threats  ThreatAnalyzer
	check    CheckRule
	movement MovementRule
	end      EndRule
}

func newRules() rules {
	threats := ThreatAnalyzer{}
	check := NewCheckRule(threats)
	movement := NewMovementRule(NewCastlingRule(threats), EnPassantRule{}, PromotionRule{})
	return rules{
		threats:  threats,
		check:    check,
		movement: movement,
		end:      NewEndRule(check, movement),
	}
}

// GetStatus classifies the game for the active player.
func (r rules) GetStatus(game ChessGame) Status {
	status := r.end.GetStatus(game)
	if status.IsTerminal() {
		log.Debug().Int("ply", game.Ply()).Stringer("status", status).Msg("game-over")
	}
	return status
}

// GetUpdates returns the legal updates for the active player's piece on position.
func (r rules) GetUpdates(game ChessGame, position chess.Position) []Update {
	return legalUpdates(r.movement, r.check, game, position)
}

// AllUpdates returns the legal updates of every piece of the active player.
func (r rules) AllUpdates(game ChessGame) []Update {
	return allLegalUpdates(r.movement, r.check, game)
}

// IsInCheck returns true if the player's king is threatened.
func (r rules) IsInCheck(game ChessGame, player Player) bool {
	return r.check.IsInCheck(game, player)
}

// Apply executes a command, typically the Command of an Update the user
// confirmed, against the game.
func (r rules) Apply(game ChessGame, cmd Command) (ChessGame, error) {
	return Execute(game, cmd)
}

// Undo returns the state before the last update, if there was one.
func (r rules) Undo(game ChessGame) (ChessGame, bool) {
	last, ok := game.LastUpdate()
	if !ok {
		return ChessGame{}, false
	}
	return last.Game, true
}

// Perft counts the leaf nodes of the legal move tree to depth without a cache.
func (r rules) Perft(game ChessGame, depth int) uint64 {
	return Perft(r, game, depth, nil)
}

// StandardRulebook plays ordinary chess.
type StandardRulebook struct {
	rules
}

// NewStandardRulebook creates a rulebook for standard chess.
func NewStandardRulebook() *StandardRulebook {
	return &StandardRulebook{rules: newRules()}
}

// CreateGame returns the standard initial position.
func (rb *StandardRulebook) CreateGame() ChessGame {
	game, err := NewGameFromBackRank(StandardBackRank)
	if err != nil {
		panic(err) // the standard arrangement is always valid
	}
	log.Debug().Str("variant", "standard").Msg("game-created")
	return game
}

// Chess960Rulebook plays Fischer Random chess. Rule objects are the same as
// standard chess; only the start position differs, and castling already
// locates rooks by scanning the back rank.
type Chess960Rulebook struct {
	rules
	indexSource func() int
}

// Chess960Option configures a Chess960Rulebook.
type Chess960Option func(*Chess960Rulebook)

// WithIndexSource sets the function drawing a start index for CreateGame.
// The default draws uniformly from [0,959].
func WithIndexSource(source func() int) Chess960Option {
	return func(rb *Chess960Rulebook) {
		if source != nil {
			rb.indexSource = source
		}
	}
}

// WithFixedIndex makes CreateGame always use the given start index.
func WithFixedIndex(index int) Chess960Option {
	return WithIndexSource(func() int { return index })
}

// NewChess960Rulebook creates a rulebook for Chess960.
func NewChess960Rulebook(opts ...Chess960Option) *Chess960Rulebook {
	rb := &Chess960Rulebook{
		rules:       newRules(),
		indexSource: func() int { return frand.Intn(Chess960Positions) },
	}
	for _, opt := range opts {
		opt(rb)
	}
	return rb
}

// CreateGame returns a start position drawn from the index source. An index
// source yielding a number outside [0,959] is a programming error and panics;
// a different index is never substituted.
func (rb *Chess960Rulebook) CreateGame() ChessGame {
	game, err := rb.CreateGameAt(rb.indexSource())
	if err != nil {
		panic(err)
	}
	return game
}

// CreateGameAt returns the start position numbered index.
func (rb *Chess960Rulebook) CreateGameAt(index int) (ChessGame, error) {
	rank, err := Chess960BackRank(index)
	if err != nil {
		return ChessGame{}, err
	}
	game, err := NewGameFromBackRank(rank)
	if err != nil {
		return ChessGame{}, err
	}
	log.Debug().Str("variant", "chess960").Int("index", index).Stringer("backrank", rank).Msg("game-created")
	return game, nil
}
