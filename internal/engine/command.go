// Package engine provides chess move generation, legality filtering and game
// status detection over immutable game states.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// CommandKind tags the variant held by a Command.
type CommandKind int

const (
	MoveCommand CommandKind = iota
	RemoveCommand
	SpawnCommand
	SequenceCommand
	EndTurnCommand
	SetLastUpdateCommand
)

// String returns the name of the command kind.
func (k CommandKind) String() string {
	names := []string{"Move", "Remove", "Spawn", "Sequence", "EndTurn", "SetLastUpdate"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Command is one reified state transition. Only the fields relevant to Kind
// are set:
//
//	Move          From, To
//	Remove        At
//	Spawn         At, Piece
//	Sequence      First, Second
//	EndTurn       -
//	SetLastUpdate Update
//
// Commands are data; Execute is the single interpreter for them.
type Command struct {
	Kind   CommandKind
	From   chess.Position
	To     chess.Position
	At     chess.Position
	Piece  chess.Piece
	First  *Command
	Second *Command
	Update *Update
}

// Move relocates the active player's piece, capturing whatever opponent piece
// stands on the destination.
func Move(from, to chess.Position) Command {
	return Command{Kind: MoveCommand, From: from, To: to}
}

// Remove takes the piece off a square.
func Remove(at chess.Position) Command {
	return Command{Kind: RemoveCommand, At: at}
}

// Spawn places a piece on an empty square.
func Spawn(at chess.Position, piece chess.Piece) Command {
	return Command{Kind: SpawnCommand, At: at, Piece: piece}
}

// EndTurn swaps the active and passive players.
func EndTurn() Command {
	return Command{Kind: EndTurnCommand}
}

// SetLastUpdate records the update that produced the next state.
func SetLastUpdate(u Update) Command {
	return Command{Kind: SetLastUpdateCommand, Update: &u}
}

// Sequence runs the commands left to right as one atomic command. It panics
// when called with no commands.
func Sequence(cmds ...Command) Command {
	switch len(cmds) {
	case 0:
		panic("engine: empty command sequence")
	case 1:
		return cmds[0]
	}
	first := cmds[0]
	second := Sequence(cmds[1:]...)
	return Command{Kind: SequenceCommand, First: &first, Second: &second}
}

// Steps returns the board-changing leaves (Move, Remove, Spawn) in execution order.
func (c Command) Steps() []Command {
	switch c.Kind {
	case MoveCommand, RemoveCommand, SpawnCommand:
		return []Command{c}
	case SequenceCommand:
		return append(c.First.Steps(), c.Second.Steps()...)
	}
	return nil
}

// Origin returns the square the command moves a piece from: the first Move's
// source, or for castling the first removed square (the king).
func (c Command) Origin() (chess.Position, bool) {
	steps := c.Steps()
	if len(steps) == 0 {
		return chess.Position{}, false
	}
	switch first := steps[0]; first.Kind {
	case MoveCommand:
		return first.From, true
	case RemoveCommand:
		return first.At, true
	}
	return chess.Position{}, false
}

// Destination returns the square the moving piece ends on: the first Move's
// target, or for castling the king's new square.
func (c Command) Destination() (chess.Position, bool) {
	steps := c.Steps()
	for _, s := range steps {
		if s.Kind == MoveCommand {
			return s.To, true
		}
	}
	for _, s := range steps {
		if s.Kind == SpawnCommand {
			return s.At, true
		}
	}
	return chess.Position{}, false
}

// Promotion returns the piece kind a pawn promotes to, if the command is a promotion.
func (c Command) Promotion() (chess.Kind, bool) {
	moved := false
	for _, s := range c.Steps() {
		switch s.Kind {
		case MoveCommand:
			moved = true
		case SpawnCommand:
			if moved {
				return s.Piece.Kind, true
			}
		}
	}
	return 0, false
}

// IsCastling reports whether the command relocates a king without a Move step.
func (c Command) IsCastling() bool {
	steps := c.Steps()
	for _, s := range steps {
		if s.Kind == MoveCommand {
			return false
		}
	}
	for _, s := range steps {
		if s.Kind == SpawnCommand && s.Piece.Kind == chess.King {
			return true
		}
	}
	return false
}

// firstMove returns the first Move step of the command.
func (c Command) firstMove() (Command, bool) {
	for _, s := range c.Steps() {
		if s.Kind == MoveCommand {
			return s, true
		}
	}
	return Command{}, false
}
