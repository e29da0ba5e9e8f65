package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Execute applies a command to a game and returns the resulting game.
// The input game is never modified. A failing command yields an error and no
// state; for a Sequence this holds even when earlier steps succeeded.
func Execute(game ChessGame, cmd Command) (ChessGame, error) {
	switch cmd.Kind {
	case MoveCommand:
		return applyMove(game, cmd)
	case RemoveCommand:
		return applyRemove(game, cmd)
	case SpawnCommand:
		return applySpawn(game, cmd)
	case SequenceCommand:
		return applySequence(game, cmd)
	case EndTurnCommand:
		return applyEndTurn(game), nil
	case SetLastUpdateCommand:
		return applySetLastUpdate(game, cmd), nil
	}
	return ChessGame{}, moveError(game, cmd, cmd.At, errors.ErrIllegalMove)
}

// applyMove moves the active player's piece, capturing an opponent piece on
// the destination.
func applyMove(game ChessGame, cmd Command) (ChessGame, error) {
	colour := game.active.Colour
	piece, ok := game.board.PieceOf(cmd.From, colour)
	if !ok {
		return ChessGame{}, moveError(game, cmd, cmd.From, errors.ErrSquareEmpty)
	}

	board, err := game.board.Remove(cmd.From)
	if err != nil {
		return ChessGame{}, moveError(game, cmd, cmd.From, err)
	}

	if target, occupied := board.Piece(cmd.To); occupied {
		if target.Colour == colour {
			return ChessGame{}, moveError(game, cmd, cmd.To, errors.ErrSquareOccupied)
		}
		if target.Kind == chess.King {
			return ChessGame{}, moveError(game, cmd, cmd.To, errors.ErrIllegalMove)
		}
		if board, err = board.Remove(cmd.To); err != nil {
			return ChessGame{}, moveError(game, cmd, cmd.To, err)
		}
	}

	if board, err = board.Add(cmd.To, piece.WithMoved()); err != nil {
		return ChessGame{}, moveError(game, cmd, cmd.To, err)
	}

	game.board = board
	return game, nil
}

// applyRemove takes a piece off the board.
func applyRemove(game ChessGame, cmd Command) (ChessGame, error) {
	board, err := game.board.Remove(cmd.At)
	if err != nil {
		return ChessGame{}, moveError(game, cmd, cmd.At, err)
	}
	game.board = board
	return game, nil
}

// applySpawn places a piece on an empty square.
func applySpawn(game ChessGame, cmd Command) (ChessGame, error) {
	board, err := game.board.Add(cmd.At, cmd.Piece)
	if err != nil {
		return ChessGame{}, moveError(game, cmd, cmd.At, err)
	}
	game.board = board
	return game, nil
}

// applySequence runs First then Second.
func applySequence(game ChessGame, cmd Command) (ChessGame, error) {
	if cmd.First == nil || cmd.Second == nil {
		return ChessGame{}, moveError(game, cmd, cmd.At, errors.ErrIllegalMove)
	}
	next, err := Execute(game, *cmd.First)
	if err != nil {
		return ChessGame{}, err
	}
	return Execute(next, *cmd.Second)
}

// applyEndTurn hands the move to the other player.
func applyEndTurn(game ChessGame) ChessGame {
	game.active, game.passive = game.passive, game.active
	game.ply++
	return game
}

// applySetLastUpdate records the update that produced this state.
func applySetLastUpdate(game ChessGame, cmd Command) ChessGame {
	game.lastUpdate = cmd.Update
	return game
}

// moveError wraps err with the ply, square and command involved.
func moveError(game ChessGame, cmd Command, at chess.Position, err error) error {
	return &errors.MoveError{
		Err:     err,
		Ply:     game.ply,
		Square:  at.String(),
		Command: cmd.Kind.String(),
	}
}
