package engine

// EndRule derives the status of a game from check and move availability.
type EndRule struct {
	check    CheckRule
	movement MovementRule
}

// NewEndRule creates an end rule.
func NewEndRule(check CheckRule, movement MovementRule) EndRule {
	return EndRule{check: check, movement: movement}
}

// GetStatus classifies the game for the active player:
//
//	in check, no legal move      Checkmate
//	not in check, no legal move  Stalemate
//	in check, some legal move    Check
//	otherwise                    Ongoing
func (r EndRule) GetStatus(game ChessGame) Status {
	player := game.ActivePlayer()
	inCheck := r.check.IsInCheck(game, player)
	anyMove := hasLegalMoves(r.movement, r.check, game)

	switch {
	case inCheck && !anyMove:
		return Status{Kind: Checkmate, Colour: player.Colour}
	case !anyMove:
		return Status{Kind: Stalemate}
	case inCheck:
		return Status{Kind: Check, Colour: player.Colour}
	}
	return Status{Kind: Ongoing}
}

// IsCheckmate returns true if the active player is checkmated.
func (r EndRule) IsCheckmate(game ChessGame) bool {
	return r.GetStatus(game).Kind == Checkmate
}

// IsStalemate returns true if the active player is stalemated.
func (r EndRule) IsStalemate(game ChessGame) bool {
	return r.GetStatus(game).Kind == Stalemate
}
