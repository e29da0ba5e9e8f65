package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN sets up a game from a FEN string. FEN is used for test fixtures,
// CLI setup and diagnostics. Castling rights become Moved flags on kings and
// rooks; both KQkq and Shredder file letters are accepted. An en passant
// square becomes a synthetic last update recording the double step.
func ParseFEN(fen string) (ChessGame, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return ChessGame{}, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: fen}
	}

	var squares [chess.BoardSize][chess.BoardSize]*chess.Piece
	if err := parsePiecePositions(&squares, parts[0]); err != nil {
		return ChessGame{}, &errors.ParseError{Err: err, Input: fen, Field: 1, Got: parts[0]}
	}

	active, err := parseSideToMove(parts[1])
	if err != nil {
		return ChessGame{}, &errors.ParseError{Err: err, Input: fen, Field: 2, Got: parts[1]}
	}

	castling := "-"
	if len(parts) > 2 {
		castling = parts[2]
	}
	if err := parseCastlingRights(&squares, castling); err != nil {
		return ChessGame{}, &errors.ParseError{Err: err, Input: fen, Field: 3, Got: castling}
	}

	board, err := boardFromSquares(&squares)
	if err != nil {
		return ChessGame{}, &errors.ParseError{Err: err, Input: fen, Field: 1}
	}
	game, err := NewChessGame(board, Player{Colour: active}, Player{Colour: active.Opposite()})
	if err != nil {
		return ChessGame{}, &errors.ParseError{Err: err, Input: fen, Field: 1}
	}
	game.ply = parseClocks(parts, active)

	if len(parts) > 3 && parts[3] != "-" {
		if game, err = withEnPassant(game, parts[3]); err != nil {
			return ChessGame{}, &errors.ParseError{Err: err, Input: fen, Field: 4, Got: parts[3]}
		}
	}
	return game, nil
}

// MustParseFEN is like ParseFEN but panics on error. Use it for fixtures.
func MustParseFEN(fen string) ChessGame {
	game, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return game
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(squares *[chess.BoardSize][chess.BoardSize]*chess.Piece, positions string) error {
	row := chess.LastRow
	col := chess.FirstColumn

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("short rank %d: %w", row+1, errors.ErrInvalidFEN)
			}
			row--
			col = chess.FirstColumn
		case c >= '1' && c <= '8':
			col += int(c - '0')
		default:
			kind, ok := chess.KindFromLetter(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col > chess.LastColumn || row < chess.FirstRow {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			piece := chess.NewPiece(colour, kind)
			switch kind {
			case chess.King, chess.Rook:
				piece.Moved = true // cleared again by castling rights
			case chess.Pawn:
				piece.Moved = row != colour.PawnRank()
			}
			squares[row][col] = &piece
			col++
		}
	}
	if row != chess.FirstRow || col != chess.BoardSize {
		return fmt.Errorf("expected 8 full ranks: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", field, errors.ErrInvalidFEN)
}

// parseCastlingRights clears the Moved flag of each king and rook named by
// the castling field.
func parseCastlingRights(squares *[chess.BoardSize][chess.BoardSize]*chess.Piece, field string) error {
	if field == "-" {
		return nil
	}

	for _, c := range field {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		row := colour.BackRank()

		kingCol := -1
		for col := chess.FirstColumn; col <= chess.LastColumn; col++ {
			if p := squares[row][col]; p != nil && p.Colour == colour && p.Kind == chess.King {
				kingCol = col
			}
		}
		if kingCol < 0 {
			return fmt.Errorf("castling right %c without king on back rank: %w", c, errors.ErrInvalidFEN)
		}

		rookCol := -1
		switch lc := unicode.ToLower(c); {
		case lc == 'k':
			rookCol = outermostRook(squares, row, colour, chess.LastColumn, kingCol, -1)
		case lc == 'q':
			rookCol = outermostRook(squares, row, colour, chess.FirstColumn, kingCol, 1)
		case lc >= 'a' && lc <= 'h':
			// Shredder notation names the rook's file
			col := int(lc - chess.ColBase)
			if p := squares[row][col]; p != nil && p.Colour == colour && p.Kind == chess.Rook {
				rookCol = col
			}
		default:
			return fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
		if rookCol < 0 {
			return fmt.Errorf("castling right %c without rook: %w", c, errors.ErrInvalidFEN)
		}

		squares[row][kingCol].Moved = false
		squares[row][rookCol].Moved = false
	}
	return nil
}

// outermostRook scans from start towards the king and returns the first rook
// of colour, or -1.
func outermostRook(squares *[chess.BoardSize][chess.BoardSize]*chess.Piece, row int, colour chess.Colour, start, kingCol, step int) int {
	for col := start; col != kingCol; col += step {
		if p := squares[row][col]; p != nil && p.Colour == colour && p.Kind == chess.Rook {
			return col
		}
	}
	return -1
}

// boardFromSquares builds a board from the parsed placement grid.
func boardFromSquares(squares *[chess.BoardSize][chess.BoardSize]*chess.Piece) (chess.Board, error) {
	var placements []chess.PlacedPiece
	for row := range squares {
		for col, p := range squares[row] {
			if p != nil {
				placements = append(placements, chess.PlacedPiece{Position: chess.MustPosition(row, col), Piece: *p})
			}
		}
	}
	return chess.NewBoard(placements...)
}

// parseClocks converts the fullmove number into a ply count. The halfmove
// clock is accepted but not tracked.
func parseClocks(parts []string, active chess.Colour) int {
	fullmove := 1
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n > 0 {
			fullmove = n
		}
	}
	ply := (fullmove - 1) * 2
	if active == chess.Black {
		ply++
	}
	return ply
}

// withEnPassant records the double step implied by an en passant square as
// the game's last update.
func withEnPassant(game ChessGame, field string) (ChessGame, error) {
	target, err := chess.ParseSquare(field)
	if err != nil {
		return ChessGame{}, err
	}
	mover := game.PassivePlayer().Colour
	dir := mover.PawnDirection()
	if target.Row() != mover.PawnRank()+dir {
		return ChessGame{}, fmt.Errorf("en passant square %s on wrong rank: %w", field, errors.ErrInvalidFEN)
	}
	from, _ := target.Offset(-dir, 0)
	to, _ := target.Offset(dir, 0)

	pawn, ok := game.Board().PieceOf(to, mover)
	if !ok || pawn.Kind != chess.Pawn || !game.Board().IsEmpty(from) || !game.Board().IsEmpty(target) {
		return ChessGame{}, fmt.Errorf("en passant square %s without double step: %w", field, errors.ErrInvalidFEN)
	}

	prevBoard, err := game.Board().Remove(to)
	if err != nil {
		return ChessGame{}, err
	}
	unmoved := pawn
	unmoved.Moved = false
	if prevBoard, err = prevBoard.Add(from, unmoved); err != nil {
		return ChessGame{}, err
	}

	prev := ChessGame{
		board:   prevBoard,
		active:  game.PassivePlayer(),
		passive: game.ActivePlayer(),
		ply:     game.ply - 1,
	}
	game.lastUpdate = &Update{Game: prev, Command: Sequence(Move(from, to), EndTurn())}
	return game, nil
}

// FEN writes the game as a FEN string. The halfmove clock is always 0.
func FEN(game ChessGame) string {
	var sb strings.Builder

	writePiecePositions(&sb, game.Board())
	sb.WriteByte(' ')
	writeSideToMove(&sb, game.ActivePlayer().Colour)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, game.Board())
	sb.WriteByte(' ')
	writeEnPassant(&sb, game)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "0 %d", game.Ply()/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board chess.Board) {
	for row := chess.LastRow; row >= chess.FirstRow; row-- {
		emptyCount := 0
		for col := chess.FirstColumn; col <= chess.LastColumn; col++ {
			piece, ok := board.Piece(chess.MustPosition(row, col))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > chess.FirstRow {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes K/Q/k/q for outermost rooks and Shredder file
// letters for inner ones.
func writeCastlingRights(sb *strings.Builder, board chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, letter := range castlingLetters(board, colour) {
			if colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// castlingLetters returns the uppercase castling letters of one colour,
// kingside first.
func castlingLetters(board chess.Board, colour chess.Colour) []byte {
	row := colour.BackRank()
	kingPos, ok := board.King(colour)
	if !ok || kingPos.Row() != row {
		return nil
	}
	if king, _ := board.Piece(kingPos); king.Moved {
		return nil
	}

	isRook := func(col int) (chess.Piece, bool) {
		p, ok := board.PieceOf(chess.MustPosition(row, col), colour)
		return p, ok && p.Kind == chess.Rook
	}

	var letters []byte
	sides := []struct {
		start, step int
		letter      byte
	}{
		{chess.LastColumn, -1, 'K'},
		{chess.FirstColumn, 1, 'Q'},
	}
	for _, side := range sides {
		outermost := true
		for col := side.start; col != kingPos.Column(); col += side.step {
			rook, ok := isRook(col)
			if !ok {
				continue
			}
			if !rook.Moved {
				if outermost {
					letters = append(letters, side.letter)
				} else {
					letters = append(letters, byte('A'+col))
				}
			}
			outermost = false
		}
	}
	return letters
}

// writeEnPassant writes the square skipped by a double step on the last turn.
func writeEnPassant(sb *strings.Builder, game ChessGame) {
	if sq, ok := enPassantSquare(game); ok {
		sb.WriteString(sq.String())
	} else {
		sb.WriteByte('-')
	}
}

// enPassantSquare returns the square a pawn skipped on the last turn.
func enPassantSquare(game ChessGame) (chess.Position, bool) {
	last, ok := game.LastUpdate()
	if !ok {
		return chess.Position{}, false
	}
	mv, ok := last.Command.firstMove()
	if !ok {
		return chess.Position{}, false
	}
	if _, ok := isDoubleStep(last.Game.Board(), mv); !ok {
		return chess.Position{}, false
	}
	return mv.From.Offset((mv.To.Row()-mv.From.Row())/2, 0)
}
