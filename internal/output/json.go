package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONPosition represents a position and its legal moves in JSON format.
type JSONPosition struct {
	FEN    string     `json:"fen"`
	ToMove string     `json:"toMove"` // "white" or "black"
	Status string     `json:"status"`
	Ply    int        `json:"ply"`
	Square string     `json:"square,omitempty"`
	Moves  []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a legal move in JSON format.
type JSONMove struct {
	UCI       string `json:"uci"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Piece     string `json:"piece,omitempty"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castling  bool   `json:"castling,omitempty"`
	Check     bool   `json:"check,omitempty"`
	FEN       string `json:"fen,omitempty"`
}

// JSONDivide holds perft results in JSON format.
type JSONDivide struct {
	Depth int               `json:"depth"`
	Nodes uint64            `json:"nodes"`
	Moves map[string]uint64 `json:"moves,omitempty"`
}

// PositionToJSON converts a game to JSON format. When square is non-empty
// the legal moves of the piece on it are included.
func PositionToJSON(rules Rules, game engine.ChessGame, square string) (*JSONPosition, error) {
	jp := &JSONPosition{
		FEN:    engine.FEN(game),
		ToMove: colorName(game.ActivePlayer().Colour),
		Status: rules.GetStatus(game).String(),
		Ply:    game.Ply(),
	}
	if square != "" {
		from, err := chess.ParseSquare(square)
		if err != nil {
			return nil, err
		}
		jp.Square = from.String()
		jp.Moves = DescribeMoves(rules, game, from)
	}
	return jp, nil
}

// DivideToJSON converts perft results to JSON format.
func DivideToJSON(depth int, results []engine.DivideResult) *JSONDivide {
	jd := &JSONDivide{Depth: depth, Moves: make(map[string]uint64, len(results))}
	for _, r := range results {
		jd.Moves[r.Move] = r.Nodes
		jd.Nodes += r.Nodes
	}
	return jd
}

// OutputJSON writes v as indented JSON.
func OutputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

// pieceTypeName returns the lowercase name of a piece kind.
func pieceTypeName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
