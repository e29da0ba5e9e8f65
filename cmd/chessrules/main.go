// chessrules shows positions, legal moves and game status for standard chess
// and Chess960, and counts move trees for verification.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, cfg)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the configured actions, writing to cfg.Output.Writer.
// Cancelling ctx interrupts parallel perft.
func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	setLogLevel(cfg.Output.Verbosity)

	out := cfg.Output.Writer
	if cfg.Perft.Scan960 {
		return runScan960(ctx, out, cfg)
	}

	rb, game, err := setupGame(cfg.Game)
	if err != nil {
		return err
	}

	if cfg.Output.JSONFormat {
		return runJSON(ctx, out, rb, game, cfg)
	}

	output.OutputPosition(out, rb, game, cfg.Output.ShowFEN)
	if cfg.Game.Square != "" {
		from, err := chess.ParseSquare(cfg.Game.Square)
		if err != nil {
			return err
		}
		output.OutputMoves(out, rb, game, from)
	}
	if cfg.Perft.Depth > 0 {
		return runPerft(ctx, out, rb, game, cfg.Perft)
	}
	return nil
}

// runJSON writes the position, and perft results when asked, as JSON.
func runJSON(ctx context.Context, out io.Writer, rb rulebook, game engine.ChessGame, cfg *config.Config) error {
	pos, err := output.PositionToJSON(rb, game, cfg.Game.Square)
	if err != nil {
		return err
	}
	if err := output.OutputJSON(out, pos); err != nil {
		return err
	}
	if cfg.Perft.Depth > 0 {
		table := hashing.NewThreadSafePerftTable(cfg.Perft.TableCapacity)
		results, err := worker.Divide(ctx, rb, game, cfg.Perft.Depth, cfg.Perft.Workers, table)
		if err != nil {
			return err
		}
		return output.OutputJSON(out, output.DivideToJSON(cfg.Perft.Depth, results))
	}
	return nil
}

// rulebook is what the CLI needs from a rulebook.
type rulebook interface {
	engine.Rulebook
	engine.MoveSource
	output.Rules
}

// setupGame creates the rulebook and the position selected by cfg, then
// plays any listed moves.
func setupGame(cfg *config.GameConfig) (rulebook, engine.ChessGame, error) {
	var rb rulebook
	var game engine.ChessGame
	var err error

	switch cfg.Variant {
	case config.Chess960:
		var opts []engine.Chess960Option
		if cfg.Chess960Index != config.RandomIndex {
			opts = append(opts, engine.WithFixedIndex(cfg.Chess960Index))
		}
		c960 := engine.NewChess960Rulebook(opts...)
		rb = c960
		game = c960.CreateGame()
	default:
		std := engine.NewStandardRulebook()
		rb = std
		game = std.CreateGame()
	}

	if cfg.FEN != "" {
		if game, err = engine.ParseFEN(cfg.FEN); err != nil {
			return nil, engine.ChessGame{}, err
		}
	}

	for _, mv := range cfg.Moves {
		if game, err = playMove(rb, game, mv); err != nil {
			return nil, engine.ChessGame{}, err
		}
	}
	return rb, game, nil
}

// playMove applies one long algebraic move.
func playMove(rb rulebook, game engine.ChessGame, mv string) (engine.ChessGame, error) {
	if len(mv) < 4 {
		return engine.ChessGame{}, fmt.Errorf("move %q: too short", mv)
	}
	from, err := chess.ParseSquare(mv[:2])
	if err != nil {
		return engine.ChessGame{}, fmt.Errorf("move %q: %w", mv, err)
	}
	u, ok := engine.FindUpdate(rb.GetUpdates(game, from), mv)
	if !ok {
		return engine.ChessGame{}, fmt.Errorf("move %q at ply %d: not legal", mv, game.Ply())
	}
	log.Info().Str("move", mv).Int("ply", u.Game.Ply()).Msg("move-played")
	return u.Game, nil
}

// runPerft counts the move tree below game, divided per root move when asked.
func runPerft(ctx context.Context, out io.Writer, rb rulebook, game engine.ChessGame, cfg *config.PerftConfig) error {
	start := time.Now()
	table := hashing.NewThreadSafePerftTable(cfg.TableCapacity)

	var total uint64
	if cfg.Divide {
		results, err := worker.Divide(ctx, rb, game, cfg.Depth, cfg.Workers, table)
		if err != nil {
			return err
		}
		total = output.OutputDivide(out, cfg.Depth, results)
	} else {
		total = engine.Perft(rb, game, cfg.Depth, table)
		output.OutputPerft(out, cfg.Depth, total)
	}

	hits, misses := table.Stats()
	log.Info().Int("depth", cfg.Depth).Uint64("nodes", total).Int("hits", hits).Int("misses", misses).
		Dur("elapsed", time.Since(start)).Msg("perft-done")
	return nil
}

// runScan960 runs perft on all Chess960 start positions.
func runScan960(ctx context.Context, out io.Writer, cfg *config.Config) error {
	rb := engine.NewChess960Rulebook()
	table := hashing.NewThreadSafePerftTable(cfg.Perft.TableCapacity)

	results, err := worker.Scan960(ctx, rb, cfg.Perft.Depth, cfg.Perft.Workers, table)
	var failed int
	for _, r := range results {
		if r.Error != nil {
			failed++
			fmt.Fprintf(out, "%3d  error: %v\n", r.Index, r.Error)
			continue
		}
		fmt.Fprintf(out, "%3d  %s  %d\n", r.Index, r.Label, r.Nodes)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d start positions failed", failed)
	}
	return nil
}

// setLogLevel maps verbosity to a zerolog level.
func setLogLevel(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
