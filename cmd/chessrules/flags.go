// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position setup
	variant      = flag.String("variant", "standard", "Rules variant: standard, chess960")
	chess960Num  = flag.Int("index", config.RandomIndex, "Chess960 start position 0-959 (-1 = random)")
	fenString    = flag.String("fen", "", "Start from this FEN position")
	moveList     = flag.String("moves", "", "Comma-separated long algebraic moves to play first (e.g. 'e2e4,e7e5')")
	squareFilter = flag.String("square", "", "List legal moves of the piece on this square")

	// Perft
	perftDepth    = flag.Int("perft", 0, "Count move tree leaves to this depth")
	divide        = flag.Bool("divide", false, "Show perft counts per root move")
	scan960       = flag.Bool("scan960", false, "Run perft on every Chess960 start position")
	workers       = flag.Int("workers", 0, "Number of worker goroutines (0 = number of CPUs)")
	tableCapacity = flag.Int("table-capacity", 1<<20, "Maximum perft table entries (0 = unlimited)")

	// Output
	noFEN      = flag.Bool("nofen", false, "Don't print the FEN after the diagram")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	verbose    = flag.Int("v", 0, "Verbosity: 0=warnings, 1=info, 2=debug")

	// Info
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies parsed flag values into cfg.
func applyFlags(cfg *config.Config) error {
	if err := applyGameFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)

	cfg.Output.ShowFEN = !*noFEN
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Verbosity = *verbose
	return nil
}

// applyGameFlags configures the position to work on.
func applyGameFlags(cfg *config.Config) error {
	v, ok := config.ParseVariant(strings.ToLower(*variant))
	if !ok {
		return fmt.Errorf("unknown variant %q", *variant)
	}
	cfg.Game.Variant = v
	cfg.Game.Chess960Index = *chess960Num
	cfg.Game.FEN = *fenString
	cfg.Game.Square = *squareFilter
	cfg.Game.Moves = splitMoves(*moveList)
	return nil
}

// applyPerftFlags configures perft runs.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Scan960 = *scan960
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.TableCapacity = *tableCapacity
}

// splitMoves splits a comma or space separated move list.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Shows positions, legal moves and game status for standard chess and Chess960.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chessrules -square e2\n")
	fmt.Fprintf(os.Stderr, "  chessrules -variant chess960 -index 518 -perft 3 -divide\n")
	fmt.Fprintf(os.Stderr, "  chessrules -scan960 -perft 2 -workers 8\n")
}
