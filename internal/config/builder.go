package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVariant sets the variant.
func (b *ConfigBuilder) WithVariant(v Variant) *ConfigBuilder {
	b.cfg.Game.Variant = v
	return b
}

// WithChess960Index selects Chess960 and a fixed start position.
func (b *ConfigBuilder) WithChess960Index(index int) *ConfigBuilder {
	b.cfg.Game.Variant = Chess960
	b.cfg.Game.Chess960Index = index
	return b
}

// WithFEN sets the start position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Game.FEN = fen
	return b
}

// WithSquare sets the square whose moves are listed.
func (b *ConfigBuilder) WithSquare(square string) *ConfigBuilder {
	b.cfg.Game.Square = square
	return b
}

// WithMoves sets the moves played before the query.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Game.Moves = moves
	return b
}

// WithPerft sets the perft depth and whether to divide.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithScan960 enables the Chess960 perft scan.
func (b *ConfigBuilder) WithScan960(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Scan960 = enabled
	return b
}

// WithWorkers sets the number of worker goroutines.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithTableCapacity sets the perft table capacity.
func (b *ConfigBuilder) WithTableCapacity(n int) *ConfigBuilder {
	b.cfg.Perft.TableCapacity = n
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Output.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Output.Writer = w
	return b
}

// WithShowFEN controls FEN output.
func (b *ConfigBuilder) WithShowFEN(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowFEN = enabled
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}
