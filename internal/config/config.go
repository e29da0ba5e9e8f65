// Package config provides configuration for chessrules.
package config

import (
	"io"
	"os"
)

// Variant selects the rulebook.
type Variant int

const (
	Standard Variant = iota
	Chess960
)

// String returns the flag spelling of the variant.
func (v Variant) String() string {
	if v == Chess960 {
		return "chess960"
	}
	return "standard"
}

// ParseVariant converts a flag value to a Variant.
func ParseVariant(s string) (Variant, bool) {
	switch s {
	case "standard", "":
		return Standard, true
	case "chess960", "960", "fischerandom":
		return Chess960, true
	}
	return Standard, false
}

// Config holds all program configuration.
type Config struct {
	Game   *GameConfig
	Perft  *PerftConfig
	Output *OutputConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Game:   NewGameConfig(),
		Perft:  NewPerftConfig(),
		Output: NewOutputConfig(),
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Output.Validate()
}

// OutputConfig holds settings related to output.
type OutputConfig struct {
	// Writer receives all normal output
	Writer io.Writer

	// Verbosity: 0=warnings, 1=info, 2=debug
	Verbosity int

	// ShowFEN prints the FEN of the position after the diagram
	ShowFEN bool

	// JSONFormat enables JSON output instead of text
	JSONFormat bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Writer:  os.Stdout,
		ShowFEN: true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Verbosity < 0 || o.Verbosity > 2 {
		return invalid("verbosity %d outside [0,2]", o.Verbosity)
	}
	return nil
}
