package config

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// TestGameConfig_Defaults verifies GameConfig has sensible defaults
func TestGameConfig_Defaults(t *testing.T) {
	cfg := NewGameConfig()

	if cfg.Variant != Standard {
		t.Errorf("Variant = %v, want standard", cfg.Variant)
	}
	if cfg.Chess960Index != RandomIndex {
		t.Errorf("Chess960Index = %d, want RandomIndex", cfg.Chess960Index)
	}
	if cfg.FEN != "" {
		t.Errorf("FEN = %q, want empty", cfg.FEN)
	}
}

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.Divide || cfg.Scan960 {
		t.Error("Divide and Scan960 should be false by default")
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Writer == nil {
		t.Error("Writer should not be nil")
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0", cfg.Verbosity)
	}
	if !cfg.ShowFEN {
		t.Error("ShowFEN should be true by default")
	}
}

// TestParseVariant verifies flag spellings of the variant
func TestParseVariant(t *testing.T) {
	tests := []struct {
		input  string
		want   Variant
		wantOK bool
	}{
		{"standard", Standard, true},
		{"", Standard, true},
		{"chess960", Chess960, true},
		{"960", Chess960, true},
		{"crazyhouse", Standard, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseVariant(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseVariant(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestConfig_Validate verifies validation across sections
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			cfg:     NewConfig(),
			wantErr: false,
		},
		{
			name:    "chess960 index in range",
			cfg:     NewConfigBuilder().WithChess960Index(959).Build(),
			wantErr: false,
		},
		{
			name:    "chess960 index 960 out of range",
			cfg:     NewConfigBuilder().WithChess960Index(960).Build(),
			wantErr: true,
		},
		{
			name:    "negative chess960 index",
			cfg:     NewConfigBuilder().WithChess960Index(-2).Build(),
			wantErr: true,
		},
		{
			name:    "index with standard variant",
			cfg:     NewConfigBuilder().WithChess960Index(12).WithVariant(Standard).Build(),
			wantErr: true,
		},
		{
			name:    "divide without depth",
			cfg:     NewConfigBuilder().WithPerft(0, true).Build(),
			wantErr: true,
		},
		{
			name:    "zero workers",
			cfg:     NewConfigBuilder().WithWorkers(0).Build(),
			wantErr: true,
		},
		{
			name:    "verbosity too high",
			cfg:     NewConfigBuilder().WithVerbosity(3).Build(),
			wantErr: true,
		},
		{
			name:    "bad square",
			cfg:     NewConfigBuilder().WithSquare("e10").Build(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestConfigBuilder verifies the fluent builder
func TestConfigBuilder(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().
		WithChess960Index(518).
		WithSquare("e2").
		WithMoves("e2e4", "e7e5").
		WithPerft(3, true).
		WithWorkers(2).
		WithOutput(&buf).
		Build()

	if cfg.Game.Variant != Chess960 {
		t.Errorf("Variant = %v, want chess960", cfg.Game.Variant)
	}
	if cfg.Game.Chess960Index != 518 {
		t.Errorf("Chess960Index = %d, want 518", cfg.Game.Chess960Index)
	}
	if cfg.Game.Square != "e2" {
		t.Errorf("Square = %q, want e2", cfg.Game.Square)
	}
	if len(cfg.Game.Moves) != 2 {
		t.Errorf("Moves = %v, want two moves", cfg.Game.Moves)
	}
	if cfg.Perft.Depth != 3 || !cfg.Perft.Divide {
		t.Errorf("Perft = %+v, want depth 3 with divide", cfg.Perft)
	}
	if cfg.Perft.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Perft.Workers)
	}
	if cfg.Output.Writer != &buf {
		t.Error("Writer not set")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
