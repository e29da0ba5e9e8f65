package config

import "runtime"

// PerftConfig holds settings for move tree counting.
type PerftConfig struct {
	// Depth of the perft run; 0 disables it
	Depth int

	// Divide prints the node count below each root move
	Divide bool

	// Scan960 runs perft on every Chess960 start position
	Scan960 bool

	// Workers is the number of worker goroutines
	Workers int

	// TableCapacity bounds the shared node table; 0 means unlimited
	TableCapacity int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:       runtime.NumCPU(),
		TableCapacity: 1 << 20,
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return invalid("perft depth %d", p.Depth)
	}
	if (p.Divide || p.Scan960) && p.Depth == 0 {
		return invalid("divide and scan need a perft depth")
	}
	if p.Workers < 1 {
		return invalid("workers %d", p.Workers)
	}
	if p.TableCapacity < 0 {
		return invalid("table capacity %d", p.TableCapacity)
	}
	return nil
}
