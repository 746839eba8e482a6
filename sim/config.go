package sim

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors for run configuration.
var (
	// ErrConfig indicates an invalid run configuration; every Validate
	// failure wraps it.
	ErrConfig = errors.New("sim: invalid configuration")
)

// Config is the complete description of one run. The zero value is not
// runnable; start from Default and override.
type Config struct {
	// Grid extents in cells.
	NX, NY, NZ int
	// NT is the number of time steps; must be even (the driver advances
	// in parity pairs).
	NT int

	// Re is the Reynolds number, U the characteristic lattice velocity
	// and L the characteristic length in cells; together they fix the
	// viscosity and the relaxation time.
	Re float64
	U  float64
	L  int

	// Initial macroscopic state.
	RHO0       float64
	U0, V0, W0 float64

	// Save enables periodic field export every Interval steps.
	Save     bool
	Interval int

	// Workers bounds the collide-stream fan-out; 0 means NumCPU.
	Workers int
	// BlockSize is the tile edge in cells; 0 means DefaultBlockSize.
	BlockSize int
}

// DefaultBlockSize is the tile edge used when Config.BlockSize is 0 —
// 32³ cells keep a block's populations inside L2 on common parts.
const DefaultBlockSize = 32

// Default returns the cylinder-benchmark configuration: a 192×96×96
// duct at Re=1000, inflow U=0.05, characteristic length NY/5.
func Default() Config {
	return Config{
		NX: 192, NY: 96, NZ: 96,
		NT:   10000,
		Re:   1000.0,
		U:    0.05,
		L:    96 / 5,
		RHO0: 1.0,
		U0:   0.05,
		Save: true,
		// Interval, Workers and BlockSize resolve at run time.
	}
}

// Validate checks the configuration. All failures wrap ErrConfig.
func (c Config) Validate() error {
	switch {
	case c.NX <= 0 || c.NY <= 0 || c.NZ <= 0:
		return fmt.Errorf("%w: grid extents (%d,%d,%d) must be positive", ErrConfig, c.NX, c.NY, c.NZ)
	case c.NT <= 0:
		return fmt.Errorf("%w: NT = %d must be positive", ErrConfig, c.NT)
	case c.NT%2 != 0:
		return fmt.Errorf("%w: NT = %d must be even", ErrConfig, c.NT)
	case c.Re <= 0:
		return fmt.Errorf("%w: Re = %v must be positive", ErrConfig, c.Re)
	case c.U <= 0 || c.U >= 1:
		return fmt.Errorf("%w: U = %v must be in (0,1)", ErrConfig, c.U)
	case c.L <= 0:
		return fmt.Errorf("%w: L = %d must be positive", ErrConfig, c.L)
	case c.RHO0 <= 0:
		return fmt.Errorf("%w: RHO0 = %v must be positive", ErrConfig, c.RHO0)
	case c.Interval < 0:
		return fmt.Errorf("%w: Interval = %d must be non-negative", ErrConfig, c.Interval)
	case c.Workers < 0:
		return fmt.Errorf("%w: Workers = %d must be non-negative", ErrConfig, c.Workers)
	case c.BlockSize < 0:
		return fmt.Errorf("%w: BlockSize = %d must be non-negative", ErrConfig, c.BlockSize)
	}

	return nil
}

// workers resolves the effective fan-out width.
func (c Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.NumCPU()
}

// blockSize resolves the effective tile edge.
func (c Config) blockSize() int {
	if c.BlockSize > 0 {
		return c.BlockSize
	}

	return DefaultBlockSize
}

// interval resolves the export cadence: explicit value, or NT/10
// rounded up to an even step count so exports land on pair boundaries.
func (c Config) interval() int {
	iv := c.Interval
	if iv == 0 {
		iv = c.NT / 10
	}
	if iv < 2 {
		iv = 2
	}
	if iv%2 != 0 {
		iv++
	}

	return iv
}
