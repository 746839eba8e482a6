package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sugawarayuuta/sonnet"

	"github.com/Gweiqi/LB-t/population"
	"github.com/Gweiqi/LB-t/sim"
)

// Params is the exportable manifest of one run: the configuration it
// was started with, the transport coefficients derived from it and a
// unique identifier tying artifacts of the same run together.
type Params struct {
	RunID string `json:"run_id"`

	NX int `json:"nx"`
	NY int `json:"ny"`
	NZ int `json:"nz"`
	NT int `json:"nt"`

	Re float64 `json:"re"`
	U  float64 `json:"u"`
	L  int     `json:"l"`

	Rho0 float64 `json:"rho0"`
	U0   float64 `json:"u0"`
	V0   float64 `json:"v0"`
	W0   float64 `json:"w0"`

	Collision string `json:"collision"`

	Nu    float64 `json:"nu"`
	Tau   float64 `json:"tau"`
	Omega float64 `json:"omega"`
}

// NewParams assembles the manifest from a validated configuration, the
// population field carrying the derived coefficients and the name of
// the collision strategy in use.
func NewParams(cfg sim.Config, pop *population.Field, collision string) Params {
	return Params{
		RunID:     uuid.NewString(),
		NX:        cfg.NX,
		NY:        cfg.NY,
		NZ:        cfg.NZ,
		NT:        cfg.NT,
		Re:        cfg.Re,
		U:         cfg.U,
		L:         cfg.L,
		Rho0:      cfg.RHO0,
		U0:        cfg.U0,
		V0:        cfg.V0,
		W0:        cfg.W0,
		Collision: collision,
		Nu:        pop.Nu,
		Tau:       pop.Tau,
		Omega:     pop.Omega,
	}
}

// Write serializes the manifest as indented JSON.
func (p Params) Write(w io.Writer) error {
	data, err := sonnet.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("report: params: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("report: params: %w", err)
	}

	return nil
}

// ExportFile writes the manifest into dir/parameters.json, creating the
// directory if needed.
func (p Params) ExportFile(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: params: %w", err)
	}
	file, err := os.Create(filepath.Join(dir, "parameters.json"))
	if err != nil {
		return fmt.Errorf("report: params: %w", err)
	}
	defer file.Close()

	return p.Write(file)
}

// Banner prints the human-readable run header LB-t style: grid,
// physics and derived coefficients, before the first step runs.
func (p Params) Banner(w io.Writer) {
	fmt.Fprintf(w, "run %s\n", p.RunID)
	fmt.Fprintf(w, "  grid      %d x %d x %d, %d steps\n", p.NX, p.NY, p.NZ, p.NT)
	fmt.Fprintf(w, "  physics   Re=%g  U=%g  L=%d\n", p.Re, p.U, p.L)
	fmt.Fprintf(w, "  derived   nu=%g  tau=%g  omega=%g\n", p.Nu, p.Tau, p.Omega)
	fmt.Fprintf(w, "  collision %s\n", p.Collision)
}
