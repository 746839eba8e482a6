// Package sim owns the run: configuration, the tiled worker pool and
// the time-stepping driver that glues populations, collision operators
// and boundary conditions into a complete solver.
//
// One iteration of the driver advances the flow by two lattice steps —
// an even/odd parity pair over the in-place population buffer. Within
// each step the phase order is fixed and non-negotiable:
//
//	prescribe inlet → prescribe outlet → collide-stream → bounce-back
//
// The collide-stream phase is the only parallel one: the grid is tiled
// into blocks and fanned out over a bounded errgroup, with a full join
// before the next phase. Cells of one parity never touch another
// cell's slots, so blocks need no locks and no halo exchange.
//
// Cancellation is coarse by intent: the context is checked between
// parity pairs only. A half-finished pair would leave the buffer in a
// mixed layout no reader could interpret, so external stop means
// "finish the pair, then abort".
package sim
