package sim

import "golang.org/x/sync/errgroup"

// Block is one half-open tile [X0,X1)×[Y0,Y1)×[Z0,Z1) of the grid.
type Block struct {
	X0, X1 int
	Y0, Y1 int
	Z0, Z1 int
}

// Pool is a fork-join parallel-for over a fixed tiling of the grid.
// The tiling is computed once; every ForEach call fans the same blocks
// out over a bounded group and joins before returning, so consecutive
// calls act as phases separated by barriers.
type Pool struct {
	workers int
	blocks  []Block
}

// NewPool tiles an (nx,ny,nz) grid into cubes of edge blockSize (the
// trailing blocks along each axis may be smaller) and bounds the
// fan-out at workers goroutines.
func NewPool(nx, ny, nz, workers, blockSize int) *Pool {
	var blocks []Block
	for z0 := 0; z0 < nz; z0 += blockSize {
		for y0 := 0; y0 < ny; y0 += blockSize {
			for x0 := 0; x0 < nx; x0 += blockSize {
				blocks = append(blocks, Block{
					X0: x0, X1: min(x0+blockSize, nx),
					Y0: y0, Y1: min(y0+blockSize, ny),
					Z0: z0, Z1: min(z0+blockSize, nz),
				})
			}
		}
	}

	return &Pool{workers: workers, blocks: blocks}
}

// Blocks returns the number of tiles in the pool's fixed tiling.
func (p *Pool) Blocks() int { return len(p.blocks) }

// ForEach runs fn once per block, at most workers at a time, and waits
// for all of them. The first non-nil error wins; remaining blocks still
// run to completion (a torn sweep must never leak into the next phase).
func (p *Pool) ForEach(fn func(b Block) error) error {
	if p.workers <= 1 {
		var first error
		for _, b := range p.blocks {
			if err := fn(b); err != nil && first == nil {
				first = err
			}
		}

		return first
	}

	var g errgroup.Group
	g.SetLimit(p.workers)
	for _, b := range p.blocks {
		b := b
		g.Go(func() error { return fn(b) })
	}

	return g.Wait()
}
