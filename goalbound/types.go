package goalbound

import (
	"errors"

	"github.com/katalvlaran/jpsplus/grid"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGrid indicates Compute was called with a nil *grid.Grid.
	ErrNilGrid = errors.New("goalbound: grid must not be nil")
	// ErrNilJumpTable indicates Compute was called with a nil jump table.
	ErrNilJumpTable = errors.New("goalbound: jump table must not be nil")
)

// Options configures the fixed-point cost units and bucket-queue bin width
// used by a Dijkstra flood. These are deliberately distinct from the query
// engine's own fixed-point unit (package query): the flood only ever
// compares costs against other costs produced by this same flood, so its
// scale is free to differ, and collapsing the two scales into one shared
// constant would make a future change to either engine silently affect the
// other.
type Options struct {
	// CardinalCost is the fixed-point cost of a single cardinal step.
	CardinalCost int32
	// DiagonalCost is the fixed-point cost of a single diagonal step.
	DiagonalCost int32
	// BucketWidth is the bucket-queue bin width: a cost's bin index is
	// cost/BucketWidth.
	BucketWidth int32
}

// Option is a functional option for configuring a Flooder.
type Option func(*Options)

// DefaultOptions returns the reference design's fixed-point units: one
// cardinal step = 100000, one diagonal step = 141421 (100000*sqrt(2),
// rounded), bucket width = 10000.
func DefaultOptions() Options {
	return Options{
		CardinalCost: 100000,
		DiagonalCost: 141421,
		BucketWidth:  10000,
	}
}

// WithCardinalCost overrides the fixed-point cost of a cardinal step.
// Panics if cost is not positive.
func WithCardinalCost(cost int32) Option {
	if cost <= 0 {
		panic("goalbound: CardinalCost must be positive")
	}

	return func(o *Options) {
		o.CardinalCost = cost
	}
}

// WithDiagonalCost overrides the fixed-point cost of a diagonal step.
// Panics if cost is not positive.
func WithDiagonalCost(cost int32) Option {
	if cost <= 0 {
		panic("goalbound: DiagonalCost must be positive")
	}

	return func(o *Options) {
		o.DiagonalCost = cost
	}
}

// WithBucketWidth overrides the bucket queue's bin width. Panics if width
// is not positive.
func WithBucketWidth(width int32) Option {
	if width <= 0 {
		panic("goalbound: BucketWidth must be positive")
	}

	return func(o *Options) {
		o.BucketWidth = width
	}
}

// Bounds is an axis-aligned bounding box over goal coordinates, or the
// empty box if no goal's optimal first step used the associated direction.
type Bounds struct {
	MinRow, MaxRow, MinCol, MaxCol int
	Empty                          bool
}

// include widens b to cover (r,c).
func (b *Bounds) include(r, c int) {
	if b.Empty {
		b.MinRow, b.MaxRow = r, r
		b.MinCol, b.MaxCol = c, c
		b.Empty = false

		return
	}
	if r < b.MinRow {
		b.MinRow = r
	}
	if r > b.MaxRow {
		b.MaxRow = r
	}
	if c < b.MinCol {
		b.MinCol = c
	}
	if c > b.MaxCol {
		b.MaxCol = c
	}
}

// Contains reports whether (r,c) lies within b. An empty Bounds contains
// nothing.
func (b Bounds) Contains(r, c int) bool {
	if b.Empty {
		return false
	}

	return r >= b.MinRow && r <= b.MaxRow && c >= b.MinCol && c <= b.MaxCol
}

// Table holds, for every cell, the Bounds reached via each of the eight
// outgoing directions.
type Table struct {
	width, height int
	bounds        [][grid.NumDirections]Bounds
}

// Width returns the column count of the grid this Table was computed for.
func (t *Table) Width() int { return t.width }

// Height returns the row count of the grid this Table was computed for.
func (t *Table) Height() int { return t.height }

// Bounds returns the bounding box of goals reachable via direction d from
// the cell at row-major index idx.
func (t *Table) Bounds(idx int, d grid.Direction) Bounds {
	return t.bounds[idx][d]
}
