package grid

// New constructs a Grid from a rectangular slice of passability rows, where
// rows[r][c] is true when (r,c) is passable. It deep-copies the input so
// the returned Grid is safe to share after the caller mutates its source.
//
// Returns ErrEmptyGrid if height or the first row's width is not strictly
// positive, ErrTooLarge if either dimension exceeds MaxDimension, and
// ErrRowLength if any row's length does not match the first row's.
//
// Complexity: O(W×H) time and memory.
func New(rows [][]bool) (*Grid, error) {
	height := len(rows)
	if height == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(rows[0])
	if width > MaxDimension || height > MaxDimension {
		return nil, ErrTooLarge
	}
	passable := make([]bool, width*height)
	for r, row := range rows {
		if len(row) != width {
			return nil, ErrRowLength
		}
		copy(passable[r*width:(r+1)*width], row)
	}

	return &Grid{width: width, height: height, passable: passable}, nil
}

// NewUniform constructs a width×height Grid with every cell passable. It is
// mainly useful for tests and for benchmarking on open terrain.
func NewUniform(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, ErrTooLarge
	}
	passable := make([]bool, width*height)
	for i := range passable {
		passable[i] = true
	}

	return &Grid{width: width, height: height, passable: passable}, nil
}

// Width returns the grid's column count.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's row count.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (r,c) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// Passable reports whether (r,c) is within bounds and walkable.
// Out-of-bounds coordinates are always treated as blocked.
// Complexity: O(1).
func (g *Grid) Passable(r, c int) bool {
	if !g.InBounds(r, c) {
		return false
	}

	return g.passable[g.Index(r, c)]
}

// Blocked is the complement of Passable.
func (g *Grid) Blocked(r, c int) bool {
	return !g.Passable(r, c)
}

// Index maps (r,c) to its row-major offset into per-cell arrays shared
// across this module (jump distances, goal bounds, search nodes).
// Complexity: O(1).
func (g *Grid) Index(r, c int) int {
	return r*g.width + c
}

// Coordinate converts a row-major index back to (r,c).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.width, Col: idx % g.width}
}

// Step returns the cell one unit away from (r,c) in direction d, along with
// whether that cell is in bounds. It performs no passability check.
func (g *Grid) Step(r, c int, d Direction) (nr, nc int, ok bool) {
	dr, dc := d.Delta()
	nr, nc = r+dr, c+dc

	return nr, nc, g.InBounds(nr, nc)
}

// DiagonalCornersPassable reports whether both orthogonal cells adjacent to
// a diagonal move from (r,c) toward d are passable. JPS-style search and
// path validation both require this: a diagonal step is only legal when
// neither corner it cuts is blocked.
func (g *Grid) DiagonalCornersPassable(r, c int, d Direction) bool {
	dr, dc := d.Delta()

	return g.Passable(r+dr, c) && g.Passable(r, c+dc)
}
