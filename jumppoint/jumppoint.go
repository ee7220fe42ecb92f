package jumppoint

import "github.com/katalvlaran/jpsplus/grid"

// Compute builds the DistantJump Table for g. It runs four cardinal sweeps
// (one per axis direction) followed by four diagonal sweeps, each in the
// traversal order that guarantees a cell's diagonal-neighbor dependency has
// already been resolved.
//
// Complexity: O(W×H) time, O(W×H) memory.
func Compute(g *grid.Grid) (*Table, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	w, h := g.Width(), g.Height()
	t := &Table{
		width:  w,
		height: h,
		jump:   make([][grid.NumDirections]int16, w*h),
	}

	sweepRight(g, t)
	sweepLeft(g, t)
	sweepDown(g, t)
	sweepUp(g, t)

	sweepDiagonal(g, t, grid.DownRight, grid.Down, grid.Right)
	sweepDiagonal(g, t, grid.UpRight, grid.Up, grid.Right)
	sweepDiagonal(g, t, grid.UpLeft, grid.Up, grid.Left)
	sweepDiagonal(g, t, grid.DownLeft, grid.Down, grid.Left)

	return t, nil
}

// isJumpPoint reports whether (r,c) is a jump point for a traveler moving
// in cardinal direction d: a forced neighbor exists on at least one side,
// i.e. a perpendicular cell is open while the cell diagonally behind it
// (relative to the direction of travel) is blocked, making the perpendicular
// cell unreachable by any shorter straight-line path.
func isJumpPoint(g *grid.Grid, r, c int, d grid.Direction) bool {
	p1 := (d + 2) % grid.NumDirections
	p2 := (d + 6) % grid.NumDirections
	diag1 := (d + 3) % grid.NumDirections
	diag2 := (d + 5) % grid.NumDirections

	forced1 := cellInDir(g, r, c, p1, true) && cellInDir(g, r, c, diag1, false)
	forced2 := cellInDir(g, r, c, p2, true) && cellInDir(g, r, c, diag2, false)

	return forced1 || forced2
}

// cellInDir steps one cell from (r,c) in direction d and reports whether
// that cell's passability matches wantPassable.
func cellInDir(g *grid.Grid, r, c int, d grid.Direction, wantPassable bool) bool {
	nr, nc, ok := g.Step(r, c, d)
	if !ok {
		return !wantPassable
	}

	return g.Passable(nr, nc) == wantPassable
}

// sweepRight fills jump[.][Right] for every row, scanning right to left so
// that each cell's running distance-to-next-feature is known before the
// cell itself is classified.
func sweepRight(g *grid.Grid, t *Table) {
	w, h := g.Width(), g.Height()
	for r := 0; r < h; r++ {
		count := -1
		haveJumpPoint := false
		for c := w - 1; c >= 0; c-- {
			if g.Blocked(r, c) {
				count = -1
				haveJumpPoint = false
				continue
			}
			count++
			idx := g.Index(r, c)
			if haveJumpPoint {
				t.jump[idx][grid.Right] = int16(count)
			} else {
				t.jump[idx][grid.Right] = int16(-count)
			}
			if isJumpPoint(g, r, c, grid.Right) {
				count = 0
				haveJumpPoint = true
			}
		}
	}
}

// sweepLeft mirrors sweepRight, scanning each row left to right.
func sweepLeft(g *grid.Grid, t *Table) {
	w, h := g.Width(), g.Height()
	for r := 0; r < h; r++ {
		count := -1
		haveJumpPoint := false
		for c := 0; c < w; c++ {
			if g.Blocked(r, c) {
				count = -1
				haveJumpPoint = false
				continue
			}
			count++
			idx := g.Index(r, c)
			if haveJumpPoint {
				t.jump[idx][grid.Left] = int16(count)
			} else {
				t.jump[idx][grid.Left] = int16(-count)
			}
			if isJumpPoint(g, r, c, grid.Left) {
				count = 0
				haveJumpPoint = true
			}
		}
	}
}

// sweepDown mirrors sweepRight along columns, scanning bottom to top.
func sweepDown(g *grid.Grid, t *Table) {
	w, h := g.Width(), g.Height()
	for c := 0; c < w; c++ {
		count := -1
		haveJumpPoint := false
		for r := h - 1; r >= 0; r-- {
			if g.Blocked(r, c) {
				count = -1
				haveJumpPoint = false
				continue
			}
			count++
			idx := g.Index(r, c)
			if haveJumpPoint {
				t.jump[idx][grid.Down] = int16(count)
			} else {
				t.jump[idx][grid.Down] = int16(-count)
			}
			if isJumpPoint(g, r, c, grid.Down) {
				count = 0
				haveJumpPoint = true
			}
		}
	}
}

// sweepUp mirrors sweepDown, scanning top to bottom.
func sweepUp(g *grid.Grid, t *Table) {
	w, h := g.Width(), g.Height()
	for c := 0; c < w; c++ {
		count := -1
		haveJumpPoint := false
		for r := 0; r < h; r++ {
			if g.Blocked(r, c) {
				count = -1
				haveJumpPoint = false
				continue
			}
			count++
			idx := g.Index(r, c)
			if haveJumpPoint {
				t.jump[idx][grid.Up] = int16(count)
			} else {
				t.jump[idx][grid.Up] = int16(-count)
			}
			if isJumpPoint(g, r, c, grid.Up) {
				count = 0
				haveJumpPoint = true
			}
		}
	}
}

// sweepDiagonal fills jump[.][diag] for a single diagonal direction. It
// traverses the grid in the order that guarantees the (r+dr,c+dc) neighbor
// is already resolved, per diag's delta. cardinal1 and cardinal2 are the
// two cardinal components of diag (e.g. Down and Right for DownRight).
func sweepDiagonal(g *grid.Grid, t *Table, diag, cardinal1, cardinal2 grid.Direction) {
	dr, dc := diag.Delta()
	w, h := g.Width(), g.Height()

	rows := makeOrder(h, dr > 0)
	cols := makeOrder(w, dc > 0)

	for _, r := range rows {
		for _, c := range cols {
			if g.Blocked(r, c) {
				continue
			}
			idx := g.Index(r, c)
			nr, nc := r+dr, c+dc
			if !g.InBounds(nr, nc) || g.Blocked(nr, nc) || g.Blocked(r+dr, c) || g.Blocked(r, c+dc) {
				t.jump[idx][diag] = 0
				continue
			}
			nIdx := g.Index(nr, nc)
			if t.jump[nIdx][cardinal1] > 0 || t.jump[nIdx][cardinal2] > 0 {
				t.jump[idx][diag] = 1
				continue
			}
			nv := t.jump[nIdx][diag]
			if nv > 0 {
				t.jump[idx][diag] = nv + 1
			} else {
				t.jump[idx][diag] = nv - 1
			}
		}
	}
}

// makeOrder returns 0..n-1 ascending if descending is false, or n-1..0
// otherwise. descending=true means the neighbor used by sweepDiagonal lies
// at a larger index along this axis and must be visited first.
func makeOrder(n int, descending bool) []int {
	order := make([]int, n)
	if descending {
		for i := 0; i < n; i++ {
			order[i] = n - 1 - i
		}
	} else {
		for i := 0; i < n; i++ {
			order[i] = i
		}
	}

	return order
}
