package query

import "github.com/katalvlaran/jpsplus/grid"

// GetPath finds a shortest path from start to goal.
//
// Idempotence contract: if *outPath is non-empty on entry and start/goal
// match the Engine's previous call, GetPath returns the cached result
// without re-searching. Callers not using this resume behavior should pass
// an empty (nil or zero-length) outPath.
//
// The returned bool is true whenever the search reaches a decision — both
// when a path was found and when the search concludes no path exists — and
// Status disambiguates the two. outPath is overwritten with the found path
// (including both endpoints) on StatusPathFound, and truncated to empty on
// StatusNoPath.
func (e *Engine) GetPath(start, goal grid.Coord, outPath *[]grid.Coord) (bool, Status, error) {
	if outPath == nil {
		return false, StatusUnknown, ErrNilOutPath
	}

	if len(*outPath) > 0 && e.lastValid && e.lastStart == start && e.lastGoal == goal {
		*outPath = append((*outPath)[:0], e.lastPath...)

		return true, e.lastStatus, nil
	}

	path, status, err := e.search(start, goal)
	if err != nil {
		return false, StatusUnknown, err
	}

	e.lastStart = start
	e.lastGoal = goal
	e.lastValid = true
	e.lastStatus = status
	e.lastPath = path

	if status == StatusPathFound {
		*outPath = append((*outPath)[:0], path...)
	} else {
		*outPath = (*outPath)[:0]
	}

	return true, status, nil
}
