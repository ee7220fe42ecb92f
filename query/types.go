package query

import (
	"errors"

	"github.com/katalvlaran/jpsplus/grid"
)

// Sentinel errors returned by this package.
var (
	ErrNilPreprocessedMap = errors.New("query: preprocessed map must not be nil")
	ErrNilGrid            = errors.New("query: grid must not be nil")
	ErrDimensionMismatch  = errors.New("query: grid and preprocessed map dimensions disagree")
	ErrNilOutPath         = errors.New("query: outPath must not be nil")
)

// Fixed-point cost units for the online query engine. These are
// deliberately distinct from goalbound's flood-time constants (package
// goalbound): the query engine's costs are only ever compared against its
// own heuristic and its own open-list entries, so the two scales may
// diverge without affecting correctness, and keeping them separate avoids
// one engine's tuning silently perturbing the other.
const (
	cardinalUnit  = 2378
	diagonalUnit  = 3363 // cardinalUnit * sqrt(2), rounded
	sqrt2MinusOne = 985  // cardinalUnit * (sqrt(2) - 1), rounded
)

// Status disambiguates what GetPath's boolean return alone cannot: the
// reference engine reports "search completed" via a single bool that is
// true both when a path was found and when the search concluded no path
// exists, with only the emptiness of the output path telling them apart.
// Status makes that distinction explicit without changing the bool's
// meaning.
type Status int

const (
	// StatusUnknown is the zero value; GetPath returns it only together
	// with a non-nil error.
	StatusUnknown Status = iota
	// StatusPathFound indicates GetPath populated outPath with a path.
	StatusPathFound
	// StatusNoPath indicates the search completed but no path exists.
	StatusNoPath
)

// String renders a Status for diagnostics and test failure messages.
func (s Status) String() string {
	switch s {
	case StatusPathFound:
		return "PathFound"
	case StatusNoPath:
		return "NoPath"
	default:
		return "Unknown"
	}
}

// searchNode is one slot of the preallocated node arena. Valid only when
// iteration matches the Engine's current iteration counter.
type searchNode struct {
	iteration   uint32
	givenCost   int32
	heuristic   int32
	finalCost   int32
	parent      int32
	incoming    grid.Direction
	hasIncoming bool
	onOpen      bool
	closed      bool
}
