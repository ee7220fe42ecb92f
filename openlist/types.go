package openlist

import "errors"

// ErrOutOfCapacity is returned by List.PushTierA and List.PushTierB when the target tier's
// preallocated backing array is already full.
var ErrOutOfCapacity = errors.New("openlist: tier is out of capacity")

// Entry is the payload stored in an open list: the row-major index of a
// node in the caller's node arena, and that node's current finalCost. The
// list never dereferences Index; it exists purely to let the caller look
// the node back up in its own arena after Pop.
type Entry struct {
	Index int32
	Cost  int32
}

// Options configures the two tiers' preallocated capacities.
//
// TierACapacity – FastStack capacity. Default 1000, matching the reference
// engine's preallocated successor stack for a single search.
//
// TierBCapacity – Bucket capacity. Default 10000, matching the reference
// engine's preallocated unsorted-priority-queue array.
type Options struct {
	TierACapacity int
	TierBCapacity int
}

// Option is a functional option for configuring a List.
type Option func(*Options)

// DefaultOptions returns the reference engine's tier capacities.
func DefaultOptions() Options {
	return Options{
		TierACapacity: 1000,
		TierBCapacity: 10000,
	}
}

// WithTierACapacity overrides the FastStack's preallocated capacity.
// Panics if capacity is not positive.
func WithTierACapacity(capacity int) Option {
	if capacity <= 0 {
		panic("openlist: TierACapacity must be positive")
	}

	return func(o *Options) {
		o.TierACapacity = capacity
	}
}

// WithTierBCapacity overrides the Bucket's preallocated capacity.
// Panics if capacity is not positive.
func WithTierBCapacity(capacity int) Option {
	if capacity <= 0 {
		panic("openlist: TierBCapacity must be positive")
	}

	return func(o *Options) {
		o.TierBCapacity = capacity
	}
}
