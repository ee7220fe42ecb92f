package openlist

// fastStack is Tier A: a LIFO array with O(1) push and pop.
type fastStack struct {
	items []Entry
	n     int
}

func newFastStack(capacity int) *fastStack {
	return &fastStack{items: make([]Entry, capacity)}
}

func (s *fastStack) push(e Entry) error {
	if s.n >= len(s.items) {
		return ErrOutOfCapacity
	}
	s.items[s.n] = e
	s.n++

	return nil
}

func (s *fastStack) pop() Entry {
	s.n--

	return s.items[s.n]
}

func (s *fastStack) empty() bool { return s.n == 0 }

func (s *fastStack) reset() { s.n = 0 }

// bucket is Tier B: an unsorted array popped by linear-scan minimum, with
// swap-and-pop removal.
type bucket struct {
	items []Entry
	n     int
}

func newBucket(capacity int) *bucket {
	return &bucket{items: make([]Entry, capacity)}
}

func (b *bucket) push(e Entry) error {
	if b.n >= len(b.items) {
		return ErrOutOfCapacity
	}
	b.items[b.n] = e
	b.n++

	return nil
}

// popMin finds the entry with the smallest Cost, removes it by swapping in
// the last entry, and returns it.
func (b *bucket) popMin() Entry {
	cheapestIdx := 0
	cheapestCost := b.items[0].Cost
	for i := 1; i < b.n; i++ {
		if b.items[i].Cost < cheapestCost {
			cheapestCost = b.items[i].Cost
			cheapestIdx = i
		}
	}

	cheapest := b.items[cheapestIdx]
	b.n--
	b.items[cheapestIdx] = b.items[b.n]

	return cheapest
}

func (b *bucket) empty() bool { return b.n == 0 }

func (b *bucket) reset() { b.n = 0 }

// List is the two-tier open list. Pop always drains Tier A before
// considering Tier B.
type List struct {
	tierA *fastStack
	tierB *bucket
}

// New builds a List with the given Options' tier capacities.
func New(opts ...Option) *List {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &List{
		tierA: newFastStack(cfg.TierACapacity),
		tierB: newBucket(cfg.TierBCapacity),
	}
}

// PushTierA adds e to the LIFO tier. Callers must only do this when e.Cost
// is known not to exceed the cost of the node currently being expanded;
// violating that precondition breaks best-first ordering silently.
func (l *List) PushTierA(e Entry) error {
	return l.tierA.push(e)
}

// PushTierB adds e to the unsorted tier.
func (l *List) PushTierB(e Entry) error {
	return l.tierB.push(e)
}

// Pop removes and returns the next entry to expand: the most recently
// pushed Tier A entry if Tier A is non-empty, otherwise the cheapest Tier B
// entry. The second return value is false if both tiers are empty.
func (l *List) Pop() (Entry, bool) {
	if !l.tierA.empty() {
		return l.tierA.pop(), true
	}
	if !l.tierB.empty() {
		return l.tierB.popMin(), true
	}

	return Entry{}, false
}

// Empty reports whether both tiers are empty.
func (l *List) Empty() bool {
	return l.tierA.empty() && l.tierB.empty()
}

// Len returns the current entry count of each tier, mainly useful for
// tests asserting that a relaxation never moves an entry between tiers.
func (l *List) Len() (tierA, tierB int) {
	return l.tierA.n, l.tierB.n
}

// Reset clears both tiers for reuse by the next search, without
// reallocating their backing arrays.
func (l *List) Reset() {
	l.tierA.reset()
	l.tierB.reset()
}
