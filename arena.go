package glframe

// arenaChunkSize is the element capacity of a freshly grown slab.
const arenaChunkSize = 256

// Arena is a bump allocator for frame-local slices of T.
//
// Alloc carves zero-length slices out of large slabs, so per-command
// append churn never reaches the general-purpose allocator. Slabs are
// never individually freed: a container that outgrows its slice abandons
// the old storage inside the arena and memory grows monotonically within
// a run. Reset makes every slab reusable in bulk; it is owned by the
// outer run loop (teardown or long-run recycling), not called per frame.
//
// An Arena is exclusively owned by its frame-state owner and is not safe
// for concurrent use. The zero value is ready to use.
type Arena[T any] struct {
	free [][]T // slabs available for reuse
	used [][]T // slabs holding live allocations
	cur  []T   // active slab
	off  int   // bump offset into cur
	held int   // elements handed out since the last Reset
}

// Alloc returns a zero-length slice with at least the given capacity,
// carved from the arena. Appending within capacity stays inside the
// slab; growing past it must go through Grow.
func (a *Arena[T]) Alloc(capacity int) []T {
	if capacity > cap(a.cur)-a.off {
		if a.cur != nil {
			a.used = append(a.used, a.cur)
		}
		a.cur = a.grab(capacity)
		a.off = 0
	}
	s := a.cur[a.off : a.off : a.off+capacity]
	a.off += capacity
	a.held += capacity
	return s
}

// Grow moves s into a fresh allocation of at least double its capacity
// and returns it. The old storage stays behind in the arena until Reset.
func (a *Arena[T]) Grow(s []T) []T {
	capacity := 2 * cap(s)
	if capacity == 0 {
		capacity = 8
	}
	grown := a.Alloc(capacity)
	return append(grown, s...)
}

// grab takes a free slab with at least size capacity, or allocates a new
// one of at least arenaChunkSize elements.
func (a *Arena[T]) grab(size int) []T {
	for i, c := range a.free {
		if cap(c) >= size {
			a.free = append(a.free[:i], a.free[i+1:]...)
			return c[:cap(c)]
		}
	}
	n := arenaChunkSize
	for n < size {
		n *= 2
	}
	return make([]T, n)
}

// Reset returns every slab to the arena for reuse. All slices previously
// returned by Alloc or Grow are invalid afterwards.
func (a *Arena[T]) Reset() {
	a.free = append(a.free, a.used...)
	a.used = a.used[:0]
	if a.cur != nil {
		a.free = append(a.free, a.cur)
		a.cur = nil
	}
	a.off = 0
	a.held = 0
}

// Len returns the number of elements handed out since the last Reset.
func (a *Arena[T]) Len() int { return a.held }

// Cap returns the total element capacity held by the arena.
func (a *Arena[T]) Cap() int {
	total := cap(a.cur)
	for _, c := range a.free {
		total += cap(c)
	}
	for _, c := range a.used {
		total += cap(c)
	}
	return total
}
