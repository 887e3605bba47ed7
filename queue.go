package glframe

// Queue is the per-frame deferred command queue. Drawables push
// commands during the record phase; Drain executes them against the
// device during flush.
//
// Drain order is last-in-first-out: the most recently pushed command
// executes first. This is a deliberate, load-bearing contract, not an
// accident of the storage layout — callers whose drawables depend on
// relative draw order must account for the later-recorded one rendering
// first. The LIFO law is pinned by tests.
//
// Storage comes from an Arena[Command], so pushing commands allocates
// from frame slabs instead of the heap. Queue is not safe for
// concurrent use.
type Queue struct {
	arena *Arena[Command]
	cmds  []Command
}

// NewQueue creates a queue drawing its storage from arena.
func NewQueue(arena *Arena[Command]) *Queue {
	return &Queue{
		arena: arena,
		cmds:  arena.Alloc(64),
	}
}

// Push records one deferred command.
func (q *Queue) Push(c Command) {
	if len(q.cmds) == cap(q.cmds) {
		q.cmds = q.arena.Grow(q.cmds)
	}
	q.cmds = append(q.cmds, c)
}

// Len returns the number of pending commands.
func (q *Queue) Len() int { return len(q.cmds) }

// Drain executes all pending commands against dev in LIFO order and
// leaves the queue empty. The backing slab is retained for the next
// frame.
func (q *Queue) Drain(dev Device) {
	for i := len(q.cmds) - 1; i >= 0; i-- {
		q.cmds[i].execute(dev)
	}
	clear(q.cmds)
	q.cmds = q.cmds[:0]
}
