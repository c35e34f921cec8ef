package linediff

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// contextBuffer is a bounded FIFO of at most 2*contextSize lines, backed by
// linkedlistqueue the way the original backs it with a std::list: eviction
// from the front keeps it within bound, and draining happens from the
// front too, in push order.
//
// It holds up to contextSize trailing-context lines already flushed into a
// hunk, plus up to another contextSize leading-context lines being
// accumulated for the next hunk. Filling the leading side closes the
// current hunk.
type contextBuffer struct {
	q           *linkedlistqueue.Queue
	contextSize int
}

func newContextBuffer(contextSize int) *contextBuffer {
	return &contextBuffer{q: linkedlistqueue.New(), contextSize: contextSize}
}

// push evicts from the front until the buffer is under its target size
// (contextSize when half is true, 2*contextSize otherwise) and then
// appends line. If contextSize == 0, push is a no-op. Returns whether the
// buffer is now full under the same half/full target, mirroring the
// original's push return value.
func (c *contextBuffer) push(line lineCache, half bool) bool {
	if c.contextSize == 0 {
		return true
	}
	limit := c.limit(half)
	for c.q.Size() >= limit {
		c.q.Dequeue()
	}
	c.q.Enqueue(line)
	return c.full(half)
}

func (c *contextBuffer) limit(half bool) int {
	if half {
		return c.contextSize
	}
	return 2 * c.contextSize
}

func (c *contextBuffer) popFront() (lineCache, bool) {
	v, ok := c.q.Dequeue()
	if !ok {
		return lineCache{}, false
	}
	return v.(lineCache), true
}

func (c *contextBuffer) size() int { return c.q.Size() }

func (c *contextBuffer) clear() { c.q.Clear() }

func (c *contextBuffer) empty() bool {
	if c.contextSize == 0 {
		return true
	}
	return c.q.Empty()
}

func (c *contextBuffer) halfFull() bool { return c.full(true) }

func (c *contextBuffer) full(half bool) bool {
	return c.q.Size() >= c.limit(half)
}

// halfSize returns min(size, contextSize), the amount of context eligible
// to serve as leading context for the next hunk.
func (c *contextBuffer) halfSize() int {
	if c.q.Size() < c.contextSize {
		return c.q.Size()
	}
	return c.contextSize
}
