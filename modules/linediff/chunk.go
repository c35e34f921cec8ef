package linediff

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// signedLine is one finalized output line: its diff sign (' ', '-', '+')
// and its (already normalized-for-display) text.
type signedLine struct {
	sign byte
	text string
}

// chunkAssembler accumulates pending edits and flushed context into hunks,
// rendering them into header's output buffer as they close. One
// chunkAssembler is used for an entire FileDiff call; outputChunk closes
// the current hunk and clear resets pending state for the next one without
// losing the surviving context.
type chunkAssembler struct {
	options  Options
	lhsEmpty bool
	rhsEmpty bool

	output strings.Builder

	context *contextBuffer
	data    *linkedlistqueue.Queue // of signedLine
	lhs     *linkedlistqueue.Queue // of string
	rhs     *linkedlistqueue.Queue // of string

	lhsIdx, rhsIdx   int
	lhsSize, rhsSize int

	diffFound         bool
	onlyBlankLines    bool
	onlyMatchingLines bool
}

func newChunkAssembler(lhsEmpty, rhsEmpty bool, header string, options Options) *chunkAssembler {
	c := &chunkAssembler{
		options:           options,
		lhsEmpty:          lhsEmpty,
		rhsEmpty:          rhsEmpty,
		context:           newContextBuffer(options.ContextSize),
		data:              linkedlistqueue.New(),
		lhs:               linkedlistqueue.New(),
		rhs:               linkedlistqueue.New(),
		onlyBlankLines:    true,
		onlyMatchingLines: true,
	}
	c.output.WriteString(header)
	return c
}

// pushBoth records an equal line, flushing a just-finished hunk first if
// the context buffer was already saturated with trailing context.
func (c *chunkAssembler) pushBoth(lhsIdx, rhsIdx int, ctx string) {
	c.moveDiffs()
	if c.data.Size() > 0 && c.context.full(false) {
		c.outputChunk()
	}
	noEdits := c.lhsSize == 0 && c.rhsSize == 0
	if noEdits {
		if c.context.empty() {
			c.lhsIdx = lhsIdx
			c.rhsIdx = rhsIdx
		} else if c.context.halfFull() {
			c.lhsIdx++
			c.rhsIdx++
		}
	}
	c.context.push(lineCache{raw: ctx}, noEdits)
}

// pushLhs records a left-only (deleted) line, unless skip_left_deletions
// is set, in which case it is silently dropped.
func (c *chunkAssembler) pushLhs(lhsIdx, rhsIdx int, text string) {
	if c.options.SkipLeftDeletions {
		return
	}
	c.onlyBlankLines = c.onlyBlankLines && text == ""
	c.onlyMatchingLines = c.onlyMatchingLines && c.options.IgnoreMatchingLines != nil && c.options.IgnoreMatchingLines.MatchString(text)
	c.checkContext(lhsIdx, rhsIdx)
	c.lhs.Enqueue(text)
	c.lhsSize++
}

// pushRhs records a right-only (inserted) line.
func (c *chunkAssembler) pushRhs(lhsIdx, rhsIdx int, text string) {
	c.onlyBlankLines = c.onlyBlankLines && text == ""
	c.onlyMatchingLines = c.onlyMatchingLines && c.options.IgnoreMatchingLines != nil && c.options.IgnoreMatchingLines.MatchString(text)
	c.checkContext(lhsIdx, rhsIdx)
	c.rhs.Enqueue(text)
	c.rhsSize++
}

func (c *chunkAssembler) checkContext(lhsIdx, rhsIdx int) {
	if c.context.empty() && c.lhsSize == 0 && c.rhsSize == 0 {
		c.lhsIdx = lhsIdx
		c.rhsIdx = rhsIdx
	}
	c.moveContext(false)
}

// moveDiffs drains the pending left/right queues into data, left lines
// first, marking the hunk as containing real edits.
func (c *chunkAssembler) moveDiffs() {
	for c.lhs.Size() > 0 {
		v, _ := c.lhs.Dequeue()
		c.data.Enqueue(signedLine{sign: '-', text: v.(string)})
	}
	for c.rhs.Size() > 0 {
		v, _ := c.rhs.Dequeue()
		c.data.Enqueue(signedLine{sign: '+', text: v.(string)})
	}
}

// moveContext drains context lines into data as equal lines, growing both
// side sizes. last selects between draining only up to contextSize
// (closing a hunk) or everything currently buffered (mid-hunk flush).
func (c *chunkAssembler) moveContext(last bool) {
	n := c.context.size()
	if last {
		n = c.context.halfSize()
	}
	for ; n > 0; n-- {
		line, ok := c.context.popFront()
		if !ok {
			break
		}
		c.data.Enqueue(signedLine{sign: ' ', text: line.raw})
		c.lhsSize++
		c.rhsSize++
	}
}

// outputChunk closes the current hunk: it drains trailing context and any
// remaining pending edits, applies blank/matching-chunk suppression, and
// otherwise renders the hunk header and lines into output. Clear always
// runs afterward, resetting pending state for the next hunk.
func (c *chunkAssembler) outputChunk() {
	defer c.clear()
	if c.lhsSize == 0 && c.rhsSize == 0 {
		return
	}
	c.moveContext(true)
	c.moveDiffs()
	if c.onlyBlankLines && c.options.IgnoreBlankLines {
		c.onlyMatchingLines = true
		return
	}
	if c.onlyMatchingLines && c.options.IgnoreMatchingChunks && c.options.IgnoreMatchingLines != nil {
		c.onlyBlankLines = true
		return
	}
	c.diffFound = true
	if c.options.ShowChunkHeaders {
		fmt.Fprintf(&c.output, "@@ -%s +%s @@\n",
			chunkPos(c.lhsEmpty, c.lhsIdx, c.lhsSize),
			chunkPos(c.rhsEmpty, c.rhsIdx, c.rhsSize))
	}
	for c.data.Size() > 0 {
		v, _ := c.data.Dequeue()
		sl := v.(signedLine)
		fmt.Fprintf(&c.output, "%c%s\n", sl.sign, sl.text)
	}
}

// clear resets pending hunk state. The context buffer is deliberately not
// cleared: its remaining lines may still serve as leading context for the
// next hunk. The side indices advance by however many lines this hunk
// consumed, whether or not it was actually emitted.
func (c *chunkAssembler) clear() {
	c.lhs.Clear()
	c.rhs.Clear()
	c.data.Clear()
	c.lhsIdx += c.lhsSize
	c.rhsIdx += c.rhsSize
	c.lhsSize = 0
	c.rhsSize = 0
	c.onlyBlankLines = true
	c.onlyMatchingLines = true
}

// moveOutput finalizes the last pending hunk and returns the rendered
// output, or "" if no hunk was ever actually emitted (header suppressed).
func (c *chunkAssembler) moveOutput() string {
	c.outputChunk()
	if c.diffFound {
		return c.output.String()
	}
	return ""
}

func chunkPos(empty bool, idx, size int) string {
	if empty {
		return "0,0"
	}
	if size == 1 {
		return fmt.Sprintf("%d", idx+1)
	}
	return fmt.Sprintf("%d,%d", idx+1, size)
}
