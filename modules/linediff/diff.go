// Package linediff implements a line-oriented text differ producing
// diff(1)-compatible unified output, with configurable normalization and
// chunk-level suppression. FileDiff is the package's single entry point.
package linediff

// fixture bundles the state both differs share: resolved options, the
// rendered file-header pair, each side's normalized lines, and the
// in-progress hunk assembler. It mirrors the shared construction step both
// algorithms perform before their own traversal logic runs.
type fixture struct {
	options Options
	header  string
	lhs     *sideData
	rhs     *sideData
	chunk   *chunkAssembler
}

func newFixture(lhs, rhs Artefact, opts Options) *fixture {
	header := fileHeaders(lhs, rhs, opts)
	return &fixture{
		options: opts,
		header:  header,
		lhs:     newSideData(lhs.Data, opts, opts.RegexReplaceLHS),
		rhs:     newSideData(rhs.Data, opts, opts.RegexReplaceRHS),
		chunk:   newChunkAssembler(lhs.Data == "", rhs.Data == "", header, opts),
	}
}

// compareEq compares the lines ofsLhs/ofsRhs positions ahead of each side's
// current cursor.
func (f *fixture) compareEq(ofsLhs, ofsRhs int) bool {
	return compareEq(f.lhs.GetCache(ofsLhs), f.rhs.GetCache(ofsRhs), f.options)
}

// more reports whether both cursors still have a line available. Once
// either side runs out, the resync/compare loop stops and finalize drains
// whatever remains on the other side.
func (f *fixture) more() bool {
	return !f.lhs.Done() && !f.rhs.Done()
}

// pushEqual records the current line pair as equal context and advances
// both cursors.
func (f *fixture) pushEqual() {
	f.chunk.pushBoth(f.lhs.Idx(), f.rhs.Idx(), f.lhs.Line().raw)
	f.lhs.Next()
	f.rhs.Next()
}

// pushDiff records the current line pair as a one-line deletion plus
// insertion and advances both cursors.
func (f *fixture) pushDiff() {
	lhsIdx, rhsIdx := f.lhs.Idx(), f.rhs.Idx()
	f.chunk.pushLhs(lhsIdx, rhsIdx, f.lhs.Line().raw)
	f.chunk.pushRhs(lhsIdx, rhsIdx, f.rhs.Line().raw)
	f.chunk.moveDiffs()
	f.lhs.Next()
	f.rhs.Next()
}

// pushLhsOnly records the current left line as a deletion and advances
// only the left cursor.
func (f *fixture) pushLhsOnly() {
	idx := f.lhs.Idx()
	line := f.lhs.Next()
	f.chunk.pushLhs(idx, f.rhs.Idx(), line.raw)
}

// pushRhsOnly records the current right line as an insertion and advances
// only the right cursor.
func (f *fixture) pushRhsOnly() {
	idx := f.rhs.Idx()
	line := f.rhs.Next()
	f.chunk.pushRhs(f.lhs.Idx(), idx, line.raw)
}

// finalize drains whichever side still has lines left once the main loop
// has stopped, then returns the assembled output.
func (f *fixture) finalize() string {
	for !f.lhs.Done() {
		f.pushLhsOnly()
	}
	for !f.rhs.Done() {
		f.pushRhsOnly()
	}
	return f.chunk.moveOutput()
}

// FileDiff computes a diff(1)-compatible rendering of rhs against lhs under
// opts, or "" if the two artefacts' content is byte-identical. Options are
// validated first; an unresolvable Options value returns a *ConfigError
// with no diff performed.
func FileDiff(lhs, rhs Artefact, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if lhs.Data == rhs.Data {
		return "", nil
	}
	switch opts.Algorithm {
	case Unified:
		return computeUnified(lhs, rhs, opts)
	case Direct:
		return computeDirect(lhs, rhs, opts)
	default:
		return "", &ConfigError{Reason: "unknown algorithm selected"}
	}
}
