package linediff

// computeDirect runs the direct (positional/zip) comparison: no resync
// search, just a line-for-line walk that emits an equal or a one-line
// delete+insert pair at every position, with context_size forced to 0
// (a direct diff has no concept of surrounding context).
func computeDirect(lhs, rhs Artefact, opts Options) (string, error) {
	opts.ContextSize = 0
	f := newFixture(lhs, rhs, opts)
	for f.more() {
		if f.compareEq(0, 0) {
			f.pushEqual()
		} else {
			f.pushDiff()
		}
	}
	return f.finalize(), nil
}
