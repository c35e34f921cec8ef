package linediff

import "time"

// Artefact is one side of a FileDiff call: the full text content plus the
// metadata the Formatter needs to render a file header. Callers own the
// lifetime of Data; FileDiff only ever reads it.
type Artefact struct {
	// Data is the complete file content, as read from disk (or any other
	// source) with no normalization applied yet.
	Data string
	// Name is the path or label used for file headers. An empty Name
	// renders as "-" (see header.go).
	Name string
	// ModTime is the artefact's modification time, rendered via TimeFormat.
	ModTime time.Time
	// Loc is the timezone ModTime is rendered in. A nil Loc means
	// time.Local.
	Loc *time.Location
}

// effectiveModTime applies Options.SkipTime, zeroing the timestamp to the
// Unix epoch for reproducible output.
func (a Artefact) effectiveModTime(opts Options) time.Time {
	if opts.SkipTime {
		return time.Unix(0, 0).UTC()
	}
	return a.ModTime
}

func (a Artefact) effectiveLoc() *time.Location {
	if a.Loc != nil {
		return a.Loc
	}
	return time.Local
}
