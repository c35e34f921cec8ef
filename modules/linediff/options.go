package linediff

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/linediff/linediff/modules/lineparse"
)

// Algorithm selects which differ FileDiff dispatches to.
type Algorithm int

const (
	Unified Algorithm = iota
	Direct
)

func (a Algorithm) String() string {
	switch a {
	case Unified:
		return "unified"
	case Direct:
		return "direct"
	default:
		return "unknown"
	}
}

// ParseAlgorithm accepts the flag-style spellings used by cmd/godiff.
func ParseAlgorithm(s string) (Algorithm, bool) {
	switch strings.ToLower(s) {
	case "unified", "u":
		return Unified, true
	case "direct", "d":
		return Direct, true
	default:
		return 0, false
	}
}

// FileHeaderUse controls which of the "---"/"+++" header lines FileHeaders
// emits.
type FileHeaderUse int

const (
	FileHeaderNone FileHeaderUse = iota
	FileHeaderBoth
	FileHeaderLeft
	FileHeaderRight
)

func (f FileHeaderUse) String() string {
	switch f {
	case FileHeaderNone:
		return "none"
	case FileHeaderBoth:
		return "both"
	case FileHeaderLeft:
		return "left"
	case FileHeaderRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseFileHeaderUse accepts the flag-style spellings used by cmd/godiff.
func ParseFileHeaderUse(s string) (FileHeaderUse, bool) {
	switch strings.ToLower(s) {
	case "none":
		return FileHeaderNone, true
	case "both":
		return FileHeaderBoth, true
	case "left":
		return FileHeaderLeft, true
	case "right":
		return FileHeaderRight, true
	default:
		return 0, false
	}
}

// CommentStripKind selects the strip_comments variant.
type CommentStripKind int

const (
	// NoCommentStripping leaves lines untouched.
	NoCommentStripping CommentStripKind = iota
	// PlainCommentStripping cuts a line at the first occurrence of a fixed
	// marker string, ignoring quoting.
	PlainCommentStripping
	// ParsedCommentStripping cuts a line at a marker using modules/lineparse,
	// so markers inside quoted text are not treated as comment starts.
	ParsedCommentStripping
)

// CommentStrip holds the parameters for whichever CommentStripKind is
// selected; fields outside the active variant are ignored.
type CommentStrip struct {
	Kind CommentStripKind
	// Marker is the comment-start text for both Plain and Parsed variants.
	Marker string
	// StripTrailingWhitespace additionally trims trailing ASCII whitespace
	// left behind after the cut. Defaults to true in DefaultOptions.
	StripTrailingWhitespace bool
	// ParseOptions configures the lineparse.Parse call backing Parsed mode.
	// Marker is installed as ParseOptions.StopAtStr by sideData.
	ParseOptions lineparse.Options
}

// RegexReplace is one (pattern, replacement) pair applied to a line's key.
// Replacement uses sed-style escapes: \0..\9 insert capture groups and \\
// a literal backslash; every other character, '$' included, is literal.
type RegexReplace struct {
	Regex       *regexp.Regexp
	Replacement string
}

// ParseRegexReplace parses "<sep><regex><sep><replacement><sep>", where
// <sep> is the string's first character and must occur exactly three
// times total (sed-style, so any separator works, e.g. "/ERROR.*//" or
// "|ERROR.*||"). Unknown/malformed input returns an error rather than the
// distilled spec's "None", since a CLI flag needs to fail loudly.
func ParseRegexReplace(raw string) (*RegexReplace, error) {
	if len(raw) == 0 {
		return nil, &ConfigError{Reason: "regex_replace must not be empty"}
	}
	sep := raw[0]
	parts := splitOnSeparator(raw[1:], sep)
	if len(parts) != 2 {
		return nil, &ConfigError{Reason: fmt.Sprintf("regex_replace must contain separator %q exactly three times total, got: %s", sep, raw)}
	}
	pattern, replacement := parts[0], parts[1]
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &RegexError{Field: "regex_replace", Err: err}
	}
	return &RegexReplace{Regex: re, Replacement: replacement}, nil
}

// splitOnSeparator drops s's trailing separator and splits the rest on sep
// (skipping escaped "\<sep>" occurrences); it returns nil when s does not
// end in sep. ParseRegexReplace's "exactly three total" contract holds when
// the result has exactly two fields, i.e. one separator before the
// trailing one.
func splitOnSeparator(s string, sep byte) []string {
	if len(s) == 0 || s[len(s)-1] != sep {
		return nil
	}
	s = s[:len(s)-1]
	var fields []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == sep {
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	fields = append(fields, s[start:])
	return fields
}

// Options mirrors DiffOptions: the full set of knobs controlling
// normalization, chunk assembly, and output formatting. Construct one with
// DefaultOptions and override fields directly; call Validate before use.
type Options struct {
	Algorithm     Algorithm
	ContextSize   int
	FileHeaderUse FileHeaderUse

	IgnoreBlankLines       bool
	IgnoreCase             bool
	IgnoreMatchingChunks   bool
	IgnoreAllSpace         bool
	IgnoreConsecutiveSpace bool
	IgnoreTrailingSpace    bool
	ShowChunkHeaders       bool
	SkipLeftDeletions      bool

	IgnoreMatchingLines *regexp.Regexp

	StripComments CommentStrip

	RegexReplaceLHS *RegexReplace
	RegexReplaceRHS *RegexReplace

	StripFileHeaderPrefix string

	MaxDiffChunkLength int
	TimeFormat         string

	// SkipTime zeroes both artefacts' ModTime before header rendering, for
	// reproducible golden-file comparisons.
	SkipTime bool
}

// DefaultOptions returns the zero-configuration defaults, matching the
// original differ's defaults field for field.
func DefaultOptions() Options {
	return Options{
		Algorithm:            Unified,
		ContextSize:          3,
		FileHeaderUse:        FileHeaderBoth,
		IgnoreMatchingChunks: true,
		ShowChunkHeaders:     true,
		MaxDiffChunkLength:   1_337_000,
		TimeFormat:           "%F %H:%M:%E3S %z",
		StripComments: CommentStrip{
			Kind:                    NoCommentStripping,
			StripTrailingWhitespace: true,
		},
	}
}

// Validate checks field-level invariants that must hold before FileDiff
// runs. It does not enforce the Direct-algorithm context_size==0 rule --
// the Direct differ forces that itself, matching the original entry point.
func (o Options) Validate() error {
	switch o.Algorithm {
	case Unified, Direct:
	default:
		return &ConfigError{Reason: "unknown algorithm selected"}
	}
	if o.ContextSize < 0 {
		return &ConfigError{Reason: "context_size must be >= 0"}
	}
	if o.MaxDiffChunkLength < 0 {
		return &ConfigError{Reason: "max_diff_chunk_length must be >= 0"}
	}
	return nil
}
