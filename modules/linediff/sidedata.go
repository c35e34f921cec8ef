package linediff

import (
	"regexp"
	"strings"

	"github.com/linediff/linediff/modules/lineparse"
)

const asciiWhitespace = " \t\n\r\v\f"

// sedEscape matches the escapes a RegexReplace.Replacement may contain:
// "\\" for a literal backslash and "\0".."\9" for capture groups.
var sedEscape = regexp.MustCompile(`\\(\\|[0-9])`)

// lineCache holds one line's raw (display) text alongside its normalized
// key and whether that key is an ignore-match. raw already carries the
// embedded "\n\ No newline at end of file" marker for a file's final line
// when the source text had no trailing newline; key is always computed
// from the line's content before that marker is attached.
type lineCache struct {
	raw           string
	key           string
	matchesIgnore bool
}

// sideData is one side (lhs or rhs) of a FileDiff call: every line of an
// Artefact's content, split and normalized up front, plus a cursor the
// differs advance as they consume lines.
type sideData struct {
	lines []lineCache
	idx   int
}

// newSideData splits text into lines and normalizes each one. A zero-length
// text yields zero lines (and therefore no "no newline" marker, since there
// is no last line to attach it to).
func newSideData(text string, opts Options, replace *RegexReplace) *sideData {
	if text == "" {
		return &sideData{}
	}
	gotNL := strings.HasSuffix(text, "\n")
	body := text
	if gotNL {
		body = body[:len(body)-1]
	}
	rawLines := strings.Split(body, "\n")
	lines := make([]lineCache, len(rawLines))
	for i, base := range rawLines {
		display := base
		if !gotNL && i == len(rawLines)-1 {
			display = base + "\n\\ No newline at end of file"
		}
		key, matches := processLine(base, opts, replace)
		lines[i] = lineCache{raw: display, key: key, matchesIgnore: matches}
	}
	return &sideData{lines: lines}
}

// processLine runs the normalization pipeline in its documented order:
// whitespace policy, then comment stripping, then regex replacement, with
// the ignore-match computed last against the fully processed key.
func processLine(raw string, opts Options, replace *RegexReplace) (string, bool) {
	s := raw
	switch {
	case opts.IgnoreAllSpace:
		s = stripAllSpace(s)
	case opts.IgnoreConsecutiveSpace:
		s = collapseSpace(s)
	case opts.IgnoreTrailingSpace:
		s = strings.TrimRight(s, asciiWhitespace)
	}
	s = stripComments(s, opts.StripComments)
	if replace != nil {
		// Translate the sed-style replacement into regexp's $-template
		// syntax, where '$' has to be doubled to stay literal.
		tmpl := sedEscape.ReplaceAllStringFunc(strings.ReplaceAll(replace.Replacement, "$", "$$"), func(m string) string {
			if m[1] == '\\' {
				return `\`
			}
			return "${" + m[1:] + "}"
		})
		s = replace.Regex.ReplaceAllString(s, tmpl)
	}
	matches := opts.IgnoreMatchingChunks && opts.IgnoreMatchingLines != nil && opts.IgnoreMatchingLines.MatchString(s)
	return s, matches
}

func isASCIISpace(b byte) bool {
	return strings.IndexByte(asciiWhitespace, b) >= 0
}

func stripAllSpace(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if !isASCIISpace(s[i]) {
			out.WriteByte(s[i])
		}
	}
	return out.String()
}

func collapseSpace(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		if isASCIISpace(s[i]) {
			inRun = true
			continue
		}
		if inRun && out.Len() > 0 {
			out.WriteByte(' ')
		}
		inRun = false
		out.WriteByte(s[i])
	}
	return out.String()
}

func stripComments(s string, cs CommentStrip) string {
	switch cs.Kind {
	case NoCommentStripping:
		return s
	case PlainCommentStripping:
		if cs.Marker == "" {
			return s
		}
		if idx := strings.Index(s, cs.Marker); idx >= 0 {
			s = s[:idx]
			if cs.StripTrailingWhitespace {
				s = strings.TrimRight(s, asciiWhitespace)
			}
		}
		return s
	case ParsedCommentStripping:
		popts := cs.ParseOptions
		popts.StopAtStr = cs.Marker
		popts.AllowUnquoted = true
		res, err := lineparse.Parse(s, popts)
		if err != nil {
			// Absorbed per the error-handling design: the line falls back
			// to its pre-normalization form rather than failing the diff.
			return s
		}
		out := res.Joined()
		if cs.StripTrailingWhitespace && res.Remainder != "" {
			out = strings.TrimRight(out, asciiWhitespace)
		}
		return out
	default:
		return s
	}
}

func (sd *sideData) Size() int {
	if sd == nil {
		return 0
	}
	return len(sd.lines)
}

// Next returns the line at the cursor and advances it, or a zero lineCache
// if already Done.
func (sd *sideData) Next() lineCache {
	if sd.Done() {
		return lineCache{}
	}
	l := sd.lines[sd.idx]
	sd.idx++
	return l
}

// Line returns the line at the cursor without advancing it.
func (sd *sideData) Line() lineCache {
	if sd.Done() {
		return lineCache{}
	}
	return sd.lines[sd.idx]
}

// GetCache returns the line ofs positions past the cursor (ofs == 0 is the
// current line), used by compareEq lookahead during resync search.
func (sd *sideData) GetCache(ofs int) lineCache {
	return sd.lines[sd.idx+ofs]
}

func (sd *sideData) Idx() int { return sd.idx }

// Done reports whether the cursor has consumed every line.
func (sd *sideData) Done() bool { return sd.idx >= len(sd.lines) }

// DoneAt reports whether the cursor, offset by ofs, has run past the end.
func (sd *sideData) DoneAt(ofs int) bool { return sd.idx+ofs >= len(sd.lines) }

// compareEq implements CompareEq: lines that both match the ignore pattern
// are always equal, regardless of content; otherwise keys are compared
// under ignore_case or exactly.
func compareEq(a, b lineCache, opts Options) bool {
	if a.matchesIgnore && b.matchesIgnore {
		return true
	}
	if opts.IgnoreCase {
		return strings.EqualFold(a.key, b.key)
	}
	return a.key == b.key
}
