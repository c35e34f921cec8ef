package linediff

import (
	"regexp"
	"strings"
)

// fileHeaders renders the "--- "/"+++ " header pair, or "" when
// FileHeaderUse is FileHeaderNone.
func fileHeaders(lhs, rhs Artefact, opts Options) string {
	if opts.FileHeaderUse == FileHeaderNone {
		return ""
	}
	var out strings.Builder
	out.WriteString("--- ")
	out.WriteString(selectFileHeader(lhs, lhs, rhs, opts))
	out.WriteString("\n")
	out.WriteString("+++ ")
	out.WriteString(selectFileHeader(rhs, lhs, rhs, opts))
	out.WriteString("\n")
	return out.String()
}

// selectFileHeader picks which artefact's name/time actually gets rendered
// for one of the two header lines, per FileHeaderUse.
func selectFileHeader(either, lhs, rhs Artefact, opts Options) string {
	switch opts.FileHeaderUse {
	case FileHeaderNone:
		return ""
	case FileHeaderLeft:
		return fileHeader(lhs, opts)
	case FileHeaderRight:
		return fileHeader(rhs, opts)
	default: // FileHeaderBoth
		return fileHeader(either, opts)
	}
}

const regexMetaChars = ".*?()[]|"

// fileHeader renders one "name time" header line. strip_file_header_prefix
// is treated as a literal prefix unless it contains a regex metacharacter,
// in which case it is treated as a regex anchored at the start of the name.
func fileHeader(info Artefact, opts Options) string {
	name := info.Name
	if !strings.ContainsAny(opts.StripFileHeaderPrefix, regexMetaChars) {
		name = strings.TrimPrefix(info.Name, opts.StripFileHeaderPrefix)
	} else if re, err := regexp.Compile(opts.StripFileHeaderPrefix); err == nil {
		if loc := re.FindStringIndex(info.Name); loc != nil && loc[0] == 0 {
			name = info.Name[loc[1]:]
		}
	}
	display := name
	if info.Name == "" {
		display = "-"
	}
	timeStr := formatTime(opts.TimeFormat, info.effectiveModTime(opts), info.effectiveLoc())
	return display + " " + timeStr
}
