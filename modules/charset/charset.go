// Package charset implements the ambient file-reading collaborator a line
// differ needs but does not itself define: turning a path on disk into a
// linediff.Artefact, with charset sniffing/decoding and binary rejection.
// Grounded on the teacher's modules/diferenco/text.go and modules/chardet,
// trimmed to the subset a CLI differ needs and rebuilt on
// golang.org/x/text/encoding directly rather than the teacher's in-house
// mime-sniffing subpackages.
package charset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/linediff/linediff/modules/linediff"
)

// ErrBinaryData is returned when the file's leading bytes contain a NUL,
// the same heuristic the teacher's text.go uses to reject binary content.
var ErrBinaryData = errors.New("charset: binary data")

// sniffLen bounds how many leading bytes are inspected for binary content,
// matching the teacher's own sniffLen.
const sniffLen = 8000

// candidateEncodings are tried, in order, once UTF-8 decoding has been
// ruled out. This is necessarily a small, static list: without a full
// charset-detection corpus (the teacher's modules/mime), byte-frequency
// guessing is out of scope, so only UTF-16 (little- and big-endian, a BOM
// overriding either) and the single-byte Windows-1252 are covered.
var candidateEncodings = []encoding.Encoding{
	unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	unicode.UTF16(unicode.BigEndian, unicode.UseBOM),
	charmap.Windows1252,
}

// ReadArtefact reads path, rejects binary content, decodes it to UTF-8 if
// needed, and returns the resulting linediff.Artefact. maxLines caps the
// number of lines kept (0 means unbounded), ported from the original's
// Artefact::ReadMaxLines.
func ReadArtefact(ctx context.Context, path string, maxLines int) (linediff.Artefact, error) {
	if err := ctx.Err(); err != nil {
		return linediff.Artefact{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return linediff.Artefact{}, fmt.Errorf("charset: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return linediff.Artefact{}, fmt.Errorf("charset: stat %s: %w", path, err)
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return linediff.Artefact{}, fmt.Errorf("charset: read %s: %w", path, err)
	}

	sniff := raw
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}
	if bytes.IndexByte(sniff, 0) >= 0 {
		return linediff.Artefact{}, fmt.Errorf("%w: %s", ErrBinaryData, path)
	}

	text, err := decode(raw)
	if err != nil {
		return linediff.Artefact{}, fmt.Errorf("charset: decode %s: %w", path, err)
	}
	if maxLines > 0 {
		text = capLines(text, maxLines)
	}

	return linediff.Artefact{
		Data:    text,
		Name:    path,
		ModTime: info.ModTime(),
		Loc:     time.Local,
	}, nil
}

func decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	for _, enc := range candidateEncodings {
		if out, err := enc.NewDecoder().Bytes(raw); err == nil && utf8.Valid(out) {
			return string(out), nil
		}
	}
	return "", fmt.Errorf("content is not valid UTF-8 and no candidate encoding decoded it")
}

// capLines keeps at most n lines of text. Text of n lines or fewer is
// returned unchanged; when lines are dropped, every kept line ends in a
// newline.
func capLines(text string, n int) string {
	if n <= 0 {
		return text
	}
	terminated := strings.HasSuffix(text, "\n")
	body := text
	if terminated {
		body = body[:len(body)-1]
	}
	lines := strings.Split(body, "\n")
	if len(lines) <= n {
		return text
	}
	kept := strings.Join(lines[:n], "\n")
	return kept + "\n"
}
