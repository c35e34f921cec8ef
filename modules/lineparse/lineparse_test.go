package lineparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUnquotedPassthrough(t *testing.T) {
	res, err := Parse(`hello world`, Options{AllowUnquoted: true})
	require.NoError(t, err)
	assert.Equal(t, "hello world", res.Joined())
	assert.Empty(t, res.Remainder)
}

func TestParseStopsWithoutUnquoted(t *testing.T) {
	res, err := Parse(`abc`, Options{})
	require.NoError(t, err)
	assert.Equal(t, "", res.Joined())
	assert.Equal(t, "abc", res.Remainder)
}

func TestParseStopAtStr(t *testing.T) {
	res, err := Parse(`value // trailing comment`, Options{AllowUnquoted: true, StopAtStr: "//"})
	require.NoError(t, err)
	assert.Equal(t, "value ", res.Joined())
	assert.Equal(t, "// trailing comment", res.Remainder)
}

func TestParseStopAtAnyOf(t *testing.T) {
	res, err := Parse(`key#comment`, Options{AllowUnquoted: true, StopAtAnyOf: "#;"})
	require.NoError(t, err)
	assert.Equal(t, "key", res.Joined())
	assert.Equal(t, "#comment", res.Remainder)
}

func TestParseQuotedMarkerIsNotAStop(t *testing.T) {
	res, err := Parse(`"//not a comment" // real comment`, Options{AllowUnquoted: true, StopAtStr: "//"})
	require.NoError(t, err)
	assert.Equal(t, `"//not a comment" `, res.Joined())
	assert.Equal(t, "// real comment", res.Remainder)
}

func TestParseRemoveQuotes(t *testing.T) {
	res, err := Parse(`"quoted"`, Options{AllowUnquoted: true, RemoveQuotes: true})
	require.NoError(t, err)
	assert.Equal(t, "quoted", res.Joined())
}

func TestParseSplitAtAnyOf(t *testing.T) {
	res, err := Parse(`a,b,c`, Options{AllowUnquoted: true, SplitAtAnyOf: ","})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Pieces)
}

func TestParseUnterminatedQuoteIsError(t *testing.T) {
	_, err := Parse(`"oops`, Options{AllowUnquoted: true})
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "unterminated quote", perr.Reason)
}

func TestParseSimpleEscapes(t *testing.T) {
	res, err := Parse(`a\nb\tc\\d`, Options{AllowUnquoted: true})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\tc\\d", res.Joined())
}

func TestParseOctalEscape(t *testing.T) {
	res, err := Parse(`\101\102`, Options{AllowUnquoted: true})
	require.NoError(t, err)
	assert.Equal(t, "AB", res.Joined())
}

func TestParseBracedOctalEscape(t *testing.T) {
	res, err := Parse(`\o{101}`, Options{AllowUnquoted: true})
	require.NoError(t, err)
	assert.Equal(t, "A", res.Joined())
}

func TestParseHexEscape(t *testing.T) {
	res, err := Parse(`\x41\x42`, Options{AllowUnquoted: true})
	require.NoError(t, err)
	assert.Equal(t, "AB", res.Joined())
}

func TestParseBracedHexEscape(t *testing.T) {
	res, err := Parse(`\x{1F600}`, Options{AllowUnquoted: true})
	require.NoError(t, err)
	assert.Equal(t, "\U0001F600", res.Joined())
}

func TestParseUnicodeEscapeNotImplemented(t *testing.T) {
	_, err := Parse(`\u0041`, Options{AllowUnquoted: true})
	require.Error(t, err)
	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Reason, "not implemented")
}

func TestParseDanglingEscapeAtEndOfLine(t *testing.T) {
	_, err := Parse(`abc\`, Options{AllowUnquoted: true})
	require.Error(t, err)
}

func TestParseEscapeInsideQuotes(t *testing.T) {
	res, err := Parse(`"a\"b"`, Options{AllowUnquoted: true})
	require.NoError(t, err)
	assert.Equal(t, `"a"b"`, res.Joined())
}
