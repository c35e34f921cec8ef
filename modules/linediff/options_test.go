package linediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegexReplaceSlashSeparator(t *testing.T) {
	rr, err := ParseRegexReplace("/ERROR.*//")
	require.NoError(t, err)
	assert.Equal(t, "ERROR.*", rr.Regex.String())
	assert.Equal(t, "", rr.Replacement)
}

func TestParseRegexReplaceArbitrarySeparator(t *testing.T) {
	rr, err := ParseRegexReplace("|foo|bar|")
	require.NoError(t, err)
	assert.Equal(t, "foo", rr.Regex.String())
	assert.Equal(t, "bar", rr.Replacement)
}

func TestParseRegexReplaceRejectsMissingTrailingSeparator(t *testing.T) {
	_, err := ParseRegexReplace("/foo/bar")
	require.Error(t, err)
}

func TestParseRegexReplaceRejectsTooFewSeparators(t *testing.T) {
	_, err := ParseRegexReplace("/foo/")
	require.Error(t, err)
}

func TestParseRegexReplaceEmptyIsError(t *testing.T) {
	_, err := ParseRegexReplace("")
	require.Error(t, err)
}

func TestParseRegexReplaceBadPatternIsRegexError(t *testing.T) {
	_, err := ParseRegexReplace("/(unterminated//")
	require.Error(t, err)
	var rerr *RegexError
	require.ErrorAs(t, err, &rerr)
}

func TestParseAlgorithm(t *testing.T) {
	algo, ok := ParseAlgorithm("direct")
	require.True(t, ok)
	assert.Equal(t, Direct, algo)

	_, ok = ParseAlgorithm("bogus")
	assert.False(t, ok)
}

func TestParseFileHeaderUse(t *testing.T) {
	use, ok := ParseFileHeaderUse("left")
	require.True(t, ok)
	assert.Equal(t, FileHeaderLeft, use)

	_, ok = ParseFileHeaderUse("bogus")
	assert.False(t, ok)
}

func TestDefaultOptionsMatchOriginalDefaults(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, Unified, opts.Algorithm)
	assert.Equal(t, 3, opts.ContextSize)
	assert.Equal(t, FileHeaderBoth, opts.FileHeaderUse)
	assert.True(t, opts.IgnoreMatchingChunks)
	assert.True(t, opts.ShowChunkHeaders)
	assert.Equal(t, 1_337_000, opts.MaxDiffChunkLength)
	assert.Equal(t, "%F %H:%M:%E3S %z", opts.TimeFormat)
	assert.NoError(t, opts.Validate())
}
