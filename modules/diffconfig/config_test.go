package diffconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linediff/linediff/modules/linediff"
)

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestLoadEmptyPathIsZeroConfig(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Algorithm)
}

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff.toml")
	contents := `
algorithm = "direct"
context_size = 5
ignore_blank_lines = true
ignore_matching_lines = "^DEBUG"
time_format = "%F"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	opts := linediff.DefaultOptions()
	require.NoError(t, cfg.Apply(&opts))

	assert.Equal(t, linediff.Direct, opts.Algorithm)
	assert.Equal(t, 5, opts.ContextSize)
	assert.True(t, opts.IgnoreBlankLines)
	require.NotNil(t, opts.IgnoreMatchingLines)
	assert.Equal(t, "^DEBUG", opts.IgnoreMatchingLines.String())
	assert.Equal(t, "%F", opts.TimeFormat)
}

func TestApplyRejectsUnknownAlgorithm(t *testing.T) {
	cfg := &Config{Algorithm: "bogus"}
	opts := linediff.DefaultOptions()
	err := cfg.Apply(&opts)
	require.Error(t, err)
}

func TestApplyRejectsBadRegex(t *testing.T) {
	cfg := &Config{IgnoreMatchingLines: "(unterminated"}
	opts := linediff.DefaultOptions()
	err := cfg.Apply(&opts)
	require.Error(t, err)
	var rerr *linediff.RegexError
	require.ErrorAs(t, err, &rerr)
}

func TestApplyNilConfigIsNoop(t *testing.T) {
	var cfg *Config
	opts := linediff.DefaultOptions()
	require.NoError(t, cfg.Apply(&opts))
}
