// Package diffconfig loads an optional TOML file of linediff.Options
// defaults, grounded on the teacher's modules/zeta/config
// (toml.DecodeFile, not-exist-tolerant Load*). cmd/godiff overlays a
// --config file's values before applying command-line flags on top.
package diffconfig

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"

	"github.com/linediff/linediff/modules/linediff"
)

// Config is the on-disk shape. Every field is optional; zero values mean
// "not set in the file" and are left alone by Apply.
type Config struct {
	Algorithm              string `toml:"algorithm"`
	ContextSize            *int   `toml:"context_size"`
	FileHeaderUse          string `toml:"file_header_use"`
	IgnoreBlankLines       *bool  `toml:"ignore_blank_lines"`
	IgnoreCase             *bool  `toml:"ignore_case"`
	IgnoreMatchingChunks   *bool  `toml:"ignore_matching_chunks"`
	IgnoreAllSpace         *bool  `toml:"ignore_all_space"`
	IgnoreConsecutiveSpace *bool  `toml:"ignore_consecutive_space"`
	IgnoreTrailingSpace    *bool  `toml:"ignore_trailing_space"`
	ShowChunkHeaders       *bool  `toml:"show_chunk_headers"`
	SkipLeftDeletions      *bool  `toml:"skip_left_deletions"`
	IgnoreMatchingLines    string `toml:"ignore_matching_lines"`
	StripFileHeaderPrefix  string `toml:"strip_file_header_prefix"`
	MaxDiffChunkLength     *int   `toml:"max_diff_chunk_length"`
	TimeFormat             string `toml:"time_format"`
	SkipTime               *bool  `toml:"skip_time"`
}

// Load reads path and decodes it as TOML. A missing file is not an error:
// it returns a zero Config, matching LoadGlobal's not-exist tolerance.
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		return &cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("diffconfig: stat %s: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("diffconfig: decode %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply overlays every field c sets onto opts, leaving fields the file
// left unset untouched. Regex fields are compiled via the same parsers
// cmd/godiff's flags use, so a malformed pattern surfaces the same
// *linediff.RegexError either way.
func (c *Config) Apply(opts *linediff.Options) error {
	if c == nil {
		return nil
	}
	if c.Algorithm != "" {
		algo, ok := linediff.ParseAlgorithm(c.Algorithm)
		if !ok {
			return &linediff.ConfigError{Reason: "diffconfig: unknown algorithm: " + c.Algorithm}
		}
		opts.Algorithm = algo
	}
	if c.ContextSize != nil {
		opts.ContextSize = *c.ContextSize
	}
	if c.FileHeaderUse != "" {
		use, ok := linediff.ParseFileHeaderUse(c.FileHeaderUse)
		if !ok {
			return &linediff.ConfigError{Reason: "diffconfig: unknown file_header_use: " + c.FileHeaderUse}
		}
		opts.FileHeaderUse = use
	}
	applyBool(&opts.IgnoreBlankLines, c.IgnoreBlankLines)
	applyBool(&opts.IgnoreCase, c.IgnoreCase)
	applyBool(&opts.IgnoreMatchingChunks, c.IgnoreMatchingChunks)
	applyBool(&opts.IgnoreAllSpace, c.IgnoreAllSpace)
	applyBool(&opts.IgnoreConsecutiveSpace, c.IgnoreConsecutiveSpace)
	applyBool(&opts.IgnoreTrailingSpace, c.IgnoreTrailingSpace)
	applyBool(&opts.ShowChunkHeaders, c.ShowChunkHeaders)
	applyBool(&opts.SkipLeftDeletions, c.SkipLeftDeletions)
	applyBool(&opts.SkipTime, c.SkipTime)
	if c.IgnoreMatchingLines != "" {
		re, err := compileNamed("ignore_matching_lines", c.IgnoreMatchingLines)
		if err != nil {
			return err
		}
		opts.IgnoreMatchingLines = re
	}
	if c.StripFileHeaderPrefix != "" {
		opts.StripFileHeaderPrefix = c.StripFileHeaderPrefix
	}
	if c.MaxDiffChunkLength != nil {
		opts.MaxDiffChunkLength = *c.MaxDiffChunkLength
	}
	if c.TimeFormat != "" {
		opts.TimeFormat = c.TimeFormat
	}
	return nil
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func compileNamed(field, pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &linediff.RegexError{Field: field, Err: err}
	}
	return re, nil
}
