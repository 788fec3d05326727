package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Parse reads a configuration in file format from r. name is used in
// error messages.
func Parse(r io.Reader, name string) (*Config, error) {
	cfg := &Config{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	line := 0
	for _, k := range Keys() {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading %s: %w", name, err)
			}
			return nil, &ParseError{Path: name, Line: line + 1, Key: k.String(), Err: ErrMissingKey}
		}
		line++

		// bufio.ScanLines drops "\n" and a preceding "\r"; nothing else is trimmed.
		text := sc.Text()
		perr := func(err error) error {
			return &ParseError{Path: name, Line: line, Key: k.String(), Err: err}
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, perr(ErrMissingSeparator)
		}
		if key != k.String() {
			return nil, perr(fmt.Errorf("%w %q", ErrUnexpectedKey, key))
		}

		if k.IsChoice() {
			if _, err := parseChoice(value); err != nil {
				return nil, perr(err)
			}
		}
		if err := cfg.Set(k, value); err != nil {
			return nil, perr(err)
		}
	}

	// Blank lines after the last key are tolerated.
	for sc.Scan() {
		line++
		if sc.Text() != "" {
			return nil, &ParseError{Path: name, Line: line, Key: sc.Text(), Err: ErrExtraLine}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return cfg, nil
}

// Write writes c in file format.
func Write(w io.Writer, c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, k := range Keys() {
		v, _ := c.Get(k)
		if _, err := fmt.Fprintf(bw, "%s=%s\n", k, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Load reads the configuration at path. When the file does not exist the
// defaults are written to path and returned.
func Load(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// load is Load that also reports whether the file was created.
func load(path string) (*Config, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, false, fmt.Errorf("creating default config: %w", err)
		}
		return cfg, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f, path)
	if err != nil {
		return nil, false, err
	}
	return cfg, false, nil
}

// Save writes c to path, replacing any previous content. The parent
// directory is created if needed.
func Save(path string, c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	var b strings.Builder
	if err := Write(&b, c); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
