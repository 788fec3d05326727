// Package loader converts a String Modifiers configuration to and from TOML,
// YAML and JSON, and reads overrides from the environment.
//
// The exchange formats are flat tables keyed by the configuration file's key
// names. Keys may also be spelled in kebab or snake case on import. Keys
// missing from an imported document keep their default value.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/stringmod/internal/config"
)

// Errors returned by the loader.
var (
	// ErrUnknownFormat indicates a format name that is not supported.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrInvalidValue indicates a value that is not a scalar.
	ErrInvalidValue = errors.New("value must be a string or integer")

	// ErrDuplicateKey is returned when two names resolve to the same key.
	ErrDuplicateKey = errors.New("key given more than once")
)

// Format is an exchange encoding.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	FormatJSON
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat resolves a format name or file extension.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes cfg to w in format f.
func Encode(w io.Writer, cfg *config.Config, f Format) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	switch f {
	case FormatTOML:
		data, err = encodeTOML(cfg)
	case FormatYAML:
		data, err = encodeYAML(cfg)
	case FormatJSON:
		data, err = encodeJSON(cfg)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}

	_, err = w.Write(data)
	return err
}

// Decode reads a configuration in format f from r.
func Decode(r io.Reader, f Format) (*config.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f, err)
	}
	return decode("<reader>", data, f)
}

// decode parses data and applies its values over the defaults.
func decode(source string, data []byte, f Format) (*config.Config, error) {
	var (
		values []pair
		err    error
	)
	switch f {
	case FormatTOML:
		values, err = decodeTOML(data)
	case FormatYAML:
		values, err = decodeYAML(data)
	case FormatJSON:
		values, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, &config.ParseError{Path: source, Err: err}
	}

	cfg := config.Default()
	seen := make(map[config.Key]string, len(values))
	for _, p := range values {
		k, err := config.KeyByName(p.name)
		if err != nil {
			return nil, &config.ParseError{Path: source, Key: p.name, Err: err}
		}
		if prev, dup := seen[k]; dup {
			return nil, &config.ParseError{Path: source, Key: k.String(),
				Err: fmt.Errorf("%w: %q and %q", ErrDuplicateKey, prev, p.name)}
		}
		seen[k] = p.name
		if err := cfg.Set(k, p.value); err != nil {
			return nil, &config.ParseError{Path: source, Key: k.String(), Err: err}
		}
	}
	return cfg, nil
}

// pair is one decoded name/value before key resolution.
type pair struct {
	name  string
	value string
}

// scalar formats a decoded value for config.Config.Set.
func scalar(name string, v any) (pair, error) {
	switch x := v.(type) {
	case string:
		return pair{name, x}, nil
	case int, int64, uint64, float64:
		return pair{name, fmt.Sprint(x)}, nil
	case nil:
		return pair{name, ""}, nil
	default:
		return pair{}, fmt.Errorf("%s: %w", name, ErrInvalidValue)
	}
}

// FileSystem is the subset of file operations the loader needs.
// Tests substitute an in-memory implementation.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// FileLoader imports configuration files, choosing the format from the
// file extension.
type FileLoader struct {
	fs FileSystem
}

// NewFileLoader creates a loader reading from fsys. A nil fsys means the
// OS file system.
func NewFileLoader(fsys FileSystem) *FileLoader {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &FileLoader{fs: fsys}
}

// LoadFrom reads and decodes the file at path.
func (l *FileLoader) LoadFrom(path string) (*config.Config, error) {
	f, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return decode(path, bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), f)
}
