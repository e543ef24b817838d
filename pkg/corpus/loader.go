// Package corpus loads transmissions and signatures from disk.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/Veraticus/txscan/pkg/interfaces"
	"github.com/Veraticus/txscan/pkg/logging"
	"github.com/Veraticus/txscan/pkg/types"
)

var (
	// ErrNotFound is returned when an identifier does not resolve to a file
	ErrNotFound = errors.New("not found")
	// ErrIO is returned when a file exists but cannot be read or decoded
	ErrIO = errors.New("io error")
	// ErrTooLarge is returned when content exceeds the configured limit
	ErrTooLarge = errors.New("input too large")
	// ErrInvalidUTF8 is returned for content that is not valid UTF-8 text
	ErrInvalidUTF8 = errors.New("invalid utf-8")
)

// DefaultMaxBytes bounds the decoded size of a single input
const DefaultMaxBytes int64 = 16 << 20

// FileLoader reads identifiers as file paths relative to a base directory.
type FileLoader struct {
	baseDir  string
	trim     bool
	maxBytes int64
	logger   *slog.Logger
}

// Option configures a FileLoader
type Option func(*FileLoader)

// WithTrim trims leading and trailing whitespace from loaded content
func WithTrim(trim bool) Option {
	return func(l *FileLoader) {
		l.trim = trim
	}
}

// WithMaxBytes sets the decoded size limit. Non-positive values keep the default.
func WithMaxBytes(n int64) Option {
	return func(l *FileLoader) {
		if n > 0 {
			l.maxBytes = n
		}
	}
}

// WithLogger sets the logger used for load diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(l *FileLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewFileLoader creates a loader rooted at baseDir. An empty baseDir
// resolves identifiers against the working directory.
func NewFileLoader(baseDir string, opts ...Option) *FileLoader {
	l := &FileLoader{
		baseDir:  baseDir,
		maxBytes: DefaultMaxBytes,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Ensure FileLoader implements Loader
var _ interfaces.Loader = (*FileLoader)(nil)

// Load reads the file named by identifier. Files ending in .gz or .zst are
// decompressed transparently.
func (l *FileLoader) Load(ctx context.Context, identifier string) (types.Document, error) {
	if err := ctx.Err(); err != nil {
		return types.Document{}, err
	}

	path := l.resolve(identifier)
	// #nosec G304 - identifiers come from the user's own config and arguments
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Document{}, fmt.Errorf("load %q: %w", identifier, ErrNotFound)
		}
		return types.Document{}, fmt.Errorf("load %q: %w: %w", identifier, ErrIO, err)
	}
	defer func() { _ = f.Close() }()

	data, err := l.read(f, path)
	if err != nil {
		return types.Document{}, fmt.Errorf("load %q: %w", identifier, err)
	}

	// distinct invalid bytes would all decode to U+FFFD and compare equal
	if !utf8.Valid(data) {
		return types.Document{}, fmt.Errorf("load %q: %w: %w", identifier, ErrIO, ErrInvalidUTF8)
	}

	text := string(data)
	if l.trim {
		text = strings.TrimSpace(text)
	}

	doc := types.Document{
		Identifier: identifier,
		Text:       text,
		Digest:     xxhash.Sum64String(text),
	}
	l.logger.Debug("loaded input",
		"identifier", identifier,
		"bytes", len(data),
		"digest", fmt.Sprintf("%016x", doc.Digest))
	return doc, nil
}

func (l *FileLoader) resolve(identifier string) string {
	if l.baseDir == "" || filepath.IsAbs(identifier) {
		return identifier
	}
	return filepath.Join(l.baseDir, identifier)
}

// read decodes r according to the extension of path and enforces maxBytes
// on the decoded content.
func (l *FileLoader) read(r io.Reader, path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: gzip: %w", ErrIO, err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	case ".zst":
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrIO, err)
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(io.LimitReader(r, l.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if int64(len(data)) > l.maxBytes {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, l.maxBytes)
	}
	return data, nil
}
