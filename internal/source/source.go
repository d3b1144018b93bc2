// Package source opens ARFF inputs and decodes them to UTF-8 text.
package source

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/leapstack-labs/arffkit/pkg/arff"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when no encoding is configured.
const DefaultEncoding = "utf-8"

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"utf-16":       unicode.UTF16(unicode.LittleEndian, unicode.UseBOM),
	"latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// Encodings returns the supported encoding names, sorted.
func Encodings() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the decoder for an encoding name (case-insensitive). An
// empty name means DefaultEncoding.
func Lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		name = DefaultEncoding
	}
	enc, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported encoding %q (supported: %s)", name, strings.Join(Encodings(), ", "))
	}
	return enc, nil
}

// File is an opened input whose reads yield UTF-8 text. Callers must Close
// it on every exit path.
type File struct {
	name   string
	f      *os.File
	r      io.Reader
	closed bool
}

// Open opens path for decoding with the named encoding.
func Open(path, enc string) (*File, error) {
	if _, err := Lookup(enc); err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // G304: path is supplied by the user
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	r, err := NewReader(f, enc)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &File{name: path, f: f, r: r}, nil
}

// NewReader decodes r with the named encoding without owning it.
func NewReader(r io.Reader, enc string) (io.Reader, error) {
	e, err := Lookup(enc)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, unicode.BOMOverride(e.NewDecoder())), nil
}

// Name returns the path the file was opened with.
func (f *File) Name() string { return f.name }

func (f *File) Read(p []byte) (int, error) { return f.r.Read(p) }

// Close releases the underlying file. Calling it again is a no-op.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.f.Close()
}

// ParseFile decodes path with the named encoding and parses it as ARFF.
// The file is closed before ParseFile returns.
func ParseFile(path, enc string, opts arff.Options) (*arff.Document, error) {
	f, err := Open(path, enc)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	doc, err := arff.Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.SourcePath = path
	return doc, nil
}
