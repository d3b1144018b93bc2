package arff

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	keywordRelation  = "@relation"
	keywordAttribute = "@attribute"
	keywordData      = "@data"

	maxLineSize = 16 * 1024 * 1024
)

// Options configures Parse.
type Options struct {
	// CommentMarker starts a comment. Empty means DefaultCommentMarker.
	CommentMarker string

	// AllowRaggedRows keeps data rows whose field count differs from the
	// number of attributes instead of failing with ErrRowSchemaMismatch.
	AllowRaggedRows bool

	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

type state int

const (
	stateHeader state = iota
	stateData
)

// parser holds the state of one parse. It is never shared.
type parser struct {
	opts   Options
	logger *slog.Logger
	state  state
	doc    *Document
}

// Parse reads ARFF text from r. On failure no document is returned.
func Parse(r io.Reader, opts Options) (*Document, error) {
	p := newParser(opts)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := p.line(lineNo, sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	p.logger.Debug("parsed document",
		"relation", p.doc.Relation,
		"attributes", len(p.doc.Attributes),
		"rows", len(p.doc.Rows))
	return p.doc, nil
}

// ParseString parses ARFF text held in memory.
func ParseString(s string, opts Options) (*Document, error) {
	return Parse(strings.NewReader(s), opts)
}

// ParseFile opens path, parses it and closes it on every exit path.
func ParseFile(path string, opts Options) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is supplied by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.SourcePath = path
	return doc, nil
}

func newParser(opts Options) *parser {
	if opts.CommentMarker == "" {
		opts.CommentMarker = DefaultCommentMarker
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &parser{
		opts:   opts,
		logger: logger,
		state:  stateHeader,
		doc:    &Document{},
	}
}

// line classifies and consumes one physical input line.
func (p *parser) line(lineNo int, raw string) error {
	text := TrimComment(raw, p.opts.CommentMarker)
	if text == "" {
		return nil
	}

	if p.state == stateData {
		return p.dataRow(lineNo, text)
	}

	switch {
	case indexFold(text, keywordRelation) >= 0:
		p.doc.Relation = relationName(text)
	case indexFold(text, keywordAttribute) >= 0:
		i := indexFold(text, keywordAttribute)
		rest := strings.TrimLeft(text[i+len(keywordAttribute):], " \t")
		attr, err := parseAttribute(rest, p.opts.CommentMarker)
		if err != nil {
			return &ParseError{Line: lineNo, Text: text, Err: err}
		}
		p.doc.Attributes = append(p.doc.Attributes, attr)
	case indexFold(text, keywordData) >= 0:
		p.logger.Debug("entering data section", "line", lineNo, "attributes", len(p.doc.Attributes))
		p.state = stateData
	default:
		p.logger.Debug("skipping unrecognized header line", "line", lineNo, "text", text)
	}
	return nil
}

func (p *parser) dataRow(lineNo int, text string) error {
	row := Row(SplitFields(text, DefaultSeparator))
	if !p.opts.AllowRaggedRows && len(row) != len(p.doc.Attributes) {
		return &ParseError{
			Line: lineNo,
			Text: text,
			Err:  fmt.Errorf("%w: %d fields, %d attributes", ErrRowSchemaMismatch, len(row), len(p.doc.Attributes)),
		}
	}
	p.doc.Rows = append(p.doc.Rows, row)
	return nil
}

// relationName returns everything after the first space or tab of the
// declaration line.
func relationName(text string) string {
	i := strings.IndexAny(text, " \t")
	if i < 0 {
		return ""
	}
	return strings.Trim(text[i+1:], " \t")
}
