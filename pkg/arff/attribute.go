package arff

import (
	"fmt"
	"strings"
)

// parseAttributeName splits the text after the @attribute keyword into the
// attribute name and the datatype text.
//
// A name is quoted when the text contains a single quote that is not
// preceded by a '{'. Spaces inside a quoted name become hyphens. Otherwise
// the name runs up to the first space.
func parseAttributeName(rest, marker string) (string, string, error) {
	rest = strings.ReplaceAll(rest, "\t", " ")

	quote := strings.IndexByte(rest, '\'')
	brace := strings.IndexByte(rest, '{')

	if quote >= 0 && (brace < 0 || quote < brace) {
		end := strings.IndexByte(rest[quote+1:], '\'')
		if end < 0 {
			return "", "", fmt.Errorf("%w: unterminated quoted name", ErrMalformedAttribute)
		}
		end += quote + 1
		name := strings.ReplaceAll(rest[quote+1:end], " ", "-")
		if name == "" {
			return "", "", fmt.Errorf("%w: empty name", ErrMalformedAttribute)
		}
		return name, TrimComment(rest[end+1:], marker), nil
	}

	sp := strings.IndexByte(rest, ' ')
	if sp < 0 {
		return "", "", fmt.Errorf("%w: missing datatype after name", ErrMalformedAttribute)
	}
	if sp == 0 {
		return "", "", fmt.Errorf("%w: empty name", ErrMalformedAttribute)
	}
	return rest[:sp], TrimComment(rest[sp+1:], marker), nil
}

var datatypeKeywords = []struct {
	keyword string
	kind    Kind
}{
	{"real", KindReal},
	{"integer", KindInteger},
	{"numeric", KindNumeric},
	{"string", KindString},
}

// ParseDatatype classifies the datatype part of an @attribute declaration.
// Keywords are matched case-insensitively against the start of s; a '{...}'
// list yields a nominal type.
func ParseDatatype(s string) (Datatype, error) {
	for _, kw := range datatypeKeywords {
		if hasPrefixFold(s, kw.keyword) {
			return Datatype{Kind: kw.kind}, nil
		}
	}

	open := strings.IndexByte(s, '{')
	if open < 0 {
		return Datatype{}, fmt.Errorf("%w: %q", ErrUnsupportedDatatype, s)
	}
	end := strings.IndexByte(s, '}')
	if end < open {
		return Datatype{}, fmt.Errorf("%w: unterminated nominal list %q", ErrMalformedAttribute, s)
	}
	return Nominal(SplitFields(s[open+1:end], DefaultSeparator)...), nil
}

// parseAttribute parses everything after the @attribute keyword.
func parseAttribute(rest, marker string) (Attribute, error) {
	name, typ, err := parseAttributeName(rest, marker)
	if err != nil {
		return Attribute{}, err
	}
	if typ == "" {
		return Attribute{}, fmt.Errorf("%w: missing datatype for %q", ErrMalformedAttribute, name)
	}
	dt, err := ParseDatatype(typ)
	if err != nil {
		return Attribute{}, err
	}
	return Attribute{Name: name, Type: dt}, nil
}
