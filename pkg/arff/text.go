package arff

import "strings"

const (
	// DefaultCommentMarker starts a comment that runs to the end of the line.
	DefaultCommentMarker = "%"
	// DefaultSeparator separates data fields and nominal values.
	DefaultSeparator = ","
)

// TrimComment cuts line at the first occurrence of marker and trims
// surrounding spaces and tabs from what is left. An empty marker means
// DefaultCommentMarker.
func TrimComment(line, marker string) string {
	if marker == "" {
		marker = DefaultCommentMarker
	}
	if i := strings.Index(line, marker); i >= 0 {
		line = line[:i]
	}
	return strings.Trim(line, " \t")
}

// SplitFields splits s on sep and trims spaces (not tabs) around each field.
// Empty fields are kept, including a trailing one after a final separator.
// An empty sep means DefaultSeparator.
func SplitFields(s, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	fields := strings.Split(s, sep)
	for i, f := range fields {
		fields[i] = strings.Trim(f, " ")
	}
	return fields
}

// indexFold returns the index of the first case-insensitive occurrence of
// the ASCII keyword kw in s, or -1.
func indexFold(s, kw string) int {
	n := len(kw)
	for i := 0; i+n <= len(s); i++ {
		if strings.EqualFold(s[i:i+n], kw) {
			return i
		}
	}
	return -1
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
