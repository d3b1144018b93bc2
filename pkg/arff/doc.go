// Package arff parses ARFF (Attribute-Relation File Format) files into an
// in-memory Document and supports removing an attribute together with its
// data column.
//
// An ARFF file is line oriented:
//
//	% comment
//	@relation iris
//	@attribute 'sepal length' numeric
//	@attribute class {Iris-setosa,Iris-versicolor}
//	@data
//	5.1,Iris-setosa
//
// Parsing is a single pass over the input with two states: the header, where
// @relation, @attribute and @data declarations are recognized, and the data
// section, where every non-blank line becomes a Row. Field values are kept
// as trimmed strings; callers that need numbers parse them themselves.
//
// Known limitation: keywords are detected with a case-insensitive substring
// search anywhere in a header line, so a header line that merely contains
// "@data" (for example inside a nominal value) ends the header. Lines in
// the data section are never re-classified.
package arff
