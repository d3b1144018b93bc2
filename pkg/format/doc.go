// Package format renders parsed ARFF documents for people and scripts.
//
// It only reads an *arff.Document; nothing here is needed to parse or
// modify one. Tables are drawn with go-pretty in either box-drawing or
// Markdown form, and JSON output mirrors the document structure.
package format
