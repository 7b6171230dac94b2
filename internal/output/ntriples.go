// Copyright Kevin Haller, 2026. All rights reserved.

package output

import (
	"fmt"
	"io"
	"strings"
)

// escapeIRI renders a URI as an N-Triples IRI reference. Characters that are
// forbidden inside IRIREF (control characters, space, angle brackets, quote,
// braces, pipe, caret, backtick, backslash) are written as \uXXXX escapes so
// the emitted line is always syntactically valid.
func escapeIRI(uri string) string {
	var b strings.Builder
	b.Grow(len(uri) + 2)
	b.WriteByte('<')
	for _, r := range uri {
		switch {
		case r <= 0x20, r == '<', r == '>', r == '"', r == '{', r == '}',
			r == '|', r == '^', r == '`', r == '\\':
			fmt.Fprintf(&b, "\\u%04X", r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('>')
	return b.String()
}

// TripleWriter emits statements as N-Triples lines, one newline-terminated
// triple per statement.
type TripleWriter struct {
	w io.Writer
}

// NewTripleWriter returns a TripleWriter targeting w.
func NewTripleWriter(w io.Writer) *TripleWriter {
	return &TripleWriter{w: w}
}

// WriteTriple writes one statement. All three terms are URIs and are emitted
// as IRI references.
func (t *TripleWriter) WriteTriple(subject, predicate, object string) error {
	_, err := fmt.Fprintf(t.w, "%s %s %s .\n",
		escapeIRI(subject), escapeIRI(predicate), escapeIRI(object))
	if err != nil {
		return fmt.Errorf("writing triple: %w", err)
	}
	return nil
}
