// Package token defines the vocabulary shared by the scanner and parser: the
// token classes a spec file can declare, the Token values the scanner
// produces, and the stream interface the parser pulls from.
package token

import "strings"

// Class identifies a lexical rule's kind. Two classes are the same rule iff
// their ID()s match; Human() is for diagnostics only.
type Class interface {
	// ID uniquely identifies the class among all terminals of a grammar.
	ID() string

	// Human is a human-readable name, used in error messages.
	Human() string

	// Equal reports whether the class is the same rule as o.
	Equal(o any) bool
}

type namedClass string

func (c namedClass) ID() string     { return strings.ToLower(string(c)) }
func (c namedClass) Human() string  { return string(c) }
func (c namedClass) Equal(o any) bool {
	other, ok := o.(Class)
	if !ok {
		return false
	}
	return other.ID() == c.ID()
}

// Reserved classes that do not come from a token-spec file: Unknown is
// emitted when no rule matches the next byte (§7), and EOF marks the end of
// the reader's input.
const (
	Unknown = namedClass("unknown")
	EOF     = namedClass("$")
)

// NewClass wraps a spec rule's declared name as a Class, lower-casing it for
// ID purposes while preserving the original casing for Human().
func NewClass(name string) Class {
	return namedClass(name)
}
