// Package langerr defines the typed error kinds raised by the front-end
// pipeline, as catalogued in §7 of the specification: each kind is fatal
// unless noted otherwise. Each error's Error() is a ready-to-print one-line
// diagnostic that names the data its kind reports (state, symbol, position);
// KindOf exposes the kind, and only Preprocessor wraps an underlying error.
package langerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies which row of the error table an error belongs to.
type Kind int

const (
	KindRegexSyntax Kind = iota
	KindEmptyCharClass
	KindSpecFormat
	KindGrammarFormat
	KindGrammarSymbol
	KindGrammarConflict
	KindParserInternal
	KindSyntaxError
	KindPreprocessor
)

func (k Kind) String() string {
	switch k {
	case KindRegexSyntax:
		return "RegexSyntax"
	case KindEmptyCharClass:
		return "EmptyCharClass"
	case KindSpecFormat:
		return "SpecFormat"
	case KindGrammarFormat:
		return "GrammarFormat"
	case KindGrammarSymbol:
		return "GrammarSymbol"
	case KindGrammarConflict:
		return "GrammarConflict"
	case KindParserInternal:
		return "ParserInternal"
	case KindSyntaxError:
		return "SyntaxError"
	case KindPreprocessor:
		return "Preprocessor"
	default:
		return "Unknown"
	}
}

// langError is the concrete type behind every error this package returns.
type langError struct {
	kind Kind
	msg  string
	wrap error
}

func (e *langError) Error() string {
	return e.msg
}

func (e *langError) Unwrap() error {
	return e.wrap
}

// KindOf returns the error-table row that err belongs to. Returns false if
// neither err nor anything it wraps came from this package.
func KindOf(err error) (Kind, bool) {
	var le *langError
	if !errors.As(err, &le) {
		return 0, false
	}
	return le.kind, true
}

// RegexSyntax reports a malformed regular expression at the given byte
// offset into the pattern text.
func RegexSyntax(pattern string, pos int, reason string) error {
	return &langError{
		kind: KindRegexSyntax,
		msg:  fmt.Sprintf("regex syntax error at offset %d in %q: %s", pos, pattern, reason),
	}
}

// EmptyCharClass reports a character class that expands to zero bytes.
func EmptyCharClass(pattern string) error {
	return &langError{
		kind: KindEmptyCharClass,
		msg:  fmt.Sprintf("character class in %q matches no bytes", pattern),
	}
}

// SpecFormat reports a malformed line in a token-spec file.
func SpecFormat(line int, reason string) error {
	return &langError{
		kind: KindSpecFormat,
		msg:  fmt.Sprintf("token spec line %d: %s", line, reason),
	}
}

// GrammarFormat reports a malformed grammar file.
func GrammarFormat(line int, reason string) error {
	return &langError{
		kind: KindGrammarFormat,
		msg:  fmt.Sprintf("grammar file line %d: %s", line, reason),
	}
}

// GrammarSymbol reports an undeclared symbol, an undeclared start symbol, or
// a duplicate production.
func GrammarSymbol(reason string) error {
	return &langError{
		kind: KindGrammarSymbol,
		msg:  fmt.Sprintf("grammar symbol error: %s", reason),
	}
}

// GrammarConflict reports a shift/reduce or reduce/reduce conflict found
// while constructing the LR(1) tables, naming the offending state and
// terminal.
func GrammarConflict(state int, terminal string, reason string) error {
	return &langError{
		kind: KindGrammarConflict,
		msg:  fmt.Sprintf("conflict in state %d on terminal %q: %s", state, terminal, reason),
	}
}

// ParserInternal reports a missing GOTO entry after a reduce — a
// table-generation bug, not a problem with the input.
func ParserInternal(reason string) error {
	return &langError{
		kind: KindParserInternal,
		msg:  fmt.Sprintf("internal parser error: %s", reason),
	}
}

// SyntaxErrorAt reports that no ACTION cell exists for the current token.
// expected lists the terminal names that would have been accepted in the
// state the parser was in, rendered by quotedTerminalList.
func SyntaxErrorAt(tokenKind, lexeme string, line, col int, expected []string) error {
	msg := fmt.Sprintf("%d:%d: syntax error: unexpected %s %q", line, col, tokenKind, lexeme)
	if len(expected) > 0 {
		msg += fmt.Sprintf(" (expected one of: %s)", quotedTerminalList(expected))
	}
	return &langError{
		kind: KindSyntaxError,
		msg:  msg,
	}
}

// quotedTerminalList renders the ACTION row's acceptable terminal names as a
// backtick-quoted, comma-separated list for a one-line diagnostic — e.g.
// `+`, `id` — rather than prose joined with "and", since a state can offer
// far more than two or three terminals and a grammar author scanning the
// message wants each name to stand out, not read as a sentence.
func quotedTerminalList(terminals []string) string {
	quoted := make([]string, len(terminals))
	for i, t := range terminals {
		quoted[i] = "`" + t + "`"
	}
	return strings.Join(quoted, ", ")
}

// Preprocessor reports a failure running the external C preprocessor.
func Preprocessor(cmd string, wrapped error) error {
	return &langError{
		kind: KindPreprocessor,
		msg:  fmt.Sprintf("preprocessor command %q failed: %v", cmd, wrapped),
		wrap: wrapped,
	}
}
