package token

import "fmt"

// Token is a lexeme read from source text together with the class it was
// recognized as and enough positional information for error reporting.
type Token interface {
	// Class is the lexical rule that recognized this token.
	Class() Class

	// Lexeme is the matched text, exactly as it appeared in the source.
	Lexeme() string

	// Line is the 1-indexed line the token starts on.
	Line() int

	// LinePos is the 1-indexed column the token starts on.
	LinePos() int

	// SymbolID is the symbol-table id assigned when this token was interned
	// as an identifier, or -1 if it was not interned.
	SymbolID() int

	String() string
}

type simpleToken struct {
	class    Class
	lexeme   string
	line     int
	linePos  int
	symbolID int
}

// New builds a Token carrying no symbol-table id.
func New(class Class, lexeme string, line, linePos int) Token {
	return simpleToken{class: class, lexeme: lexeme, line: line, linePos: linePos, symbolID: -1}
}

// NewInterned builds a Token carrying the symbol-table id assigned to its
// lexeme.
func NewInterned(class Class, lexeme string, line, linePos, symbolID int) Token {
	return simpleToken{class: class, lexeme: lexeme, line: line, linePos: linePos, symbolID: symbolID}
}

func (t simpleToken) Class() Class    { return t.class }
func (t simpleToken) Lexeme() string  { return t.lexeme }
func (t simpleToken) Line() int       { return t.line }
func (t simpleToken) LinePos() int    { return t.linePos }
func (t simpleToken) SymbolID() int   { return t.symbolID }

func (t simpleToken) String() string {
	return fmt.Sprintf("%s %q @%d:%d", t.class.Human(), t.lexeme, t.line, t.linePos)
}
