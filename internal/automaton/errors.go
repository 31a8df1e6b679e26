package automaton

import (
	"fmt"

	"github.com/kestrelsoft/fecc/internal/langerr"
	"github.com/kestrelsoft/fecc/internal/regex"
)

// emptyClassErr builds a langerr.EmptyCharClass error describing the
// character class node that expanded to zero bytes.
func emptyClassErr(ast *regex.Node) error {
	return langerr.EmptyCharClass(fmt.Sprintf("%v", ast.Class))
}
