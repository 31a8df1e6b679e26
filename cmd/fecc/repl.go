package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/kestrelsoft/fecc/internal/ast"
	"github.com/kestrelsoft/fecc/internal/automaton"
	"github.com/kestrelsoft/fecc/internal/lex"
	"github.com/kestrelsoft/fecc/internal/lr"
)

// runREPL reads one line of source at a time from an interactive,
// readline-backed prompt and parses each line as a standalone run of the
// scanner/parser pipeline, printing the resulting AST or the failure.
func runREPL(dfa *automaton.DFA, specs []lex.Spec, identClass string, table *lr.Table) error {
	rl, err := readline.NewEx(&readline.Config{Prompt: "fecc> "})
	if err != nil {
		return fmt.Errorf("start readline: %w", err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		reader := lex.NewReader(strings.NewReader(line))
		symtab := lex.NewSymbolTable()
		scanner := lex.NewScanner(reader, dfa, specs, symtab, identClass)

		tree, err := lr.Parse(table, scanner, ast.DefaultBuilder{})
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(tree.String())
	}
}
