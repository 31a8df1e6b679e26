/*
Fecc builds a scanner and a bottom-up parser from a user-supplied lexical
specification and context-free grammar, then drives them over an input
source file to produce an abstract syntax tree.

Usage:

	fecc --specs FILE --grammar FILE [flags] SOURCE

The flags are:

	-v, --version
		Give the current version of fecc and then exit.

	-s, --specs FILE
		The token-spec file: one lexical rule per line.

	-g, --grammar FILE
		The grammar file: terminals, nonterminals, start symbol, productions.

	-p, --pp
		Run the input source through "gcc -E -P" before scanning it.

	-c, --config FILE
		Load flag defaults from a TOML config file.

	--dump-tables
		Print the compiled ACTION/GOTO tables and exit without parsing.

	--dump-tree
		Print the resulting AST after a successful parse.

	-r, --repl
		Start an interactive prompt instead of parsing a file; each line
		entered is scanned and parsed as a standalone run.

Exit code 0 on success, non-zero on any failure, with a message on stderr.
*/
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/kestrelsoft/fecc/internal/ast"
	"github.com/kestrelsoft/fecc/internal/automaton"
	"github.com/kestrelsoft/fecc/internal/cache"
	"github.com/kestrelsoft/fecc/internal/grammar"
	"github.com/kestrelsoft/fecc/internal/lex"
	"github.com/kestrelsoft/fecc/internal/lr"
	"github.com/kestrelsoft/fecc/internal/version"
)

const (
	// ExitSuccess indicates a successful run.
	ExitSuccess = iota

	// ExitInitError indicates a failure building the scanner or parser
	// tables from the specs/grammar files.
	ExitInitError

	// ExitRunError indicates a failure scanning or parsing the input
	// source.
	ExitRunError
)

var (
	returnCode = ExitSuccess

	flagVersion   = pflag.BoolP("version", "v", false, "Gives the version info")
	flagSpecs     = pflag.StringP("specs", "s", "", "Path to the token-spec file")
	flagGrammar   = pflag.StringP("grammar", "g", "", "Path to the grammar file")
	flagPreproc   = pflag.BoolP("pp", "p", false, "Run the input through the external C preprocessor first")
	flagConfig    = pflag.StringP("config", "c", "", "Path to a TOML config file of flag defaults")
	flagDumpTable = pflag.Bool("dump-tables", false, "Print the compiled ACTION/GOTO tables and exit")
	flagDumpTree  = pflag.Bool("dump-tree", false, "Print the resulting AST after a successful parse")
	flagREPL      = pflag.BoolP("repl", "r", false, "Start an interactive read-scan-parse prompt")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		fail(ExitInitError, "load config: %v", err)
		return
	}
	if *flagSpecs == "" {
		*flagSpecs = cfg.Specs
	}
	if *flagGrammar == "" {
		*flagGrammar = cfg.Grammar
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = cache.Dir
	}

	if *flagSpecs == "" || *flagGrammar == "" {
		fail(ExitInitError, "both --specs and --grammar are required")
		return
	}

	runID := uuid.New()
	log.SetPrefix(fmt.Sprintf("fecc[%s] ", runID.String()[:8]))

	specSource, err := os.ReadFile(*flagSpecs)
	if err != nil {
		fail(ExitInitError, "read specs: %v", err)
		return
	}
	grammarSource, err := os.ReadFile(*flagGrammar)
	if err != nil {
		fail(ExitInitError, "read grammar: %v", err)
		return
	}

	specs, err := lex.LoadSpecs(bytes.NewReader(specSource))
	if err != nil {
		fail(ExitInitError, "%v", err)
		return
	}
	lex.SortByPriority(specs)

	g, err := grammar.Load(bytes.NewReader(grammarSource))
	if err != nil {
		fail(ExitInitError, "%v", err)
		return
	}

	key := cache.Key(specSource, grammarSource)
	// cached reduce targets index the augmented production list lr.Build
	// numbers, with S' -> S at index 0.
	augProds := append([]grammar.Production{{LHS: grammar.AugmentedStart, RHS: []string{g.Start}}}, g.Productions...)
	entry, hit, err := cache.Load(cfg.CacheDir, key, augProds)
	if err != nil {
		log.Printf("cache load failed, rebuilding: %v", err)
	}

	var dfa automaton.DFA
	var table *lr.Table
	if hit {
		log.Printf("loaded tables from cache")
		dfa = entry.DFA
		table = &entry.Table
	} else {
		log.Printf("compiling tables (cache miss)")

		dfa, err = lex.BuildDFA(specs)
		if err != nil {
			fail(ExitInitError, "%v", err)
			return
		}

		table, err = lr.Build(g)
		if err != nil {
			fail(ExitInitError, "%v", err)
			return
		}

		if err := cache.Store(cfg.CacheDir, key, cache.Entry{DFA: dfa, Table: *table}); err != nil {
			log.Printf("cache store failed (continuing): %v", err)
		}
	}

	if *flagDumpTable {
		fmt.Println(table.String())
		return
	}

	if *flagREPL {
		if err := runREPL(&dfa, specs, cfg.IdentClass, table); err != nil {
			fail(ExitRunError, "%v", err)
		}
		return
	}

	args := pflag.Args()
	if len(args) != 1 {
		fail(ExitInitError, "expected exactly one input source file")
		return
	}
	sourcePath := args[0]

	var sourceText string
	if *flagPreproc {
		sourceText, err = lex.Preprocess(sourcePath)
		if err != nil {
			fail(ExitRunError, "%v", err)
			return
		}
	} else {
		raw, err := os.ReadFile(sourcePath)
		if err != nil {
			fail(ExitRunError, "read source: %v", err)
			return
		}
		sourceText = string(raw)
	}

	reader := lex.NewReader(bytes.NewReader([]byte(sourceText)))
	symtab := lex.NewSymbolTable()
	scanner := lex.NewScanner(reader, &dfa, specs, symtab, cfg.IdentClass)

	tree, err := lr.Parse(table, scanner, ast.DefaultBuilder{})
	if err != nil {
		fail(ExitRunError, "%v", err)
		return
	}

	if *flagDumpTree {
		fmt.Println(tree.String())
	}
}

func fail(code int, format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fecc: %s\n", fmt.Sprintf(format, args...))
	returnCode = code
}
