package lex

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kestrelsoft/fecc/internal/langerr"
)

// Spec is one compiled rule from a token-spec file: a class name, the
// source regex pattern, whether matches of this class are discarded rather
// than emitted, and the priority used to break ties when several rules
// accept the same input (§6; smaller number wins, per §4.3).
type Spec struct {
	Name     string
	Pattern  string
	Ignore   bool
	Priority int
}

// specLine splits "NAME REGEX IGNORE PRIORITY" where REGEX may itself
// contain internal whitespace: name and the trailing ignore/priority pair
// are single tokens, and everything between them — with its original
// spacing — is the pattern.
var specLine = regexp.MustCompile(`^(\S+)\s+(.*\S)\s+(\S+)\s+(\S+)$`)

var boolWords = map[string]bool{
	"true": true, "True": true, "1": true,
	"false": false, "False": false, "0": false,
}

// LoadSpecs reads a token-spec file from r, per §6: one rule per line,
// `#`-prefixed and blank lines ignored, fields NAME REGEX IGNORE PRIORITY.
// The returned specs are in file order; callers needing tag-priority order
// must sort separately (see SortByPriority).
func LoadSpecs(r io.Reader) ([]Spec, error) {
	var specs []Spec
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := specLine.FindStringSubmatch(line)
		if m == nil {
			return nil, langerr.SpecFormat(lineNo, "expected NAME REGEX IGNORE PRIORITY")
		}
		name, pattern, ignoreWord, prioWord := m[1], m[2], m[3], m[4]

		ignore, ok := boolWords[ignoreWord]
		if !ok {
			return nil, langerr.SpecFormat(lineNo, "IGNORE must be one of true|false|1|0|True|False")
		}

		prio, err := strconv.Atoi(prioWord)
		if err != nil {
			return nil, langerr.SpecFormat(lineNo, "PRIORITY must be a signed decimal integer")
		}

		specs = append(specs, Spec{Name: name, Pattern: pattern, Ignore: ignore, Priority: prio})
	}
	if err := sc.Err(); err != nil {
		return nil, langerr.SpecFormat(lineNo, err.Error())
	}
	return specs, nil
}

// SortByPriority stable-sorts specs by ascending Priority, so that the
// resulting index can be used directly as the NFA tag array: smaller tag =
// higher priority, and equal priorities keep their file order (§4.3).
func SortByPriority(specs []Spec) {
	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].Priority < specs[j].Priority
	})
}
