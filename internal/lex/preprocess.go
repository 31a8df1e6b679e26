package lex

import (
	"bufio"
	"bytes"
	"log"
	"os/exec"
	"strings"

	"github.com/kestrelsoft/fecc/internal/langerr"
)

// Preprocess runs the external C preprocessor over the file at path — `gcc
// -E -P path` — and returns its output with line-marker directives (lines
// beginning with '#', emitted by -P's less-verbose mode as well as plain
// -E) stripped, so the scanner never sees them (§1, §6).
//
// A non-zero gcc exit is logged as a warning rather than treated as fatal:
// gcc still writes whatever it managed to expand to stdout before failing,
// and that partial output is worth handing to the scanner rather than
// discarding. This includes an input path gcc cannot read: that is a
// warning and an empty result. Only a failure to run the command at all
// (gcc missing or not executable) is fatal.
func Preprocess(path string) (string, error) {
	cmd := exec.Command("gcc", "-E", "-P", path)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	err := cmd.Run()
	if _, isExitErr := err.(*exec.ExitError); err != nil && !isExitErr {
		return "", langerr.Preprocessor(cmd.String(), err)
	} else if isExitErr {
		log.Printf("[WARN] preprocessor: %s: %v", cmd.String(), err)
	}

	var filtered strings.Builder
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		filtered.WriteString(line)
		filtered.WriteByte('\n')
	}
	return filtered.String(), nil
}
