// Package cache persists a compiled DFA/LR-table pair to disk, keyed by a
// content hash of the token specs and grammar text that produced them, so a
// repeat run over unchanged inputs can skip table construction entirely.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dekarrin/rezi"

	"github.com/kestrelsoft/fecc/internal/automaton"
	"github.com/kestrelsoft/fecc/internal/grammar"
	"github.com/kestrelsoft/fecc/internal/lr"
)

// Entry is the pair of compiled tables a cache hit restores.
type Entry struct {
	DFA   automaton.DFA
	Table lr.Table
}

// Key derives the cache key for a given specs file and grammar file
// content: a hex SHA-256 digest of both, joined by a zero byte, so any byte
// of either input invalidates the cache.
func Key(specSource, grammarSource []byte) string {
	h := sha256.New()
	h.Write(specSource)
	h.Write([]byte{0})
	h.Write(grammarSource)
	return hex.EncodeToString(h.Sum(nil))
}

// Dir is the default cache directory, relative to the caller's working
// directory.
const Dir = ".fecc-cache"

func path(dir, key string) string {
	return filepath.Join(dir, key+".bin")
}

// Load reads and decodes the cache entry for key from dir. prods is the
// augmented production list of the just-parsed grammar, numbered as
// lr.Build numbers it (S' -> S at index 0); the LR table's binary form
// omits productions — they're cheap to re-derive and doing so means a stale
// copy can never silently survive a cache hit, see internal/lr's
// MarshalBinary. Load returns ok=false (and no error) on a plain cache
// miss; a non-nil error means the file existed but could not be read or
// decoded.
func Load(dir, key string, prods []grammar.Production) (Entry, bool, error) {
	data, err := os.ReadFile(path(dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, false, nil
		}
		return Entry{}, false, err
	}

	var e Entry
	n, err := rezi.DecBinary(data, &e.DFA)
	if err != nil {
		return Entry{}, false, fmt.Errorf("decode cached DFA: %w", err)
	}
	rest := data[n:]

	n, err = rezi.DecBinary(rest, &e.Table)
	if err != nil {
		return Entry{}, false, fmt.Errorf("decode cached LR table: %w", err)
	}
	if n != len(rest) {
		return Entry{}, false, fmt.Errorf("cache entry %s: %d trailing bytes after LR table", key, len(rest)-n)
	}
	e.Table.Productions = prods

	return e, true, nil
}

// Store encodes and writes e under key in dir, creating dir if needed.
func Store(dir, key string, e Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data := append(rezi.EncBinary(e.DFA), rezi.EncBinary(&e.Table)...)
	return os.WriteFile(path(dir, key), data, 0o644)
}
