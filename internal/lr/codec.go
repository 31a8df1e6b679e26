package lr

import (
	"fmt"

	"github.com/kestrelsoft/fecc/internal/bincodec"
)

// MarshalBinary encodes t for internal/cache's on-disk table cache (via
// github.com/dekarrin/rezi). Productions are re-derived from the grammar
// file when a cache entry is loaded, so only the ACTION/GOTO contents and start state
// are persisted here; internal/cache is responsible for keying the cache
// entry on a hash of the grammar source so a stale Productions list is
// never silently reused.
func (t *Table) MarshalBinary() ([]byte, error) {
	w := bincodec.NewWriter()
	w.Int(t.StartState).Int(len(t.Action))

	for i := range t.Action {
		w.Int(len(t.Action[i]))
		for sym, act := range t.Action[i] {
			w.String(sym).Int(int(act.Kind)).Int(act.Target)
		}
		w.Int(len(t.Goto[i]))
		for sym, target := range t.Goto[i] {
			w.String(sym).Int(target)
		}
	}
	return w.Bytes(), nil
}

// UnmarshalBinary decodes a Table encoded by MarshalBinary. Callers must
// set Productions themselves to the augmented production list (S' -> S at
// index 0) of the grammar the cache entry was keyed on.
func (t *Table) UnmarshalBinary(data []byte) error {
	r := bincodec.NewReader(data)
	t.StartState = r.Int()
	n := r.Int()
	t.Action = make([]map[string]Action, n)
	t.Goto = make([]map[string]int, n)

	for i := 0; i < n; i++ {
		actionCount := r.Int()
		t.Action[i] = make(map[string]Action, actionCount)
		for j := 0; j < actionCount; j++ {
			sym := r.String()
			kind := r.Int()
			target := r.Int()
			t.Action[i][sym] = Action{Kind: ActionKind(kind), Target: target}
		}

		gotoCount := r.Int()
		t.Goto[i] = make(map[string]int, gotoCount)
		for j := 0; j < gotoCount; j++ {
			sym := r.String()
			t.Goto[i][sym] = r.Int()
		}
	}

	if r.Err() != nil {
		return fmt.Errorf("decode LR table: %w", r.Err())
	}
	return nil
}
