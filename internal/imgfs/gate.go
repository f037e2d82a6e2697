package imgfs

import "sync"

// gate is the single coarse mutex that serializes every Store operation
// (spec §4.6). It intentionally covers decode/resize work performed inside
// Insert/Read's critical section, but nothing in internal/httpapi — HTTP
// parsing and reply serialization happen entirely outside a gate.do call.
//
// A reader/writer split or a single-owner-goroutine/channel redesign (spec
// §9 "shared memory vs. message passing") would also satisfy §3.2's
// invariants; a plain mutex is the simplicity-first choice spec §4.6
// explicitly sanctions.
type gate struct {
	mu sync.Mutex
}

// do runs fn with the gate held.
func (g *gate) do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
