package lifecycle

import (
	"context"
	"log"
)

// saga collects compensating actions for steps that already succeeded.
type saga struct {
	op   string
	ref  string
	undo []step
}

type step struct {
	name string
	fn   func(ctx context.Context) error
}

func newSaga(op, ref string) *saga { return &saga{op: op, ref: ref} }

func (s *saga) onRollback(name string, fn func(ctx context.Context) error) {
	s.undo = append(s.undo, step{name: name, fn: fn})
}

// rollback runs compensations in reverse order. It keeps going past failures
// and only logs them; the caller reports the error that triggered it.
func (s *saga) rollback(ctx context.Context, cause error) {
	ctx = context.WithoutCancel(ctx)
	log.Printf("[WARN] %s %s failed, compensating %d step(s): %v", s.op, s.ref, len(s.undo), cause)
	for i := len(s.undo) - 1; i >= 0; i-- {
		st := s.undo[i]
		compensations.WithLabelValues(s.op).Inc()
		if err := st.fn(ctx); err != nil {
			log.Printf("[ERROR] %s %s: compensation %q failed: %v", s.op, s.ref, st.name, err)
		}
	}
}
