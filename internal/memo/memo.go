// Package memo provides the keyed check-outcome cache that makes a suite run
// each distinct check at most once per process. The cache is owned by the
// executor layer, never by the probe engine itself: probes stay stateless
// and the replay decision remains visible at the call site.
//
// The store uses sync.Map because keys are written once and read afterwards,
// and independent checks may run concurrently.
package memo

import (
	"strings"
	"sync"

	"github.com/autoprobe/autoprobe/internal/checks"
)

// Key derives the cache identity of a check from its kind and arguments.
// Arguments are joined with NUL so no argument spelling can collide with
// another argument list.
func Key(kind string, args ...string) string {
	return kind + "\x00" + strings.Join(args, "\x00")
}

// Store is a thread-safe check-outcome cache.
type Store struct {
	entries sync.Map // Key: string, Value: *checks.Outcome
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Get returns the cached outcome for key, if any.
func (s *Store) Get(key string) (*checks.Outcome, bool) {
	v, ok := s.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*checks.Outcome), true
}

// Put records the outcome for key, overwriting any previous entry.
func (s *Store) Put(key string, outcome *checks.Outcome) {
	s.entries.Store(key, outcome)
}
