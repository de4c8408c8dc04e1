// Package ids allocates stable unique identifiers for ARIA linking.
//
// The counter is process-wide and monotonic: ids stay unique across
// concurrently mounted components for the lifetime of the process, with no
// teardown required.
package ids

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// DefaultPrefix is used when Next is called with an empty prefix.
const DefaultPrefix = "headless"

var counter uint64

// Next returns a new id guaranteed unique for the lifetime of the process.
// The prefix becomes the leading segment of the id; empty means
// DefaultPrefix.
func Next(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s-%d", prefix, atomic.AddUint64(&counter, 1))
}

// Memo computes an id once per logical identity and returns the same id on
// every subsequent call, so re-evaluation of the owning widget never
// regenerates it. The zero value is ready to use.
type Memo struct {
	// Prefix is consumed on the first Get. Empty means DefaultPrefix.
	Prefix string

	once sync.Once
	id   string
}

// Get returns the memoized id, allocating it on first use.
func (m *Memo) Get() string {
	m.once.Do(func() { m.id = Next(m.Prefix) })
	return m.id
}
