package ident

import (
	"fmt"
	"sync"
	"time"
)

// Generator produces short opaque references of the form
// <prefix>-<yyyymmddhhmmss>-<counter>, e.g. INQ-20260830142501-0007.
// These are human-quotable references, not primary keys (those are UUIDs).
// The counter resets each second; collisions across process restarts within
// the same second are acceptable for this use.
type Generator struct {
	mu        sync.Mutex
	prefix    string
	lastStamp string
	counter   int
	now       func() time.Time
}

// New creates a generator with the given prefix (e.g. "INQ", "SES").
func New(prefix string) *Generator {
	return &Generator{prefix: prefix, now: time.Now}
}

// Next returns the next reference string.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	stamp := g.now().UTC().Format("20060102150405")
	if stamp != g.lastStamp {
		g.lastStamp = stamp
		g.counter = 0
	}
	g.counter++
	return fmt.Sprintf("%s-%s-%04d", g.prefix, stamp, g.counter)
}
