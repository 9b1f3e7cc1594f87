package idgen

import (
	"strconv"
	"sync"
	"time"
)

// Generator issues record identifiers as millisecond-timestamp strings.
// Two calls inside the same millisecond get consecutive values, so IDs
// issued by one generator are always unique and ordered.
type Generator struct {
	mu   sync.Mutex
	last int64
}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now

	return strconv.FormatInt(now, 10)
}
