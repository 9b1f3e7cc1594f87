package serial

import "sync"

// Guard hands out per-key critical sections. Every ledger mutation is a
// read-modify-write of one whole document, so overlapping mutations on the
// same key can silently drop the earlier write; running them through the
// guard serializes them instead.
type Guard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGuard() *Guard {
	return &Guard{locks: make(map[string]*sync.Mutex)}
}

// Do runs fn while holding the lock for key. Operations on distinct keys
// proceed independently.
func (g *Guard) Do(key string, fn func() error) error {
	l := g.lockFor(key)
	l.Lock()
	defer l.Unlock()
	return fn()
}

func (g *Guard) lockFor(key string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	l, ok := g.locks[key]
	if !ok {
		l = &sync.Mutex{}
		g.locks[key] = l
	}
	return l
}
