package service

import "sync"

// InFlight tracks running actions so a second submission of the same action
// fails fast instead of reaching the remote API twice.
type InFlight struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{running: make(map[string]struct{})}
}

// Acquire claims key. The returned release func must be called on every path.
func (g *InFlight) Acquire(key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.running[key]; busy {
		return nil, ErrInFlight
	}
	g.running[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.running, key)
			g.mu.Unlock()
		})
	}, nil
}

func (g *InFlight) Busy(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.running[key]
	return busy
}

func actionKey(sessionID, action string, ids ...string) string {
	key := sessionID + ":" + action
	for _, id := range ids {
		key += ":" + id
	}
	return key
}
