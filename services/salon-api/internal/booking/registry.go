package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry holds one composer per booking session, keyed by an opaque token
// carried in a cookie. Sessions idle past the TTL are evicted lazily on the
// next access.
type Registry struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	composer *Composer
	lastSeen time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Registry{
		ttl:      ttl,
		sessions: make(map[string]*sessionEntry),
	}
}

// Get returns the composer for token, creating a fresh session when the
// token is unknown or expired. The returned token should be set back on the
// client.
func (r *Registry) Get(token string) (string, *Composer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	r.evictLocked(now)

	if entry, ok := r.sessions[token]; ok {
		entry.lastSeen = now
		return token, entry.composer
	}
	token = uuid.NewString()
	entry := &sessionEntry{composer: NewComposer(), lastSeen: now}
	r.sessions[token] = entry
	return token, entry.composer
}

// Drop removes a session, typically after the success step completes.
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

func (r *Registry) evictLocked(now time.Time) {
	for token, entry := range r.sessions {
		if now.Sub(entry.lastSeen) > r.ttl {
			delete(r.sessions, token)
		}
	}
}
