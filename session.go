package beerfest

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSessionTTL = 12 * time.Hour
	SessionCookie     = "beerfest_session"
)

// Session holds per-visitor values. A visitor may have several requests in flight, so
// access is locked.
type Session struct {
	id     string
	mu     sync.Mutex
	values map[string]any

	// lastSeen is guarded by the owning store's lock.
	lastSeen time.Time
}

func (session *Session) Bool(key string) bool {
	value, _ := session.Get(key).(bool)
	return value
}

func (session *Session) Get(key string) any {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.values[key]
}

func (session *Session) ID() string {
	return session.id
}

func (session *Session) Set(key string, value any) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.values[key] = value
}

// Sessions is an in-memory session store keyed by cookie. Sessions idle for longer than
// TTL are evicted.
type Sessions struct {
	Secure bool
	TTL    time.Duration

	mu        sync.Mutex
	lastSweep time.Time
	now       func() time.Time
	sessions  map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{
		TTL:      DefaultSessionTTL,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

func (store *Sessions) Len() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.sessions)
}

// Load returns the request's session, starting a new one and setting the cookie when the
// request has none or an unknown id.
func (store *Sessions) Load(w http.ResponseWriter, r *http.Request) *Session {
	store.mu.Lock()
	defer store.mu.Unlock()

	now := store.clock()
	store.sweep(now)

	if cookie, err := r.Cookie(SessionCookie); err == nil {
		if session, ok := store.sessions[cookie.Value]; ok {
			if now.Sub(session.lastSeen) <= store.ttl() {
				session.lastSeen = now
				return session
			}
			delete(store.sessions, cookie.Value)
		}
	}

	session := &Session{
		id:       uuid.NewString(),
		lastSeen: now,
		values:   make(map[string]any),
	}
	store.sessions[session.id] = session
	http.SetCookie(w, &http.Cookie{
		HttpOnly: true,
		Name:     SessionCookie,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		Secure:   store.Secure,
		Value:    session.id,
	})
	return session
}

func (store *Sessions) Middleware() func(*Strand) error {
	return func(strand *Strand) error {
		strand.Session = store.Load(strand.Response, strand.Request())
		return nil
	}
}

func (store *Sessions) clock() time.Time {
	if store.now == nil {
		return time.Now()
	}
	return store.now()
}

// sweep drops idle sessions. It runs at most once per tenth of the TTL so a busy store
// is not scanned on every request.
func (store *Sessions) sweep(now time.Time) {
	ttl := store.ttl()
	if now.Sub(store.lastSweep) < ttl/10 {
		return
	}
	store.lastSweep = now
	for id, session := range store.sessions {
		if now.Sub(session.lastSeen) > ttl {
			delete(store.sessions, id)
		}
	}
}

func (store *Sessions) ttl() time.Duration {
	if store.TTL <= 0 {
		return DefaultSessionTTL
	}
	return store.TTL
}
