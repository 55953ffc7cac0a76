package postkit

import (
	"sync"
	"time"
)

// Session holds one author's editing state: the document buffer and the
// metadata record. The pipeline never sees a Session; it receives values
// copied out of one, which is what keeps concurrent sessions isolated.
type Session struct {
	mu     sync.Mutex
	buffer string
	meta   Metadata
}

// NewSession creates a session with an empty buffer and default metadata.
func NewSession(now time.Time) *Session {
	return &Session{meta: NewMetadata(now)}
}

// Buffer returns the current document buffer.
func (s *Session) Buffer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer
}

// SetBuffer replaces the document buffer.
func (s *Session) SetBuffer(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer = content
}

// Metadata returns a copy of the metadata record. Mutating the copy does
// not touch the session.
func (s *Session) Metadata() Metadata {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta.clone()
}

// UpdateMetadata applies fn to the session's metadata record under the
// session lock. An error from fn leaves the record unchanged.
func (s *Session) UpdateMetadata(fn func(*Metadata) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.meta.clone()
	if err := fn(&draft); err != nil {
		return err
	}
	s.meta = draft
	return nil
}

// SessionStore keeps per-session state keyed by session id. Each session's
// buffer and metadata are isolated; nothing is shared across sessions.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Get returns the session for id, creating it on first use.
func (st *SessionStore) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		s = NewSession(st.now())
		st.sessions[id] = s
	}
	return s
}

// Lookup returns the session for id, or ErrSessionNotFound.
func (st *SessionStore) Lookup(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Drop removes the session for id, if present.
func (st *SessionStore) Drop(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
