package store

const tokenKey = "mm_token"

// SessionStore holds the current bearer token. It does no validation and no
// expiry tracking: the first request that comes back 401 decides validity.
type SessionStore struct {
	kv KV
}

// NewSessionStore creates a session store backed by the given KV
func NewSessionStore(kv KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Get returns the stored token, if any
func (s *SessionStore) Get() (string, bool) {
	token, ok := s.kv.Get(tokenKey)
	if token == "" {
		return "", false
	}
	return token, ok
}

// Set overwrites any existing token
func (s *SessionStore) Set(token string) {
	s.kv.Set(tokenKey, token)
}

// Clear removes the token
func (s *SessionStore) Clear() {
	s.kv.Delete(tokenKey)
}
