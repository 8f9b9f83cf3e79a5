package auth

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// State is the session lifecycle state.
type State string

const (
	StateAnonymous State = "anonymous"
	StateActive    State = "active"
	StateExpired   State = "expired"
)

var ErrEmptyToken = errors.New("auth: empty token")

// Session holds the bearer token attached to every backend request.
// It replaces ambient token storage: the HTTP client receives a Session
// at construction and never touches globals. The token is persisted to a
// file so it survives between runs.
type Session struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time // zero when the token carries no exp claim
	path      string
	onClear   func()
	log       zerolog.Logger
}

// NewSession builds a session backed by the token file at path, loading
// a previously persisted token if one exists.
func NewSession(path string, log zerolog.Logger) *Session {
	s := &Session{
		path: path,
		log:  log.With().Str("component", "session").Logger(),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return s
	}
	s.token = token
	s.expiresAt = tokenExpiry(token)
	s.log.Debug().Str("file", path).Msg("loaded persisted token")
	return s
}

// Login attaches a token to the session and persists it. The token is
// treated as opaque: when it parses as a JWT its exp claim drives the
// expired state, otherwise the session stays active until cleared.
func (s *Session) Login(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expiresAt = tokenExpiry(token)

	if err := s.persist(token); err != nil {
		s.log.Warn().Err(err).Str("file", s.path).Msg("could not persist token")
	}
	return nil
}

// AccessToken returns the current token and whether one is attached.
// Expired tokens are still returned; the backend has the final word.
func (s *Session) AccessToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// State reports the lifecycle state: anonymous before login or after
// Clear, expired once a JWT exp claim has passed, active otherwise.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return StateAnonymous
	}
	if !s.expiresAt.IsZero() && time.Now().After(s.expiresAt) {
		return StateExpired
	}
	return StateActive
}

// Clear wipes the token from memory and disk and fires the OnClear hook.
// The HTTP client calls this on any 401 response.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.expiresAt = time.Time{}
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.log.Warn().Err(err).Str("file", s.path).Msg("could not remove token file")
	}
	fn := s.onClear
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// OnClear registers a callback invoked after the session is cleared.
// The terminal UI uses it to prompt for a new login, the same way the
// original screens navigated back to the login route.
func (s *Session) OnClear(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClear = fn
}

func (s *Session) persist(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

// tokenExpiry extracts the exp claim without verifying the signature.
// Verification belongs to the backend; the client only wants to know
// whether re-authentication is already inevitable.
func tokenExpiry(token string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
