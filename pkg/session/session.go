// Package session provides cookie-backed HTTP sessions.
//
// The cookie carries a signed token (HS256, SECRET_KEY) wrapping a random
// session ID; the session data itself lives server-side in the cache layer
// (Redis in production, memory in development and tests). A tampered or
// expired cookie simply yields a fresh anonymous session.
//
// Usage (middleware):
//
//	r.Use(session.Middleware(session.DefaultOptions()))
//
// Usage (handler):
//
//	sess := session.FromCtx(r)
//	sess.SetUserID(user.ID)
//	sess.Flash(session.LevelSuccess, "Registro exitoso.")
//	sess.Save(w)
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/josbet/floreria/pkg/auth"
	"github.com/josbet/floreria/pkg/cache"
)

// Flash levels drive presentation only, never behaviour.
const (
	LevelSuccess = "success"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelDanger  = "danger"
)

// Flash is a one-shot categorized notice shown on the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

const (
	userIDKey  = "user_id"
	flashesKey = "_flashes"
)

// Options configures session behaviour.
type Options struct {
	CookieName string
	TTL        time.Duration
	HTTPOnly   bool
	Secure     bool
	SameSite   http.SameSite
	Path       string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		CookieName: "floreria_session",
		TTL:        2 * time.Hour,
		HTTPOnly:   true,
		Secure:     false, // set true behind TLS
		SameSite:   http.SameSiteLaxMode,
		Path:       "/",
	}
}

type ctxKey struct{}

// Session is an in-request session handle.
type Session struct {
	id      string
	data    map[string]interface{}
	opts    Options
	changed bool
}

// newID generates a cryptographically random 32-byte hex session ID.
func newID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func cacheKey(id string) string { return "floreria:session:" + id }

func load(id string) map[string]interface{} {
	var data map[string]interface{}
	if cache.Get(cacheKey(id), &data) {
		return data
	}
	return map[string]interface{}{}
}

// Set stores a value under key in the session.
func (s *Session) Set(key string, value interface{}) {
	s.data[key] = value
	s.changed = true
}

// Get retrieves a value from the session.
func (s *Session) Get(key string) (interface{}, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Delete removes a key from the session.
func (s *Session) Delete(key string) {
	delete(s.data, key)
	s.changed = true
}

// SetUserID marks the session as belonging to the given user.
func (s *Session) SetUserID(id uint) {
	s.Set(userIDKey, id)
}

// UserID returns the signed-in user's id, or false for anonymous visitors.
func (s *Session) UserID() (uint, bool) {
	v, ok := s.data[userIDKey]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64: // JSON numbers unmarshal as float64
		return uint(n), true
	case int:
		return uint(n), true
	case uint:
		return n, true
	}
	return 0, false
}

// ClearUserID signs the visitor out without discarding the rest of the
// session (pending flashes survive the logout redirect).
func (s *Session) ClearUserID() {
	s.Delete(userIDKey)
}

// Flash queues a one-shot categorized message for the next rendered page.
func (s *Session) Flash(level, message string) {
	existing := s.flashes()
	s.Set(flashesKey, append(existing, Flash{Level: level, Message: message}))
}

// PopFlashes returns all queued flashes and clears them.
func (s *Session) PopFlashes() []Flash {
	out := s.flashes()
	if len(out) > 0 {
		s.Delete(flashesKey)
	}
	return out
}

func (s *Session) flashes() []Flash {
	v, ok := s.data[flashesKey]
	if !ok {
		return nil
	}
	// Data that went through the cache comes back as []interface{};
	// a JSON round-trip normalises both cases.
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out []Flash
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Invalidate destroys all session state.
func (s *Session) Invalidate() {
	s.data = map[string]interface{}{}
	s.changed = true
}

// ID returns the session ID.
func (s *Session) ID() string { return s.id }

// Save persists the session to the cache and writes the signed cookie.
// Must be called before the response body is written.
func (s *Session) Save(w http.ResponseWriter) error {
	if !s.changed {
		return nil
	}

	if err := cache.Set(cacheKey(s.id), s.data, s.opts.TTL); err != nil {
		return fmt.Errorf("session: save: %w", err)
	}

	token, err := auth.SignSession(s.id, s.opts.TTL)
	if err != nil {
		return fmt.Errorf("session: sign: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     s.opts.Path,
		MaxAge:   int(s.opts.TTL.Seconds()),
		HttpOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
		SameSite: s.opts.SameSite,
	})

	s.changed = false
	return nil
}

// Middleware loads (or creates) the session for every request and injects it
// into the request context. Handlers call session.FromCtx(r) to access it.
func Middleware(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := &Session{opts: opts}

			if cookie, err := r.Cookie(opts.CookieName); err == nil {
				if sid, err := auth.VerifySession(cookie.Value); err == nil {
					sess.id = sid
					sess.data = load(sid)
				}
			}
			if sess.id == "" {
				sess.id = newID()
				sess.data = map[string]interface{}{}
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromCtx retrieves the session from the request context.
// Returns an empty (unsaved) session if none is present.
func FromCtx(r *http.Request) *Session {
	if s, ok := r.Context().Value(ctxKey{}).(*Session); ok {
		return s
	}
	return &Session{id: newID(), data: map[string]interface{}{}, opts: DefaultOptions()}
}
