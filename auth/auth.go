// Package auth implements cookie sessions for the student-management app.
// A session is a sealed snapshot of the user taken at login time: later
// edits to the user record do not propagate into live sessions.
package auth

import (
	"context"
	"crypto/sha256"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/securecookie"
)

type ctxKey string

const (
	sessionCookieName = "session"
	sessionCtxKey     = ctxKey("session")
	sessionTTL        = 24 * time.Hour
)

// Session is the authenticated identity carried by the cookie.
type Session struct {
	ID    uint
	Name  string
	Email string
	Role  string
}

var (
	codec     *securecookie.SecureCookie
	codecOnce sync.Once
)

// Secret returns SESSION_SECRET or a default dev value.
func Secret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "devsessionsecret"
}

func sessionCodec() *securecookie.SecureCookie {
	codecOnce.Do(func() {
		// Derive fixed-size hash and block keys from the configured secret
		// so the cookie is both signed and encrypted.
		hashKey := sha256.Sum256([]byte(Secret()))
		blockKey := sha256.Sum256([]byte("block:" + Secret()))
		codec = securecookie.New(hashKey[:], blockKey[:])
		codec.MaxAge(int(sessionTTL.Seconds()))
	})
	return codec
}

// ResetCodecForTests forces the codec to be rebuilt from the current
// environment. Intended for tests that change SESSION_SECRET.
func ResetCodecForTests() {
	codec = nil
	codecOnce = sync.Once{}
}

// CreateSession seals the snapshot into the session cookie.
func CreateSession(w http.ResponseWriter, s Session) error {
	encoded, err := sessionCodec().Encode(sessionCookieName, s)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionTTL),
	})
	return nil
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie and returns the snapshot. A malformed,
// expired, or tampered cookie reads as "no session", never as an error.
func ParseSession(r *http.Request) (Session, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return Session{}, false
	}
	var s Session
	if err := sessionCodec().Decode(sessionCookieName, c.Value, &s); err != nil {
		return Session{}, false
	}
	if s.ID == 0 {
		return Session{}, false
	}
	return s, true
}

// WithSession stores the snapshot in ctx.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey, s)
}

// SessionFromContext extracts the snapshot placed by Middleware.
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionCtxKey).(Session)
	return s, ok && s.ID != 0
}

// Middleware attaches the session to the request context if present.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s, ok := ParseSession(r); ok {
			r = r.WithContext(WithSession(r.Context(), s))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole guards a role dashboard. A session with a different role is
// "not authorized for this view", not an error: it goes home, keeping its
// session, exactly like an anonymous visitor would.
func RequireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := SessionFromContext(r.Context())
		if !ok || s.Role != role {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
