package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func sealSession(t *testing.T, s Session) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	if err := CreateSession(w, s); err != nil {
		t.Fatalf("create session: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected one cookie, got %d", len(cookies))
	}
	return cookies[0]
}

func TestSessionRoundTrip(t *testing.T) {
	c := sealSession(t, Session{ID: 7, Name: "Ana", Email: "ana@x.com", Role: "student"})
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	s, ok := ParseSession(r)
	if !ok {
		t.Fatalf("expected session to parse")
	}
	if s.ID != 7 || s.Role != "student" || s.Email != "ana@x.com" {
		t.Fatalf("unexpected snapshot %#v", s)
	}
}

func TestParseSessionRejectsTampering(t *testing.T) {
	c := sealSession(t, Session{ID: 7, Name: "Ana", Email: "ana@x.com", Role: "student"})
	c.Value = c.Value[:len(c.Value)-2] + "xx"
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	if _, ok := ParseSession(r); ok {
		t.Fatalf("tampered cookie must not parse")
	}
}

func TestParseSessionMissingCookie(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ParseSession(r); ok {
		t.Fatalf("expected no session")
	}
}

func TestMiddlewarePopulatesContext(t *testing.T) {
	c := sealSession(t, Session{ID: 3, Name: "Luis", Email: "luis@x.com", Role: "teacher"})
	var got Session
	var ok bool
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = SessionFromContext(r.Context())
	}))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	h.ServeHTTP(httptest.NewRecorder(), r)
	if !ok || got.ID != 3 || got.Role != "teacher" {
		t.Fatalf("expected session in context, got %#v ok=%v", got, ok)
	}
}

func TestRequireRoleRedirectsMismatchHome(t *testing.T) {
	c := sealSession(t, Session{ID: 3, Name: "Luis", Email: "luis@x.com", Role: "teacher"})
	called := false
	h := Middleware(RequireRole("student", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))
	r := httptest.NewRequest(http.MethodGet, "/student/dashboard", nil)
	r.AddCookie(c)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if called {
		t.Fatalf("handler must not run for wrong role")
	}
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %s", w.Code, w.Header().Get("Location"))
	}
	// the session cookie is left untouched
	for _, sc := range w.Result().Cookies() {
		if sc.Name == sessionCookieName && sc.MaxAge < 0 {
			t.Fatalf("session must not be cleared on role mismatch")
		}
	}
}

func TestRequireAuthRedirectsAnonymousToLogin(t *testing.T) {
	h := Middleware(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("handler must not run")
	})))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %s", w.Code, w.Header().Get("Location"))
	}
}
