package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func resolveLang(t *testing.T, req *http.Request) (string, *http.Response) {
	t.Helper()
	var got string
	h := Prefs(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = LangFrom(r)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return got, rec.Result()
}

func TestPrefsDefaultsToSpanish(t *testing.T) {
	lang, _ := resolveLang(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if lang != "es" {
		t.Errorf("lang = %q, want es", lang)
	}
}

func TestPrefsReadsAcceptLanguage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	lang, _ := resolveLang(t, req)
	if lang != "en" {
		t.Errorf("lang = %q, want en", lang)
	}
}

func TestPrefsQueryWinsAndPersists(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?lang=en", nil)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "es"})
	lang, resp := resolveLang(t, req)
	if lang != "en" {
		t.Errorf("lang = %q, want en", lang)
	}
	var persisted bool
	for _, c := range resp.Cookies() {
		if c.Name == "lang" && c.Value == "en" && c.MaxAge > 0 {
			persisted = true
		}
	}
	if !persisted {
		t.Error("query language was not persisted in the lang cookie")
	}
}

func TestPrefsCookieBeatsHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "lang", Value: "en"})
	req.Header.Set("Accept-Language", "es")
	lang, _ := resolveLang(t, req)
	if lang != "en" {
		t.Errorf("lang = %q, want en", lang)
	}
}

func TestPrefsRejectsUnsupportedValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?lang=fr", nil)
	req.Header.Set("Accept-Language", "en")
	lang, _ := resolveLang(t, req)
	if lang != "en" {
		t.Errorf("unsupported lang must fall back to the header, got %q", lang)
	}
}

func TestFlashRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	Flash(rec, "register_success")
	var stored *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" {
			stored = c
		}
	}
	if stored == nil || stored.Value != "register_success" {
		t.Fatalf("flash cookie = %+v", stored)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: stored.Value})
	rec = httptest.NewRecorder()
	if got := ConsumeFlash(rec, req); got != "register_success" {
		t.Errorf("ConsumeFlash = %q", got)
	}
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie was not cleared on consume")
	}
}

func TestConsumeFlashWithoutCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if got := ConsumeFlash(rec, req); got != "" {
		t.Errorf("ConsumeFlash = %q, want empty", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("no cookie should be written when there is nothing to clear")
	}
}
