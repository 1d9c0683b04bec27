package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/R3D13N5/gestion-estudiantes/auth"
	"github.com/R3D13N5/gestion-estudiantes/httpx"
	"github.com/R3D13N5/gestion-estudiantes/internal/middleware"
	"github.com/R3D13N5/gestion-estudiantes/internal/services"
)

// AuthHandler serves the public auth surface: home, login, register, logout.
type AuthHandler struct {
	Svc *services.AuthService
	Log *slog.Logger
}

func NewAuthHandler(svc *services.AuthService, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Log: log}
}

func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", h.home)
	mux.HandleFunc("/login", h.login)
	mux.HandleFunc("/register", h.register)
	mux.HandleFunc("/logout", h.logout)
}

// home shows the login page, or sends an authenticated visitor to their
// dashboard. Every unknown path falls through to "/" on a ServeMux, so this
// is also where the 404 page comes from.
func (h *AuthHandler) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFound(h.Log, w, r)
		return
	}
	if _, ok := auth.SessionFromContext(r.Context()); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderPage(h.Log, w, r, "login.html", nil)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if _, ok := auth.SessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderPage(h.Log, w, r, "login.html", nil)
		return
	}
	if r.Method != http.MethodPost {
		httpx.MethodNotAllowed(w, "GET,POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		middleware.Flash(w, "login_error")
		httpx.SeeOther(w, r, "/login")
		return
	}
	correo := strings.TrimSpace(r.FormValue("correo"))
	password := r.FormValue("password")

	sess, err := h.Svc.Login(correo, password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			middleware.Flash(w, "missing_fields")
		case errors.Is(err, services.ErrInvalidCredentials):
			middleware.Flash(w, "invalid_credentials")
		default:
			h.Log.Error("login failed", "correo", correo, "error", err)
			middleware.Flash(w, "login_error")
		}
		httpx.SeeOther(w, r, "/login")
		return
	}
	if err := auth.CreateSession(w, sess); err != nil {
		h.Log.Error("seal session failed", "user_id", sess.ID, "error", err)
		middleware.Flash(w, "login_error")
		httpx.SeeOther(w, r, "/login")
		return
	}
	httpx.SeeOther(w, r, "/dashboard")
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if _, ok := auth.SessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		renderPage(h.Log, w, r, "register.html", map[string]any{"Form": map[string]string{}})
		return
	}
	if r.Method != http.MethodPost {
		httpx.MethodNotAllowed(w, "GET,POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		renderPage(h.Log, w, r, "register.html", map[string]any{"Error": "register_error", "Form": map[string]string{}})
		return
	}
	nombre := strings.TrimSpace(r.FormValue("nombre"))
	correo := strings.TrimSpace(r.FormValue("correo"))
	password := r.FormValue("password")
	rol := strings.TrimSpace(r.FormValue("rol"))
	form := map[string]string{"nombre": nombre, "correo": correo, "rol": rol}

	if _, err := h.Svc.Register(nombre, correo, password, rol); err != nil {
		var vErr *services.ValidationError
		data := map[string]any{"Form": form}
		switch {
		case errors.As(err, &vErr):
			data["Error"] = "missing_fields"
			data["Violations"] = vErr.Violations
		case errors.Is(err, services.ErrDuplicateContact):
			data["Error"] = "duplicate_contact"
		default:
			h.Log.Error("registration failed", "correo", correo, "rol", rol, "error", err)
			data["Error"] = "register_error"
		}
		renderPage(h.Log, w, r, "register.html", data)
		return
	}
	h.Log.Info("user registered", "correo", correo, "rol", rol)
	middleware.Flash(w, "register_success")
	httpx.SeeOther(w, r, "/login")
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	httpx.SeeOther(w, r, "/")
}
