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

// AdminHandler serves the separate admin login path, checking credentials
// against the admin store rather than the user store.
type AdminHandler struct {
	Svc *services.AdminService
	Log *slog.Logger
}

func NewAdminHandler(svc *services.AdminService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Log: log}
}

func (h *AdminHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/admin/login", h.login)
}

func (h *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderPage(h.Log, w, r, "admin_login.html", nil)
		return
	}
	if r.Method != http.MethodPost {
		httpx.MethodNotAllowed(w, "GET,POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		middleware.Flash(w, "login_error")
		httpx.SeeOther(w, r, "/admin/login")
		return
	}
	correo := strings.TrimSpace(r.FormValue("correo"))
	password := r.FormValue("password")

	sess, err := h.Svc.Authenticate(correo, password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			middleware.Flash(w, "missing_fields")
		case errors.Is(err, services.ErrInvalidCredentials):
			middleware.Flash(w, "invalid_credentials")
		default:
			h.Log.Error("admin login failed", "correo", correo, "error", err)
			middleware.Flash(w, "login_error")
		}
		httpx.SeeOther(w, r, "/admin/login")
		return
	}
	if err := auth.CreateSession(w, sess); err != nil {
		h.Log.Error("seal admin session failed", "admin_id", sess.ID, "error", err)
		middleware.Flash(w, "login_error")
		httpx.SeeOther(w, r, "/admin/login")
		return
	}
	httpx.SeeOther(w, r, "/admin/dashboard")
}
