package server

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/R3D13N5/gestion-estudiantes/auth"
	"github.com/R3D13N5/gestion-estudiantes/httpx"
	appdb "github.com/R3D13N5/gestion-estudiantes/internal/db"
	"github.com/R3D13N5/gestion-estudiantes/internal/handlers"
	"github.com/R3D13N5/gestion-estudiantes/internal/middleware"
	"github.com/R3D13N5/gestion-estudiantes/internal/services"
	"github.com/R3D13N5/gestion-estudiantes/view"
)

// New constructs the root http.Handler with all routes and middlewares.
func New(db *gorm.DB, caps appdb.Capabilities, log *slog.Logger) http.Handler {
	view.SetLangResolver(middleware.LangFrom)

	mux := http.NewServeMux()

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Static assets ---
	mux.Handle("/static/", staticHandler())

	// --- Application routes ---
	authSvc := services.NewAuthService(db)
	adminSvc := services.NewAdminService(db)
	handlers.NewAuthHandler(authSvc, log).Register(mux)
	handlers.NewAdminHandler(adminSvc, log).Register(mux)
	handlers.NewDashboardHandler(
		services.NewTeacherService(db, caps),
		services.NewStudentService(db, caps),
		services.NewParentService(db, caps),
		adminSvc,
		log,
	).Register(mux)

	// Prefs sits outside Recover so the 500 page still translates; Logging
	// is outermost so it records the final status.
	return middleware.Logging(log, middleware.Prefs(middleware.Recover(log, auth.Middleware(mux))))
}

func staticHandler() http.Handler {
	fs := http.FileServer(http.Dir("static"))
	return http.StripPrefix("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch filepath.Ext(r.URL.Path) {
		case ".css":
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case ".js":
			w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		}
		if os.Getenv("DEV") == "1" {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		} else {
			w.Header().Set("Cache-Control", "public, max-age=86400")
		}
		fs.ServeHTTP(w, r)
	}))
}
