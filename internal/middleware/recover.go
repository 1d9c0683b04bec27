package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/R3D13N5/gestion-estudiantes/view"
)

// Recover converts a panicking handler into the rendered 500 page. The
// panic detail stays in the server log; the user sees only the error page.
func Recover(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					"path", r.URL.Path,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				w.WriteHeader(http.StatusInternalServerError)
				if err := view.Render(w, r, "500.html", nil); err != nil {
					if _, werr := w.Write([]byte("internal server error")); werr != nil {
						_ = werr
					}
				}
			}
		}()
		next.ServeHTTP(w, r)
	})
}
