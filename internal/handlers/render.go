package handlers

import (
	"log/slog"
	"net/http"

	"github.com/R3D13N5/gestion-estudiantes/internal/middleware"
	"github.com/R3D13N5/gestion-estudiantes/view"
)

// renderPage renders through the shared view layer, consuming any pending
// flash code into the page data. Render failures become a bare 500; the
// cause goes to the log, never to the client.
func renderPage(log *slog.Logger, w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Flash"]; !ok {
		if code := middleware.ConsumeFlash(w, r); code != "" {
			data["Flash"] = code
		}
	}
	if err := view.Render(w, r, name, data); err != nil {
		log.Error("template render failed", "template", name, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write([]byte("template error")); werr != nil {
			_ = werr
		}
	}
}
