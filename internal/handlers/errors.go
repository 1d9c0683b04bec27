package handlers

import (
	"log/slog"
	"net/http"

	"github.com/R3D13N5/gestion-estudiantes/view"
)

// NotFound renders the 404 page. It is a terminal render, not a redirect.
func NotFound(log *slog.Logger, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := view.Render(w, r, "404.html", nil); err != nil {
		log.Error("render 404 failed", "error", err)
		if _, werr := w.Write([]byte("not found")); werr != nil {
			_ = werr
		}
	}
}
