package report

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Engine is an HTML-to-PDF backend that can report its own health.
type Engine interface {
	RenderHTML(ctx context.Context, html string) ([]byte, error)
	Ping(ctx context.Context) error
}

// Handler exposes engine diagnostics.
type Handler struct {
	name   string
	engine Engine
	logger *slog.Logger
}

// NewHandler creates a report handler for the named engine.
func NewHandler(name string, engine Engine, logger *slog.Logger) *Handler {
	return &Handler{name: name, engine: engine, logger: logger}
}

// MountRoutes registers report routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/ping", h.ping)
	r.Post("/sample", h.sample)
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Ping(r.Context()); err != nil {
		h.logger.Warn("pdf engine ping failed", slog.String("engine", h.name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok","engine":"` + h.name + `"}`))
}

func (h *Handler) sample(w http.ResponseWriter, r *http.Request) {
	html := "" +
		"<html><head><title>Supplier Desk</title></head><body>" +
		"<h1>Supplier Desk</h1><p>Generated at " + time.Now().Format(time.RFC1123) + " by " + h.name + "</p>" +
		"</body></html>"
	pdf, err := h.engine.RenderHTML(r.Context(), html)
	if err != nil {
		h.logger.Error("render sample pdf", slog.String("engine", h.name), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline; filename=sample.pdf")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
