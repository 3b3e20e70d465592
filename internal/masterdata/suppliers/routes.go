package suppliers

import (
	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplierdesk/internal/pages"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.With(pages.ExportLimit()).Get("/export.pdf", h.ExportPDF)
	r.Get("/export.json", h.ExportJSON)
	r.Get("/{id}/edit", h.EditForm)
	r.Post("/{id}/edit", h.Update)
	r.Post("/{id}/delete", h.Delete)
}
