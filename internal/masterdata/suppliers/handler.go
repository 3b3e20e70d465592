package suppliers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/view"
)

const basePath = "/suppliers"

type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
}

func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, templates: templates}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, records.SupplierDraft{}, 0, nil, http.StatusOK)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	draft := draftFromForm(r)
	if _, err := h.service.Create(draft); err != nil {
		h.formFailed(w, r, draft, 0, err)
		return
	}
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := pages.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Supplier not found", http.StatusNotFound)
		return
	}
	draft, err := h.service.Resume(id)
	if err != nil {
		http.Error(w, "Supplier not found", pages.StatusOf(err))
		return
	}
	h.renderPage(w, r, draft, id, nil, http.StatusOK)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pages.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Supplier not found", http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	draft := draftFromForm(r)
	if _, err := h.service.Update(id, draft, policyFrom(r.PostFormValue("refreshSubmittedAt"))); err != nil {
		h.formFailed(w, r, draft, id, err)
		return
	}
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pages.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Supplier not found", http.StatusNotFound)
		return
	}
	if err := h.service.Delete(id); err != nil {
		h.logger.Warn("delete supplier failed", slog.Int64("id", int64(id)), slog.Any("error", err))
		http.Error(w, "Supplier not found", pages.StatusOf(err))
		return
	}
	http.Redirect(w, r, basePath, http.StatusSeeOther)
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.service.ExportPDF(r.Context())
	if err != nil {
		http.Error(w, "Failed to render PDF", pages.StatusOf(err))
		return
	}
	pages.WriteArtifact(w, artifact)
}

func (h *Handler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.service.ExportJSON()
	if err != nil {
		h.logger.Error("export suppliers json failed", slog.Any("error", err))
		http.Error(w, "Failed to export suppliers", http.StatusInternalServerError)
		return
	}
	pages.WriteArtifact(w, artifact)
}

func (h *Handler) formFailed(w http.ResponseWriter, r *http.Request, draft records.SupplierDraft, id records.ID, err error) {
	formErrs, ok := pages.FormErrors(err)
	if !ok {
		h.logger.Warn("save supplier failed", slog.Int64("id", int64(id)), slog.Any("error", err))
		http.Error(w, "Supplier not found", pages.StatusOf(err))
		return
	}
	h.renderPage(w, r, draft, id, formErrs, http.StatusBadRequest)
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, form records.SupplierDraft, editID records.ID, formErrs map[string]string, status int) {
	if formErrs == nil {
		formErrs = map[string]string{}
	}
	data := view.TemplateData{
		Title:       "Suppliers",
		CurrentPath: r.URL.Path,
		Data: map[string]any{
			"Form":     form,
			"Errors":   formErrs,
			"EditID":   editID,
			"Count":    h.service.Count(),
			"Document": h.service.Report(),
		},
	}
	if err := h.templates.Render(w, status, "pages/suppliers.html", data); err != nil {
		h.logger.Error("render template", slog.Any("error", err), slog.String("template", "pages/suppliers.html"))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
