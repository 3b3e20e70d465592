package pages

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/view"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

// SupplierDirectory offers known supplier names as form suggestions.
type SupplierDirectory interface {
	Names() []string
}

// Form binds the entry form of one filtered page and names what it shows.
type Form[D any] struct {
	Path     string
	Title    string
	Template string
	// Noun is the lower-case record name used in log lines.
	Noun     string
	NotFound string
	Bind     func(r *http.Request) D
	// Blank prefills the create form.
	Blank    func(today time.Time) D
	// Date is the date a saved draft is filed under.
	Date     func(draft D) string
}

// Handler serves the HTML page of a date-filtered collection.
type Handler[D, R any] struct {
	logger    *slog.Logger
	form      Form[D]
	service   *Service[D, R]
	templates *view.Engine
	suppliers SupplierDirectory
	now       func() time.Time
}

func NewHandler[D, R any](form Form[D], service *Service[D, R], templates *view.Engine, suppliers SupplierDirectory, now func() time.Time, logger *slog.Logger) *Handler[D, R] {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler[D, R]{logger: logger, form: form, service: service, templates: templates, suppliers: suppliers, now: now}
}

func (h *Handler[D, R]) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.With(ExportLimit()).Get("/export.pdf", h.ExportPDF)
	r.Get("/export.json", h.ExportJSON)
	r.Get("/{id}/edit", h.EditForm)
	r.Post("/{id}/edit", h.Update)
	r.Post("/{id}/delete", h.Delete)
}

func (h *Handler[D, R]) List(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, h.form.Blank(h.now()), 0, nil, http.StatusOK)
}

func (h *Handler[D, R]) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	draft := h.form.Bind(r)
	if _, err := h.service.Create(draft); err != nil {
		h.formFailed(w, r, draft, 0, err)
		return
	}
	h.redirect(w, r, h.form.Date(draft))
}

func (h *Handler[D, R]) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, h.form.NotFound, http.StatusNotFound)
		return
	}
	draft, err := h.service.Resume(id)
	if err != nil {
		http.Error(w, h.form.NotFound, StatusOf(err))
		return
	}
	h.renderPage(w, r, draft, id, nil, http.StatusOK)
}

func (h *Handler[D, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, h.form.NotFound, http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	draft := h.form.Bind(r)
	if _, err := h.service.Update(id, draft); err != nil {
		h.formFailed(w, r, draft, id, err)
		return
	}
	h.redirect(w, r, h.form.Date(draft))
}

func (h *Handler[D, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, h.form.NotFound, http.StatusNotFound)
		return
	}
	if err := h.service.Delete(id); err != nil {
		h.logger.Warn("delete "+h.form.Noun+" failed", slog.Int64("id", int64(id)), slog.Any("error", err))
		http.Error(w, h.form.NotFound, StatusOf(err))
		return
	}
	http.Redirect(w, r, h.form.Path, http.StatusSeeOther)
}

func (h *Handler[D, R]) ExportPDF(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.service.ExportPDF(r.Context(), h.query(r))
	if err != nil {
		http.Error(w, "Failed to render PDF", StatusOf(err))
		return
	}
	WriteArtifact(w, artifact)
}

func (h *Handler[D, R]) ExportJSON(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.service.ExportJSON(r.Context(), h.query(r))
	if err != nil {
		http.Error(w, "Failed to export report", StatusOf(err))
		return
	}
	WriteArtifact(w, artifact)
}

func (h *Handler[D, R]) query(r *http.Request) viewfilter.Query {
	q := r.URL.Query()
	return viewfilter.ParseQuery(q.Get("date"), q.Get("all"), h.now())
}

// redirect lands on the date just written so the new row is visible.
func (h *Handler[D, R]) redirect(w http.ResponseWriter, r *http.Request, date string) {
	http.Redirect(w, r, h.form.Path+"?"+QueryValues(viewfilter.Query{Date: date}).Encode(), http.StatusSeeOther)
}

func (h *Handler[D, R]) formFailed(w http.ResponseWriter, r *http.Request, draft D, id records.ID, err error) {
	formErrs, ok := FormErrors(err)
	if !ok {
		h.logger.Warn("save "+h.form.Noun+" failed", slog.Int64("id", int64(id)), slog.Any("error", err))
		http.Error(w, h.form.NotFound, StatusOf(err))
		return
	}
	h.renderPage(w, r, draft, id, formErrs, http.StatusBadRequest)
}

func (h *Handler[D, R]) renderPage(w http.ResponseWriter, r *http.Request, form D, editID records.ID, formErrs map[string]string, status int) {
	if formErrs == nil {
		formErrs = map[string]string{}
	}
	var names []string
	if h.suppliers != nil {
		names = h.suppliers.Names()
	}
	q := h.query(r)
	data := view.TemplateData{
		Title:       h.form.Title,
		CurrentPath: r.URL.Path,
		Data: map[string]any{
			"Filter":    NewFilterView(h.form.Path, q, h.now()),
			"Document":  h.service.Report(q),
			"Form":      form,
			"Errors":    formErrs,
			"EditID":    editID,
			"Suppliers": names,
		},
	}
	if err := h.templates.Render(w, status, h.form.Template, data); err != nil {
		h.logger.Error("render template", slog.Any("error", err), slog.String("template", h.form.Template))
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}
