package suppliers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/platform/httpx"
	"github.com/odyssey-erp/supplierdesk/internal/records"
)

// APIHandler serves the supplier collection as JSON.
type APIHandler struct {
	service *Service
}

func NewAPIHandler(service *Service) *APIHandler {
	return &APIHandler{service: service}
}

func (h *APIHandler) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/report", h.report)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *APIHandler) list(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.List())
}

func (h *APIHandler) report(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Report())
}

func (h *APIHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := pages.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	entry, err := h.service.Get(id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *APIHandler) create(w http.ResponseWriter, r *http.Request) {
	var draft records.SupplierDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	entry, err := h.service.Create(draft)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, entry)
}

func (h *APIHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := pages.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var draft records.SupplierDraft
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	entry, err := h.service.Update(id, draft, policyFrom(r.URL.Query().Get("refreshSubmittedAt")))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *APIHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := pages.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Delete(id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
