package pages

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplierdesk/internal/platform/httpx"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

// API serves a date-filtered collection as JSON.
type API[D, R any] struct {
	service *Service[D, R]
	now     func() time.Time
}

func NewAPI[D, R any](service *Service[D, R], now func() time.Time) *API[D, R] {
	if now == nil {
		now = time.Now
	}
	return &API[D, R]{service: service, now: now}
}

func (h *API[D, R]) MountRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/report", h.report)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *API[D, R]) list(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.List())
}

// report returns the filtered document; ?date= and ?all= work as on the page.
func (h *API[D, R]) report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	httpx.JSON(w, http.StatusOK, h.service.Report(viewfilter.ParseQuery(q.Get("date"), q.Get("all"), h.now())))
}

func (h *API[D, R]) get(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
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

func (h *API[D, R]) create(w http.ResponseWriter, r *http.Request) {
	var draft D
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

func (h *API[D, R]) update(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	var draft D
	if err := httpx.DecodeJSON(r, &draft); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid Body", err.Error())
		return
	}
	entry, err := h.service.Update(id, draft)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *API[D, R]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
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
