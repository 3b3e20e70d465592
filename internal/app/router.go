package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplierdesk/internal/ap"
	"github.com/odyssey-erp/supplierdesk/internal/masterdata/suppliers"
	"github.com/odyssey-erp/supplierdesk/internal/observability"
	"github.com/odyssey-erp/supplierdesk/internal/procurement"
	"github.com/odyssey-erp/supplierdesk/internal/view"
	"github.com/odyssey-erp/supplierdesk/report"
	"github.com/odyssey-erp/supplierdesk/web"
)

// Counts summarises the collections on the dashboard.
type Counts struct {
	Suppliers int
	Purchases int
	Payments  int
}

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger    *slog.Logger
	Config    *Config
	Templates *view.Engine
	Counts    func() Counts

	SupplierHandler    *suppliers.Handler
	SupplierAPI        *suppliers.APIHandler
	ProcurementHandler *procurement.Handler
	ProcurementAPI     *procurement.APIHandler
	PaymentHandler     *ap.Handler
	PaymentAPI         *ap.APIHandler
	ReportHandler      *report.Handler
	Metrics            *observability.Metrics
}

// NewRouter constructs the chi.Router with supplier desk defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		var counts Counts
		if params.Counts != nil {
			counts = params.Counts()
		}
		data := view.TemplateData{
			Title:       "Supplier Management Dashboard",
			CurrentPath: r.URL.Path,
			Data:        counts,
		}
		if err := params.Templates.Render(w, http.StatusOK, "pages/dashboard.html", data); err != nil {
			params.Logger.Error("render dashboard", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	})

	r.Route("/suppliers", params.SupplierHandler.MountRoutes)
	r.Route("/purchases", params.ProcurementHandler.MountRoutes)
	r.Route("/payments", params.PaymentHandler.MountRoutes)
	r.Route("/api", func(r chi.Router) {
		r.Route("/suppliers", params.SupplierAPI.MountRoutes)
		r.Route("/purchases", params.ProcurementAPI.MountRoutes)
		r.Route("/payments", params.PaymentAPI.MountRoutes)
	})
	if params.ReportHandler != nil {
		r.Route("/report", params.ReportHandler.MountRoutes)
	}
	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	return r
}

// staticCacheHandler lets browsers cache static assets for an hour.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
