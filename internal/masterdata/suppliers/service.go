package suppliers

import (
	"context"
	"log/slog"

	"github.com/odyssey-erp/supplierdesk/internal/document"
	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

// Service owns the supplier collection and its exports.
type Service struct {
	page *pages.Page[records.SupplierDraft, records.Supplier]
	pdf  export.Sink
}

func NewService(store *Store, pdf export.Sink, observer pages.ExportObserver, logger *slog.Logger) *Service {
	return &Service{
		page: &pages.Page[records.SupplierDraft, records.Supplier]{
			Store:    store,
			Layout:   Layout(),
			Observer: observer,
			Logger:   logger,
		},
		pdf: pdf,
	}
}

func (s *Service) List() []Entry {
	return s.page.Store.Snapshot()
}

func (s *Service) Count() int {
	return s.page.Store.Len()
}

func (s *Service) Get(id records.ID) (Entry, error) {
	return s.page.Store.Get(id)
}

func (s *Service) Create(draft records.SupplierDraft) (Entry, error) {
	return s.page.Store.Create(draft)
}

func (s *Service) Update(id records.ID, draft records.SupplierDraft, policy records.UpdatePolicy) (Entry, error) {
	return s.page.Store.Update(id, draft, policy)
}

func (s *Service) Delete(id records.ID) error {
	return s.page.Store.Delete(id)
}

// Resume returns the draft that re-creates a stored supplier, for editing.
func (s *Service) Resume(id records.ID) (records.SupplierDraft, error) {
	return s.page.Store.Resume(id)
}

// Report describes every supplier; the supplier page has no filter.
func (s *Service) Report() document.Document {
	return s.page.Report(viewfilter.Query{Mode: viewfilter.ShowAll})
}

func (s *Service) ExportPDF(ctx context.Context) (export.Artifact, error) {
	return s.page.Export(ctx, s.pdf, export.KindPDF, viewfilter.Query{Mode: viewfilter.ShowAll})
}

// ExportJSON serialises the raw supplier records.
func (s *Service) ExportJSON() (export.Artifact, error) {
	return s.page.ExportSnapshot()
}

// Names lists distinct supplier names in registration order.
func (s *Service) Names() []string {
	seen := make(map[string]struct{})
	names := make([]string, 0, s.page.Store.Len())
	for _, sup := range s.page.Store.Records() {
		if _, ok := seen[sup.Name]; ok {
			continue
		}
		seen[sup.Name] = struct{}{}
		names = append(names, sup.Name)
	}
	return names
}
