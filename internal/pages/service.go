package pages

import (
	"context"

	"github.com/odyssey-erp/supplierdesk/internal/document"
	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

// Service serves a date-filtered collection: its records, the grouped view and
// both exports.
type Service[D, R any] struct {
	page *Page[D, R]
	pdf  export.Sink
}

func NewService[D, R any](page *Page[D, R], pdf export.Sink) *Service[D, R] {
	return &Service[D, R]{page: page, pdf: pdf}
}

func (s *Service[D, R]) List() []records.Entry[R] {
	return s.page.Store.Snapshot()
}

func (s *Service[D, R]) Get(id records.ID) (records.Entry[R], error) {
	return s.page.Store.Get(id)
}

func (s *Service[D, R]) Create(draft D) (records.Entry[R], error) {
	return s.page.Store.Create(draft)
}

func (s *Service[D, R]) Update(id records.ID, draft D) (records.Entry[R], error) {
	return s.page.Store.Update(id, draft, records.KeepSubmittedAt)
}

func (s *Service[D, R]) Delete(id records.ID) error {
	return s.page.Store.Delete(id)
}

func (s *Service[D, R]) Resume(id records.ID) (D, error) {
	return s.page.Store.Resume(id)
}

// View returns records grouped by party under q.
func (s *Service[D, R]) View(q viewfilter.Query) []viewfilter.Group[records.Entry[R]] {
	return s.page.View(q)
}

func (s *Service[D, R]) Report(q viewfilter.Query) document.Document {
	return s.page.Report(q)
}

// ExportPDF renders exactly the view q selects.
func (s *Service[D, R]) ExportPDF(ctx context.Context, q viewfilter.Query) (export.Artifact, error) {
	return s.page.Export(ctx, s.pdf, export.KindPDF, q)
}

// ExportJSON serialises the document of the view q selects.
func (s *Service[D, R]) ExportJSON(ctx context.Context, q viewfilter.Query) (export.Artifact, error) {
	return s.page.Export(ctx, export.JSONSink{}, export.KindJSON, q)
}
