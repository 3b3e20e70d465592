// Package pages combines a record store with its view filter, layout, and export
// sinks. The supplier, purchase, and payment packages each configure one Page.
package pages

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/odyssey-erp/supplierdesk/internal/document"
	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

// ExportObserver is notified after every export attempt.
type ExportObserver interface {
	ObserveExport(page string, kind export.Kind, err error)
}

// Page is one collection as the dashboard shows and exports it.
type Page[D, R any] struct {
	Store  *records.Store[D, R]
	Layout document.Layout[records.Entry[R]]
	// Selector groups records by party and exposes their date. Nil renders the
	// whole collection as one section titled Heading.
	Selector *viewfilter.Selector[records.Entry[R]]
	Heading  string
	Observer ExportObserver
	Logger   *slog.Logger
}

// View returns the grouped, filtered snapshot.
func (p *Page[D, R]) View(q viewfilter.Query) []viewfilter.Group[records.Entry[R]] {
	snapshot := p.Store.Snapshot()
	if p.Selector == nil {
		if len(snapshot) == 0 {
			return nil
		}
		return []viewfilter.Group[records.Entry[R]]{{Party: p.Heading, Items: snapshot}}
	}
	return viewfilter.Apply(snapshot, q, *p.Selector)
}

// Report builds the document description of the current view.
func (p *Page[D, R]) Report(q viewfilter.Query) document.Document {
	if p.Selector == nil {
		return document.BuildFlat(p.Layout, p.Heading, p.Store.Snapshot())
	}
	return document.Build(p.Layout, p.View(q))
}

// Export renders the current view through sink. Sink errors are returned as is,
// and no store is touched whatever the outcome.
func (p *Page[D, R]) Export(ctx context.Context, sink export.Sink, kind export.Kind, q viewfilter.Query) (export.Artifact, error) {
	doc := p.Report(q)
	artifact, err := sink.Render(ctx, doc)
	p.observe(kind, err)
	if err != nil {
		p.logger().Error("export failed", slog.String("page", p.Layout.Name), slog.String("kind", string(kind)), slog.Any("error", err))
		return export.Artifact{}, err
	}
	p.logger().Info("export rendered",
		slog.String("page", p.Layout.Name),
		slog.String("kind", string(kind)),
		slog.String("export_id", artifact.ID),
		slog.Int("sections", len(doc.Sections)),
		slog.Int("rows", doc.RowCount()),
		slog.Int("bytes", len(artifact.Body)),
	)
	return artifact, nil
}

// ExportSnapshot serialises every stored record, ignoring any filter.
func (p *Page[D, R]) ExportSnapshot() (export.Artifact, error) {
	artifact, err := export.SnapshotJSON(p.Layout.Name, p.Store.Records())
	p.observe(export.KindJSON, err)
	return artifact, err
}

func (p *Page[D, R]) observe(kind export.Kind, err error) {
	if p.Observer != nil {
		p.Observer.ObserveExport(p.Layout.Name, kind, err)
	}
}

func (p *Page[D, R]) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}

// EntryKey identifies table rows by record ID.
func EntryKey[R any](e records.Entry[R]) string {
	return strconv.FormatInt(int64(e.ID), 10)
}

// ParseID reads a record ID from a route parameter.
func ParseID(raw string) (records.ID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, records.ErrNotFound
	}
	return records.ID(id), nil
}

// FilterView feeds the date filter partial.
type FilterView struct {
	Action        string
	Query         viewfilter.Query
	Today         string
	ShowAll       bool
	ExportURL     string
	ExportJSONURL string
}

// NewFilterView describes the filter controls of the page mounted at base.
func NewFilterView(base string, q viewfilter.Query, today time.Time) FilterView {
	query := QueryValues(q).Encode()
	return FilterView{
		Action:        base,
		Query:         q,
		Today:         today.Format(viewfilter.DateLayout),
		ShowAll:       q.Mode == viewfilter.ShowAll,
		ExportURL:     base + "/export.pdf?" + query,
		ExportJSONURL: base + "/export.json?" + query,
	}
}

// QueryValues encodes a query the way ParseQuery reads it.
func QueryValues(q viewfilter.Query) url.Values {
	values := url.Values{}
	if q.Mode == viewfilter.ShowAll {
		values.Set("all", "1")
	} else {
		values.Set("date", q.Date)
	}
	return values
}
