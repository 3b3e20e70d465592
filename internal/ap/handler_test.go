package ap

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplierdesk/internal/document"
	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/view"
)

type sinkFunc func(document.Document) (export.Artifact, error)

func (f sinkFunc) Render(_ context.Context, doc document.Document) (export.Artifact, error) {
	return f(doc)
}

type observedExport struct {
	page string
	kind export.Kind
	err  error
}

type exportLog []observedExport

func (l *exportLog) ObserveExport(page string, kind export.Kind, err error) {
	*l = append(*l, observedExport{page: page, kind: kind, err: err})
}

func newRouter(t *testing.T, sink export.Sink, observer *exportLog) (*Store, chi.Router) {
	t.Helper()
	engine, err := view.NewEngine("₹")
	require.NoError(t, err)

	store := records.NewStore(records.PaymentSchema(), nil, nil)
	require.NoError(t, store.Seed(SampleDrafts()...))
	service := NewService(store, sink, observer, slog.Default())
	clock := func() time.Time { return time.Date(2025, 7, 30, 8, 0, 0, 0, time.UTC) }

	r := chi.NewRouter()
	r.Route("/payments", NewHandler(slog.Default(), service, engine, nil, clock).MountRoutes)
	r.Route("/api/payments", NewAPIHandler(service, clock).MountRoutes)
	return store, r
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestListShowsTodaysDuesWithCurrency(t *testing.T) {
	_, r := newRouter(t, export.JSONSink{}, &exportLog{})

	rec := get(r, "/payments")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ABC Suppliers</h2>")
	assert.NotContains(t, body, "HealthMed Inc</h2>")
	assert.Contains(t, body, "₹ 1,200.00")
	assert.Contains(t, body, `<option value="Pending" selected>`)
}

func TestReportTotalsIncludePaidDues(t *testing.T) {
	_, r := newRouter(t, export.JSONSink{}, &exportLog{})

	rec := get(r, "/api/payments/report?all=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc document.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, Title, doc.Title)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, []string{"Due Date", "Amount", "Status"}, doc.Sections[0].Table.Headers)
	assert.Equal(t, []string{"", "1700", ""}, doc.Sections[0].Table.Totals)
	assert.Equal(t, []string{"", "2200", ""}, doc.Sections[1].Table.Totals)
}

func TestExportObservedOnSuccessAndFailure(t *testing.T) {
	log := &exportLog{}
	var calls int
	sink := sinkFunc(func(doc document.Document) (export.Artifact, error) {
		calls++
		if calls > 1 {
			return export.Artifact{}, &export.SinkError{Sink: "gotenberg", Err: errors.New("timeout")}
		}
		return export.Artifact{ID: "x", Filename: doc.Name + ".pdf", ContentType: "application/pdf", Body: []byte("%PDF")}, nil
	})
	store, r := newRouter(t, sink, log)

	rec := get(r, "/payments/export.pdf?all=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "payment_due_report.pdf")

	rec = get(r, "/payments/export.pdf?all=1")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, 4, store.Len())

	require.Len(t, *log, 2)
	assert.Equal(t, ExportName, (*log)[0].page)
	assert.Equal(t, export.KindPDF, (*log)[0].kind)
	assert.NoError(t, (*log)[0].err)
	assert.Error(t, (*log)[1].err)
}

func TestUpdateStatusByForm(t *testing.T) {
	store, r := newRouter(t, export.JSONSink{}, &exportLog{})
	form := url.Values{
		"owningPartyName": {"ABC Suppliers"},
		"dueDate":         {"2025-07-30"},
		"amount":          {"1200"},
		"status":          {"Paid"},
	}

	req := httptest.NewRequest(http.MethodPost, "/payments/1/edit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	entry, err := store.Get(1)
	require.NoError(t, err)
	assert.Equal(t, records.StatusPaid, entry.Record.Status)
	assert.Equal(t, 0, entry.Position)
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	store, r := newRouter(t, export.JSONSink{}, &exportLog{})
	form := url.Values{
		"owningPartyName": {"ABC Suppliers"},
		"dueDate":         {"2025-07-30"},
		"amount":          {"10"},
		"status":          {"Overdue"},
	}

	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "payment: status must be one of Pending, Paid")
	assert.Equal(t, 4, store.Len())
}

func TestStoredAmountShownAsEntered(t *testing.T) {
	_, r := newRouter(t, export.JSONSink{}, &exportLog{})
	form := url.Values{
		"owningPartyName": {"ABC Suppliers"},
		"dueDate":         {"2025-07-30"},
		"amount":          {"1234.567"},
		"status":          {"Pending"},
	}

	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = get(r, "/payments?date=2025-07-30")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "₹ 1,234.567")
	assert.Contains(t, rec.Body.String(), "₹ 2,434.567")
	assert.NotContains(t, rec.Body.String(), "1,234.57<")

	rec = get(r, "/payments/export.json?date=2025-07-30")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc document.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, []string{"2025-07-30", "1234.567", "Pending"}, doc.Sections[0].Table.Rows[1])
	assert.Equal(t, []string{"", "2434.567", ""}, doc.Sections[0].Table.Totals)
}
