package perf

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/procurement"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/view"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

const (
	benchSuppliers = 40
	benchPurchases = 5000
)

var benchDay = time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

func purchaseStore(b *testing.B) *procurement.Store {
	b.Helper()
	store := records.NewStore(records.PurchaseSchema(), nil, nil)
	drafts := make([]records.PurchaseDraft, 0, benchPurchases)
	for i := 0; i < benchPurchases; i++ {
		drafts = append(drafts, records.PurchaseDraft{
			PartyName: fmt.Sprintf("Supplier %02d", i%benchSuppliers),
			Date:      benchDay.AddDate(0, 0, -(i % 30)).Format(viewfilter.DateLayout),
			Item:      "Item " + strconv.Itoa(i),
			Quantity:  strconv.Itoa(1 + i%250),
			Amount:    strconv.Itoa(10+i%900) + ".25",
		})
	}
	if err := store.Seed(drafts...); err != nil {
		b.Fatal(err)
	}
	return store
}

func BenchmarkPurchaseReportShowAll(b *testing.B) {
	service := procurement.NewService(purchaseStore(b), export.JSONSink{}, nil, nil)
	q := viewfilter.Query{Mode: viewfilter.ShowAll}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if doc := service.Report(q); len(doc.Sections) != benchSuppliers {
			b.Fatalf("sections = %d", len(doc.Sections))
		}
	}
}

func BenchmarkPurchaseReportSelectedDate(b *testing.B) {
	service := procurement.NewService(purchaseStore(b), export.JSONSink{}, nil, nil)
	q := viewfilter.DefaultQuery(benchDay)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = service.Report(q)
	}
}

func BenchmarkDocumentHTML(b *testing.B) {
	engine, err := view.NewEngine("₹")
	if err != nil {
		b.Fatal(err)
	}
	service := procurement.NewService(purchaseStore(b), export.JSONSink{}, nil, nil)
	doc := service.Report(viewfilter.Query{Mode: viewfilter.ShowAll})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := engine.DocumentHTML(doc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPurchasePageHTTP(b *testing.B) {
	engine, err := view.NewEngine("₹")
	if err != nil {
		b.Fatal(err)
	}
	service := procurement.NewService(purchaseStore(b), export.JSONSink{}, nil, nil)
	r := chi.NewRouter()
	r.Route("/purchases", procurement.NewHandler(nil, service, engine, nil, func() time.Time { return benchDay }).MountRoutes)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/purchases", nil))
		if rec.Code != http.StatusOK {
			b.Fatalf("status = %d", rec.Code)
		}
	}
}
