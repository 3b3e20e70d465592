package pages

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/view"
)

var ledgerDay = time.Date(2025, 7, 31, 9, 0, 0, 0, time.UTC)

func ledgerForm() Form[records.PurchaseDraft] {
	return Form[records.PurchaseDraft]{
		Path:     "/ledger",
		Title:    "Ledger",
		Template: "pages/purchases.html",
		Noun:     "ledger line",
		NotFound: "Ledger line not found",
		Bind: func(r *http.Request) records.PurchaseDraft {
			return records.PurchaseDraft{
				PartyName: r.PostFormValue("owningPartyName"),
				Date:      r.PostFormValue("date"),
				Item:      r.PostFormValue("itemName"),
				Quantity:  r.PostFormValue("quantity"),
				Amount:    r.PostFormValue("amount"),
			}
		},
		Blank: func(today time.Time) records.PurchaseDraft {
			return records.PurchaseDraft{Date: today.AddDate(0, 0, 1).Format("2006-01-02")}
		},
		Date: func(d records.PurchaseDraft) string { return d.Date },
	}
}

func ledgerRouter(t *testing.T) (*Page[records.PurchaseDraft, records.PurchaseEntry], chi.Router) {
	t.Helper()
	engine, err := view.NewEngine("₹")
	require.NoError(t, err)
	page := purchasePage(t, nil)
	service := NewService(page, export.JSONSink{})
	clock := func() time.Time { return ledgerDay }

	r := chi.NewRouter()
	r.Route("/ledger", NewHandler(ledgerForm(), service, engine, nil, clock, nil).MountRoutes)
	r.Route("/api/ledger", NewAPI(service, clock).MountRoutes)
	return page, r
}

func send(r http.Handler, method, target, body, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandlerPrefillsBlankForm(t *testing.T) {
	_, r := ledgerRouter(t)

	rec := send(r, http.MethodGet, "/ledger", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="date" value="2025-08-01"`)
	assert.Contains(t, rec.Body.String(), "Syringes")
}

func TestHandlerRedirectsToFormPathAndDate(t *testing.T) {
	page, r := ledgerRouter(t)
	form := url.Values{
		"owningPartyName": {"ABC Suppliers"},
		"date":            {"2025-08-04"},
		"itemName":        {"Gauze"},
		"quantity":        {"5"},
		"amount":          {"12.345"},
	}

	rec := send(r, http.MethodPost, "/ledger", form.Encode(), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ledger?date=2025-08-04", rec.Header().Get("Location"))
	require.Equal(t, 4, page.Store.Len())

	rec = send(r, http.MethodPost, "/ledger/1/delete", "", "")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/ledger", rec.Header().Get("Location"))
}

func TestHandlerUsesFormNotFoundText(t *testing.T) {
	_, r := ledgerRouter(t)

	for _, target := range []string{"/ledger/99/edit", "/ledger/abc/edit"} {
		rec := send(r, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, target)
		assert.Contains(t, rec.Body.String(), "Ledger line not found", target)
	}
}

func TestAPIRoundTrip(t *testing.T) {
	page, r := ledgerRouter(t)

	rec := send(r, http.MethodPost, "/api/ledger",
		`{"owningPartyName":"HealthMed Inc","date":"2025-08-01","itemName":"Gauze","quantity":"3","amount":"1234.567"}`,
		"application/json")
	require.Equal(t, http.StatusCreated, rec.Code)
	var created purchase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "1234.567", created.Record.Amount.String())

	rec = send(r, http.MethodDelete, "/api/ledger/"+EntryKey(created), "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 3, page.Store.Len())

	rec = send(r, http.MethodGet, "/api/ledger/"+EntryKey(created), "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
