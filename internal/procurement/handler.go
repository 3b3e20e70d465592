package procurement

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/view"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

type (
	Handler    = pages.Handler[records.PurchaseDraft, records.PurchaseEntry]
	APIHandler = pages.API[records.PurchaseDraft, records.PurchaseEntry]
)

func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, suppliers pages.SupplierDirectory, now func() time.Time) *Handler {
	return pages.NewHandler(form(), service, templates, suppliers, now, logger)
}

func NewAPIHandler(service *Service, now func() time.Time) *APIHandler {
	return pages.NewAPI(service, now)
}

func form() pages.Form[records.PurchaseDraft] {
	return pages.Form[records.PurchaseDraft]{
		Path:     "/purchases",
		Title:    "Purchase History",
		Template: "pages/purchases.html",
		Noun:     "purchase",
		NotFound: "Purchase not found",
		Bind:     draftFromForm,
		Blank: func(today time.Time) records.PurchaseDraft {
			return records.PurchaseDraft{Date: today.Format(viewfilter.DateLayout)}
		},
		Date: func(d records.PurchaseDraft) string { return d.Date },
	}
}

func draftFromForm(r *http.Request) records.PurchaseDraft {
	return records.PurchaseDraft{
		PartyName: r.PostFormValue("owningPartyName"),
		Date:      r.PostFormValue("date"),
		Item:      r.PostFormValue("itemName"),
		Quantity:  r.PostFormValue("quantity"),
		Amount:    r.PostFormValue("amount"),
	}
}
