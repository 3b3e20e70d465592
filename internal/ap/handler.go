package ap

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
	Handler    = pages.Handler[records.PaymentDraft, records.PaymentDue]
	APIHandler = pages.API[records.PaymentDraft, records.PaymentDue]
)

func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine, suppliers pages.SupplierDirectory, now func() time.Time) *Handler {
	return pages.NewHandler(form(), service, templates, suppliers, now, logger)
}

func NewAPIHandler(service *Service, now func() time.Time) *APIHandler {
	return pages.NewAPI(service, now)
}

// form prefills new dues as pending on today's date.
func form() pages.Form[records.PaymentDraft] {
	return pages.Form[records.PaymentDraft]{
		Path:     "/payments",
		Title:    "Payment Due",
		Template: "pages/payments.html",
		Noun:     "payment due",
		NotFound: "Payment due not found",
		Bind:     draftFromForm,
		Blank: func(today time.Time) records.PaymentDraft {
			return records.PaymentDraft{Status: string(records.StatusPending), DueDate: today.Format(viewfilter.DateLayout)}
		},
		Date: func(d records.PaymentDraft) string { return d.DueDate },
	}
}

func draftFromForm(r *http.Request) records.PaymentDraft {
	return records.PaymentDraft{
		PartyName: r.PostFormValue("owningPartyName"),
		DueDate:   r.PostFormValue("dueDate"),
		Amount:    r.PostFormValue("amount"),
		Status:    r.PostFormValue("status"),
	}
}
