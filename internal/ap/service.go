package ap

import (
	"log/slog"

	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/records"
)

type Service = pages.Service[records.PaymentDraft, records.PaymentDue]

func NewService(store *Store, pdf export.Sink, observer pages.ExportObserver, logger *slog.Logger) *Service {
	selector := Selector()
	return pages.NewService(&pages.Page[records.PaymentDraft, records.PaymentDue]{
		Store:    store,
		Layout:   Layout(),
		Selector: &selector,
		Observer: observer,
		Logger:   logger,
	}, pdf)
}
