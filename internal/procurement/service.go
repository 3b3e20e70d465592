package procurement

import (
	"log/slog"

	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/records"
)

type Service = pages.Service[records.PurchaseDraft, records.PurchaseEntry]

func NewService(store *Store, pdf export.Sink, observer pages.ExportObserver, logger *slog.Logger) *Service {
	selector := Selector()
	return pages.NewService(&pages.Page[records.PurchaseDraft, records.PurchaseEntry]{
		Store:    store,
		Layout:   Layout(),
		Selector: &selector,
		Observer: observer,
		Logger:   logger,
	}, pdf)
}
