// Package procurement records purchases booked against suppliers and reports them
// grouped by supplier and filtered by purchase date.
package procurement

import (
	"strconv"

	"github.com/odyssey-erp/supplierdesk/internal/document"
	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

const (
	ExportName = "purchase_history"
	Title      = "Purchase History Report"
)

type (
	Entry = records.Entry[records.PurchaseEntry]
	Store = records.Store[records.PurchaseDraft, records.PurchaseEntry]
)

// Layout lists purchases with quantity and amount totals per supplier.
func Layout() document.Layout[Entry] {
	return document.Layout[Entry]{
		Name:  ExportName,
		Title: Title,
		Key:   pages.EntryKey[records.PurchaseEntry],
		Columns: []document.Column[Entry]{
			{Header: "Date", Kind: document.KindDate, Value: func(e Entry) string { return e.Record.Date }},
			{Header: "Item", Value: func(e Entry) string { return e.Record.Item }},
			{Header: "Quantity", Kind: document.KindNumber, Total: true, Value: func(e Entry) string {
				return strconv.FormatInt(e.Record.Quantity, 10)
			}},
			{Header: "Amount", Kind: document.KindMoney, Total: true, Value: func(e Entry) string {
				return e.Record.Amount.String()
			}},
		},
	}
}

// Selector groups purchases by supplier and filters them on the purchase date.
func Selector() viewfilter.Selector[Entry] {
	return viewfilter.Selector[Entry]{
		Party: func(e Entry) string { return e.Record.PartyName },
		Date:  func(e Entry) string { return e.Record.Date },
	}
}

func SampleDrafts() []records.PurchaseDraft {
	return []records.PurchaseDraft{
		{PartyName: "ABC Suppliers", Date: "2025-07-30", Item: "Paracetamol", Quantity: "100", Amount: "500"},
		{PartyName: "ABC Suppliers", Date: "2025-07-31", Item: "Vitamin C", Quantity: "200", Amount: "1200"},
		{PartyName: "HealthMed Inc", Date: "2025-07-31", Item: "Syringes", Quantity: "50", Amount: "700"},
	}
}
