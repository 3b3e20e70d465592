// Package ap tracks amounts payable to suppliers by due date.
package ap

import (
	"github.com/odyssey-erp/supplierdesk/internal/document"
	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/records"
	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

const (
	ExportName = "payment_due_report"
	Title      = "Payment Due Report"
)

type (
	Entry = records.Entry[records.PaymentDue]
	Store = records.Store[records.PaymentDraft, records.PaymentDue]
)

// Layout lists dues with the amount owed totalled per supplier. Paid dues are
// included in the total.
func Layout() document.Layout[Entry] {
	return document.Layout[Entry]{
		Name:  ExportName,
		Title: Title,
		Key:   pages.EntryKey[records.PaymentDue],
		Columns: []document.Column[Entry]{
			{Header: "Due Date", Kind: document.KindDate, Value: func(e Entry) string { return e.Record.DueDate }},
			{Header: "Amount", Kind: document.KindMoney, Total: true, Value: func(e Entry) string {
				return e.Record.Amount.String()
			}},
			{Header: "Status", Value: func(e Entry) string { return string(e.Record.Status) }},
		},
	}
}

// Selector groups dues by supplier and filters them on the due date.
func Selector() viewfilter.Selector[Entry] {
	return viewfilter.Selector[Entry]{
		Party: func(e Entry) string { return e.Record.PartyName },
		Date:  func(e Entry) string { return e.Record.DueDate },
	}
}

func SampleDrafts() []records.PaymentDraft {
	return []records.PaymentDraft{
		{PartyName: "ABC Suppliers", DueDate: "2025-07-30", Amount: "1200", Status: "Pending"},
		{PartyName: "ABC Suppliers", DueDate: "2025-08-05", Amount: "500", Status: "Paid"},
		{PartyName: "HealthMed Inc", DueDate: "2025-07-31", Amount: "700", Status: "Pending"},
		{PartyName: "HealthMed Inc", DueDate: "2025-08-03", Amount: "1500", Status: "Pending"},
	}
}
