package suppliers

import (
	"github.com/odyssey-erp/supplierdesk/internal/document"
	"github.com/odyssey-erp/supplierdesk/internal/pages"
	"github.com/odyssey-erp/supplierdesk/internal/records"
)

const (
	// ExportName names supplier artifacts, e.g. suppliers_data.pdf.
	ExportName = "suppliers_data"
	// Title heads the supplier listing; its single section carries no heading.
	Title = "Supplier Records"

	submittedLayout = "2006-01-02 15:04:05"
)

type (
	Entry = records.Entry[records.Supplier]
	Store = records.Store[records.SupplierDraft, records.Supplier]
)

// Layout lays suppliers out in registration order with no totals.
func Layout() document.Layout[Entry] {
	return document.Layout[Entry]{
		Name:  ExportName,
		Title: Title,
		Key:   pages.EntryKey[records.Supplier],
		Columns: []document.Column[Entry]{
			{Header: "Name", Value: func(e Entry) string { return e.Record.Name }},
			{Header: "Tax ID", Value: func(e Entry) string { return e.Record.TaxID }},
			{Header: "Contact", Value: func(e Entry) string { return e.Record.ContactNumber }},
			{Header: "Email", Value: func(e Entry) string { return e.Record.Email }},
			{Header: "Address", Value: func(e Entry) string { return e.Record.Address }},
			{Header: "Submitted", Kind: document.KindDate, Value: func(e Entry) string {
				return e.Record.SubmittedAt.Format(submittedLayout)
			}},
		},
	}
}

// SampleDrafts returns the demo suppliers referenced by the sample purchases and dues.
func SampleDrafts() []records.SupplierDraft {
	return []records.SupplierDraft{
		{
			Name:          "ABC Suppliers",
			TaxID:         "27AABCA1234F1Z5",
			ContactNumber: "9876543210",
			Address:       "12 Market Road, Pune",
			Email:         "orders@abcsuppliers.example",
		},
		{
			Name:          "HealthMed Inc",
			TaxID:         "29AAACH5678K1Z2",
			ContactNumber: "9123456780",
			Address:       "4 Residency Road, Bengaluru",
			Email:         "sales@healthmed.example",
		},
	}
}
