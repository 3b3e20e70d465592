// Package document turns a filtered view into a renderer-neutral description of
// sections and tables. The same Document feeds the on-screen table and every
// export sink.
package document

import (
	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/supplierdesk/internal/viewfilter"
)

// Kind tells the presentation layer how a column's cells should be displayed.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindMoney  Kind = "money"
	KindDate   Kind = "date"
)

// Column projects one field of T into a table cell.
type Column[T any] struct {
	Header string
	Kind   Kind
	Value  func(T) string
	// Total sums the column into the table footer. Values must parse as decimals.
	Total bool
}

// Layout fixes the title, export name, and column order of one schema.
type Layout[T any] struct {
	// Name is the export base name, e.g. "purchase_history".
	Name    string
	Title   string
	Columns []Column[T]
	// Key optionally identifies each row so the screen can address it for edits.
	Key func(T) string
}

// Document is the structured description of a report.
type Document struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is one titled table. Heading is empty for ungrouped listings.
type Section struct {
	Heading string `json:"heading,omitempty"`
	Table   Table  `json:"table"`
}

// Table holds headers and rows in column order. Totals is nil when no column is
// summed; otherwise it has one cell per column, empty where nothing is summed.
type Table struct {
	Headers []string   `json:"headers"`
	Kinds   []Kind     `json:"kinds"`
	Rows    [][]string `json:"rows"`
	Totals  []string   `json:"totals,omitempty"`
	Keys    []string   `json:"keys,omitempty"`
}

// Empty reports whether the document has no sections.
func (d Document) Empty() bool {
	return len(d.Sections) == 0
}

// RowCount returns the number of rows across sections.
func (d Document) RowCount() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Table.Rows)
	}
	return n
}

// Build renders one section per group, titled by the group's party.
func Build[T any](layout Layout[T], groups []viewfilter.Group[T]) Document {
	doc := Document{Name: layout.Name, Title: layout.Title, Sections: []Section{}}
	for _, g := range groups {
		if len(g.Items) == 0 {
			continue
		}
		doc.Sections = append(doc.Sections, Section{Heading: g.Party, Table: layout.table(g.Items)})
	}
	return doc
}

// BuildFlat renders items as a single section, or none when items is empty.
func BuildFlat[T any](layout Layout[T], heading string, items []T) Document {
	doc := Document{Name: layout.Name, Title: layout.Title, Sections: []Section{}}
	if len(items) == 0 {
		return doc
	}
	doc.Sections = append(doc.Sections, Section{Heading: heading, Table: layout.table(items)})
	return doc
}

// Headers returns the column headers in order.
func (l Layout[T]) Headers() []string {
	headers := make([]string, len(l.Columns))
	for i, c := range l.Columns {
		headers[i] = c.Header
	}
	return headers
}

func (l Layout[T]) table(items []T) Table {
	t := Table{
		Headers: l.Headers(),
		Kinds:   make([]Kind, len(l.Columns)),
		Rows:    make([][]string, 0, len(items)),
	}
	for i, c := range l.Columns {
		t.Kinds[i] = c.Kind
		if c.Kind == "" {
			t.Kinds[i] = KindText
		}
	}

	var (
		summed bool
		sums   = make([]decimal.Decimal, len(l.Columns))
	)
	for _, item := range items {
		row := make([]string, len(l.Columns))
		for i, c := range l.Columns {
			row[i] = c.Value(item)
			if c.Total {
				summed = true
				if v, err := decimal.NewFromString(row[i]); err == nil {
					sums[i] = sums[i].Add(v)
				}
			}
		}
		t.Rows = append(t.Rows, row)
		if l.Key != nil {
			t.Keys = append(t.Keys, l.Key(item))
		}
	}

	if summed {
		t.Totals = make([]string, len(l.Columns))
		for i, c := range l.Columns {
			if c.Total {
				t.Totals[i] = sums[i].String()
			}
		}
	}
	return t
}
