// Package viewfilter derives the grouped, date-filtered view of a record collection.
// Every function here is pure: no clock, no shared state.
package viewfilter

import (
	"strconv"
	"time"
)

// DateLayout is the ISO calendar date form used for record dates.
const DateLayout = "2006-01-02"

// Mode selects which records of a collection are visible.
type Mode int

const (
	// ShowSelectedDate keeps records whose date equals Query.Date.
	ShowSelectedDate Mode = iota
	// ShowAll keeps every record and ignores Query.Date.
	ShowAll
)

func (m Mode) String() string {
	if m == ShowAll {
		return "all"
	}
	return "date"
}

// Query is the filter input chosen by the user.
type Query struct {
	Mode Mode
	Date string
}

// DefaultQuery shows the records dated today.
func DefaultQuery(today time.Time) Query {
	return Query{Mode: ShowSelectedDate, Date: today.Format(DateLayout)}
}

// ParseQuery reads the date and show-all toggle submitted by the presentation layer.
// An empty date falls back to today.
func ParseQuery(date, all string, today time.Time) Query {
	q := DefaultQuery(today)
	if date != "" {
		q.Date = date
	}
	if showAll, err := strconv.ParseBool(all); err == nil && showAll {
		q.Mode = ShowAll
	}
	return q
}

// Matches reports whether a record dated date is visible under the query.
func (q Query) Matches(date string) bool {
	return q.Mode == ShowAll || date == q.Date
}

// Selector extracts the grouping key and the date of an item.
type Selector[T any] struct {
	Party func(T) string
	Date  func(T) string
}

// Group is the visible items of one owning party, in source order.
type Group[T any] struct {
	Party string `json:"party"`
	Items []T    `json:"items"`
}

// Apply filters items by the query and groups the survivors by party. Groups appear
// in the order their party first appears in items; parties with no visible item are
// omitted.
func Apply[T any](items []T, q Query, sel Selector[T]) []Group[T] {
	var (
		groups []Group[T]
		index  = make(map[string]int)
	)
	for _, item := range items {
		if !q.Matches(sel.Date(item)) {
			continue
		}
		party := sel.Party(item)
		i, ok := index[party]
		if !ok {
			i = len(groups)
			index[party] = i
			groups = append(groups, Group[T]{Party: party})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// Flatten concatenates the items of every group in group order.
func Flatten[T any](groups []Group[T]) []T {
	var out []T
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// Refilter applies the query again to an already filtered view.
func Refilter[T any](groups []Group[T], q Query, sel Selector[T]) []Group[T] {
	return Apply(Flatten(groups), q, sel)
}

// Count returns the number of items across groups.
func Count[T any](groups []Group[T]) int {
	n := 0
	for _, g := range groups {
		n += len(g.Items)
	}
	return n
}
