package viewfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchase struct {
	party string
	date  string
	item  string
}

var bySupplier = Selector[purchase]{
	Party: func(p purchase) string { return p.party },
	Date:  func(p purchase) string { return p.date },
}

func samplePurchases() []purchase {
	return []purchase{
		{"HealthMed Inc", "2025-07-31", "Syringes"},
		{"ABC Suppliers", "2025-07-30", "Paracetamol"},
		{"ABC Suppliers", "2025-07-31", "Vitamin C"},
		{"HealthMed Inc", "2025-07-30", "Gloves"},
	}
}

func TestApplyOmitsEmptyGroups(t *testing.T) {
	items := []purchase{
		{"A", "2025-07-30", "Paracetamol"},
		{"B", "2025-07-31", "Syringes"},
	}

	groups := Apply(items, Query{Mode: ShowSelectedDate, Date: "2025-07-30"}, bySupplier)

	require.Len(t, groups, 1)
	assert.Equal(t, "A", groups[0].Party)
	assert.Len(t, groups[0].Items, 1)
}

func TestApplyKeepsFirstAppearanceOrder(t *testing.T) {
	groups := Apply(samplePurchases(), Query{Mode: ShowAll, Date: "ignored"}, bySupplier)

	require.Len(t, groups, 2)
	assert.Equal(t, "HealthMed Inc", groups[0].Party)
	assert.Equal(t, []string{"Syringes", "Gloves"}, []string{groups[0].Items[0].item, groups[0].Items[1].item})
	assert.Equal(t, "ABC Suppliers", groups[1].Party)
	assert.Equal(t, 4, Count(groups))
}

func TestApplyExactDateMatch(t *testing.T) {
	groups := Apply(samplePurchases(), Query{Mode: ShowSelectedDate, Date: "2025-07-3"}, bySupplier)
	assert.Empty(t, groups)

	groups = Apply(samplePurchases(), Query{Mode: ShowSelectedDate, Date: "2025-07-30"}, bySupplier)
	require.Len(t, groups, 2)
	assert.Equal(t, "ABC Suppliers", groups[0].Party)
	assert.Equal(t, "Paracetamol", groups[0].Items[0].item)
	assert.Equal(t, "HealthMed Inc", groups[1].Party)
}

func TestApplyEmptyInput(t *testing.T) {
	assert.Empty(t, Apply(nil, Query{Mode: ShowAll}, bySupplier))
}

func TestRefilterIsIdempotent(t *testing.T) {
	for _, q := range []Query{
		{Mode: ShowAll},
		{Mode: ShowSelectedDate, Date: "2025-07-30"},
		{Mode: ShowSelectedDate, Date: "2025-07-31"},
		{Mode: ShowSelectedDate, Date: "2025-08-01"},
	} {
		once := Apply(samplePurchases(), q, bySupplier)
		twice := Refilter(once, q, bySupplier)
		assert.Equal(t, once, twice, "query %+v", q)
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	q := Query{Mode: ShowSelectedDate, Date: "2025-07-31"}
	assert.Equal(t, Apply(samplePurchases(), q, bySupplier), Apply(samplePurchases(), q, bySupplier))
}

func TestParseQuery(t *testing.T) {
	today := time.Date(2025, 7, 30, 18, 45, 0, 0, time.UTC)

	assert.Equal(t, Query{Mode: ShowSelectedDate, Date: "2025-07-30"}, ParseQuery("", "", today))
	assert.Equal(t, Query{Mode: ShowSelectedDate, Date: "2025-08-05"}, ParseQuery("2025-08-05", "0", today))
	assert.Equal(t, Query{Mode: ShowAll, Date: "2025-07-30"}, ParseQuery("", "1", today))
	assert.Equal(t, Query{Mode: ShowSelectedDate, Date: "2025-07-30"}, ParseQuery("", "maybe", today))
}
