package aggregate

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sale struct {
	order string
	group string
	month int
	total int64
}

var sales = []sale{
	{"DH01", "BOT", 3, 100},
	{"DH01", "TRA", 3, 50},
	{"DH02", "BOT", 3, 70},
	{"DH02", "BOT", 3, 30},
	{"DH03", "", 5, 90},
	{"", "TRA", 5, 10},
}

func byGroup(s sale) (string, bool) { return s.group, s.group != "" }
func byOrder(s sale) (string, bool) { return s.order, s.order != "" }

func TestGroupBy_ExcludesMissingKeys(t *testing.T) {
	groups := GroupBy(sales, byGroup)

	require.Len(t, groups, 2)
	assert.Len(t, groups["BOT"], 3)
	assert.Len(t, groups["TRA"], 2)
	assert.Equal(t, "DH01", groups["BOT"][0].order, "rows keep input order")
}

func TestRollup(t *testing.T) {
	totals := Rollup(sales, byGroup, func(rows []sale) int64 {
		return Sum(rows, func(s sale) int64 { return s.total })
	})

	assert.Equal(t, map[string]int64{"BOT": 200, "TRA": 60}, totals)
}

func TestRollup_Idempotent(t *testing.T) {
	reduce := func(rows []sale) int { return len(rows) }
	assert.Equal(t, Rollup(sales, byGroup, reduce), Rollup(sales, byGroup, reduce))
}

func TestDistinct(t *testing.T) {
	orders := Distinct(sales, byGroup, byOrder)

	assert.Equal(t, 2, orders["BOT"].Len(), "DH02 counts once for BOT")
	assert.True(t, orders["BOT"].Has("DH01"))
	assert.Equal(t, 1, orders["TRA"].Len(), "rows without an order are not counted")

	groups := GroupBy(sales, byGroup)
	for k, s := range orders {
		assert.LessOrEqual(t, s.Len(), len(groups[k]), "distinct count never exceeds row count")
	}
}

func TestMonthPrefill(t *testing.T) {
	byMonth := Rollup(sales,
		func(s sale) (int, bool) { return s.month, true },
		func(rows []sale) int64 { return Sum(rows, func(s sale) int64 { return s.total }) },
	)

	assert.Equal(t, []int{3, 5}, Keys(byMonth), "without pre-fill, empty months are omitted")

	filled := make([]int64, 0, 12)
	for m := 1; m <= 12; m++ {
		filled = append(filled, byMonth[m])
	}
	assert.Len(t, filled, 12)
	assert.Equal(t, int64(250), filled[2])
	assert.Equal(t, int64(0), filled[3])
	assert.Equal(t, int64(100), filled[4])
}

func TestSorted(t *testing.T) {
	m := map[string]int{"b": 2, "a": 2, "c": 5}

	entries := Sorted(m, func(x, y Entry[string, int]) int {
		return cmp.Or(cmp.Compare(y.Value, x.Value), strings.Compare(x.Key, y.Key))
	})

	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].Key)
	assert.Equal(t, "a", entries[1].Key)
	assert.Equal(t, "b", entries[2].Key)
}

func TestSet(t *testing.T) {
	a := NewSet("x", "y", "x")
	b := NewSet("y", "z")

	assert.Equal(t, 2, a.Len())
	u := Union(a, b)
	assert.Equal(t, 3, u.Len())
	assert.True(t, u.Has("z"))
	assert.False(t, a.Has("z"), "Union does not modify its inputs")
}
