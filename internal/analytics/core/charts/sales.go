package charts

import (
	"cmp"
	"strings"

	"sales-analytics-service/internal/analytics/core/aggregate"
	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
)

func salesByItem(s *Snapshot, _ Params) (result, error) {
	byItem := aggregate.Rollup(s.Records,
		func(r normalize.Record) (string, bool) { return bracket(r.ItemCode, r.ItemName), true },
		func(rows []normalize.Record) domain.ItemSales {
			t := totalsOf(rows)
			return domain.ItemSales{Group: groupCaption(rows[0]), Sales: t.sales, Quantity: t.quantity}
		},
	)

	entries := aggregate.Sorted(byItem, func(a, b aggregate.Entry[string, domain.ItemSales]) int {
		return cmp.Or(cmp.Compare(b.Value.Sales, a.Value.Sales), strings.Compare(a.Key, b.Key))
	})

	records := make([]domain.ItemSales, len(entries))
	points := make([]domain.Point, len(entries))
	for i, e := range entries {
		records[i] = e.Value
		records[i].ItemLabel = e.Key
		points[i] = domain.Point{Label: e.Key, Value: float64(e.Value.Sales)}
	}

	return result{records: records, series: []domain.Series{{Name: "Sales", Points: points}}}, nil
}

func salesByGroup(s *Snapshot, _ Params) (result, error) {
	byGroup := aggregate.Rollup(s.Records, groupLabel, totalsOf)

	entries := aggregate.Sorted(byGroup, func(a, b aggregate.Entry[string, totals]) int {
		return cmp.Or(cmp.Compare(b.Value.sales, a.Value.sales), strings.Compare(a.Key, b.Key))
	})

	records := make([]domain.GroupSales, len(entries))
	points := make([]domain.Point, len(entries))
	for i, e := range entries {
		records[i] = domain.GroupSales{Group: e.Key, Sales: e.Value.sales, Quantity: e.Value.quantity}
		points[i] = domain.Point{Label: e.Key, Value: float64(e.Value.sales)}
	}

	return result{records: records, series: []domain.Series{{Name: "Sales", Points: points}}}, nil
}

// salesByMonth sums every dated row into its calendar month. All twelve
// months are emitted, empty ones with zero totals.
func salesByMonth(s *Snapshot, _ Params) (result, error) {
	dated, skipped := keep(s.Records, hasDate)

	byMonth := aggregate.Rollup(dated,
		func(r normalize.Record) (int, bool) { return int(r.OrderedAt.Month()), true },
		totalsOf,
	)

	records := make([]domain.MonthSales, 0, 12)
	points := make([]domain.Point, 0, 12)
	for m := 1; m <= 12; m++ {
		t := byMonth[m]
		records = append(records, domain.MonthSales{Month: twoDigits(m), Sales: t.sales, Quantity: t.quantity})
		points = append(points, domain.Point{Label: "T" + twoDigits(m), Value: float64(t.sales)})
	}

	return result{records: records, series: []domain.Series{{Name: "Sales", Points: points}}, skipped: skipped}, nil
}
