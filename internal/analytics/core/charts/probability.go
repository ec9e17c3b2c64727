package charts

import (
	"cmp"
	"slices"
	"strings"

	"sales-analytics-service/internal/analytics/core/aggregate"
	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
)

// groupOrderProbability is the share of all distinct orders that contain
// at least one line of each item group.
func groupOrderProbability(s *Snapshot, _ Params) (result, error) {
	ordered, skipped := keep(s.Records, hasOrder)

	all := aggregate.NewSet[string]()
	for _, r := range ordered {
		all.Add(r.OrderID)
	}

	perGroup := aggregate.Distinct(ordered, groupLabel, orderID)

	records := make([]domain.GroupProbability, 0, len(perGroup))
	for label, orders := range perGroup {
		records = append(records, domain.GroupProbability{
			GroupLabel:  label,
			Orders:      orders.Len(),
			Probability: percent(orders.Len(), all.Len()),
		})
	}
	sortProbabilities(records)

	points := make([]domain.Point, len(records))
	for i, r := range records {
		points[i] = domain.Point{Label: r.GroupLabel, Value: r.Probability}
	}

	return result{records: records, series: []domain.Series{{Name: "Probability", Points: points}}, skipped: skipped}, nil
}

func sortProbabilities(records []domain.GroupProbability) {
	slices.SortFunc(records, func(a, b domain.GroupProbability) int {
		return cmp.Or(cmp.Compare(b.Probability, a.Probability), strings.Compare(a.GroupLabel, b.GroupLabel))
	})
}

type monthGroup struct {
	month int
	group string
}

// groupOrderProbabilityByMonth repeats groupOrderProbability inside each
// calendar month. Every (month, group) pair is emitted, zero when the
// group sold nothing that month.
func groupOrderProbabilityByMonth(s *Snapshot, _ Params) (result, error) {
	rows, skipped := keep(s.Records, func(r normalize.Record) bool { return r.HasDate && r.OrderID != "" })

	month := func(r normalize.Record) int { return int(r.OrderedAt.Month()) }

	perMonth := aggregate.Distinct(rows,
		func(r normalize.Record) (int, bool) { return month(r), true },
		orderID,
	)
	perMonthGroup := aggregate.Distinct(rows,
		func(r normalize.Record) (monthGroup, bool) {
			label, _ := groupLabel(r)
			return monthGroup{month: month(r), group: label}, true
		},
		orderID,
	)

	groups := aggregate.Keys(aggregate.GroupBy(rows, groupLabel))

	records := make([]domain.MonthGroupProbability, 0, 12*len(groups))
	series := make([]domain.Series, len(groups))
	for i, g := range groups {
		series[i] = domain.Series{Name: g, Points: make([]domain.Point, 0, 12)}
	}

	for m := 1; m <= 12; m++ {
		total := perMonth[m].Len()
		for i, g := range groups {
			count := perMonthGroup[monthGroup{month: m, group: g}].Len()
			p := percent(count, total)
			records = append(records, domain.MonthGroupProbability{
				Month:       m,
				GroupLabel:  g,
				Orders:      count,
				Probability: p,
			})
			series[i].Points = append(series[i].Points, domain.Point{Label: "T" + twoDigits(m), Value: p})
		}
	}

	return result{records: records, series: series, skipped: skipped}, nil
}
