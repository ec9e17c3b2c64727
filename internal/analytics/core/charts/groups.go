package charts

import (
	"cmp"
	"slices"
	"strings"

	"sales-analytics-service/internal/analytics/core/aggregate"
	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
)

// itemKey identifies an item inside its group; rows without an item code
// fall back to the item name.
func itemKey(r normalize.Record) (string, bool) {
	if r.ItemCode != "" {
		return r.ItemCode, true
	}
	return "ITEM_" + r.ItemName, true
}

func itemName(r normalize.Record) string {
	if r.ItemName != "" {
		return r.ItemName
	}
	k, _ := itemKey(r)
	return k
}

// SelectGroups narrows group codes to the requested one: an exact match
// wins, otherwise the first code containing want, case-insensitively.
// An empty want keeps every code.
func SelectGroups(codes []string, want string) []string {
	want = strings.TrimSpace(want)
	if want == "" {
		return codes
	}
	if slices.Contains(codes, want) {
		return []string{want}
	}
	upper := strings.ToUpper(want)
	for _, c := range codes {
		if strings.Contains(strings.ToUpper(c), upper) {
			return []string{c}
		}
	}
	return []string{}
}

func byGroupCode(rows []normalize.Record) map[string][]normalize.Record {
	return aggregate.GroupBy(rows, func(r normalize.Record) (string, bool) { return r.GroupCode, true })
}

// itemProbabilityInGroup is, per item group, the share of the group's
// distinct orders that include each item.
func itemProbabilityInGroup(s *Snapshot, p Params) (result, error) {
	rows, skipped := keep(s.Records, func(r normalize.Record) bool { return r.GroupCode != "" && r.OrderID != "" })
	groups := byGroupCode(rows)

	codes := SelectGroups(aggregate.Keys(groups), p.Group)
	records := make([]domain.GroupItemProbabilities, 0, len(codes))
	series := make([]domain.Series, 0, len(codes))

	for _, code := range codes {
		groupRows := groups[code]

		groupOrders := aggregate.NewSet[string]()
		names := make(map[string]string)
		for _, r := range groupRows {
			groupOrders.Add(r.OrderID)
			k, _ := itemKey(r)
			if _, ok := names[k]; !ok {
				names[k] = itemName(r)
			}
		}

		perItem := aggregate.Distinct(groupRows, itemKey, orderID)
		items := make([]domain.ItemProbability, 0, len(perItem))
		for k, orders := range perItem {
			items = append(items, domain.ItemProbability{
				ItemLabel:   bracket(k, names[k]),
				Orders:      orders.Len(),
				Probability: percent(orders.Len(), groupOrders.Len()),
			})
		}
		slices.SortFunc(items, func(a, b domain.ItemProbability) int {
			return cmp.Or(cmp.Compare(b.Probability, a.Probability), strings.Compare(a.ItemLabel, b.ItemLabel))
		})

		rec := domain.GroupItemProbabilities{
			GroupCode: code,
			GroupName: groupRows[0].GroupName,
			Orders:    groupOrders.Len(),
			Items:     items,
		}
		records = append(records, rec)

		points := make([]domain.Point, len(items))
		for i, it := range items {
			points[i] = domain.Point{Label: it.ItemLabel, Value: it.Probability}
		}
		series = append(series, domain.Series{Name: bracket(code, rec.GroupName), Points: points})
	}

	return result{records: records, series: series, skipped: skipped}, nil
}

type monthItem struct {
	month int
	item  string
}

// itemProbabilityInGroupByMonth follows each item's share of its group's
// orders across the twelve months. Months where the group or the item has
// no orders read zero.
func itemProbabilityInGroupByMonth(s *Snapshot, p Params) (result, error) {
	rows, skipped := keep(s.Records, func(r normalize.Record) bool {
		return r.GroupCode != "" && r.OrderID != "" && r.HasDate
	})
	groups := byGroupCode(rows)

	month := func(r normalize.Record) int { return int(r.OrderedAt.Month()) }

	codes := SelectGroups(aggregate.Keys(groups), p.Group)
	records := make([]domain.GroupItemTrends, 0, len(codes))
	var series []domain.Series

	for _, code := range codes {
		groupRows := groups[code]

		groupOrders := aggregate.Distinct(groupRows,
			func(r normalize.Record) (int, bool) { return month(r), true },
			orderID,
		)
		itemOrders := aggregate.Distinct(groupRows,
			func(r normalize.Record) (monthItem, bool) {
				k, _ := itemKey(r)
				return monthItem{month: month(r), item: k}, true
			},
			orderID,
		)

		// names come from the earliest month an item appears in
		byMonth := aggregate.GroupBy(groupRows, func(r normalize.Record) (int, bool) { return month(r), true })
		names := make(map[string]string)
		for _, m := range aggregate.Keys(byMonth) {
			for _, r := range byMonth[m] {
				k, _ := itemKey(r)
				if _, ok := names[k]; !ok {
					names[k] = itemName(r)
				}
			}
		}

		rec := domain.GroupItemTrends{GroupCode: code, GroupName: groupRows[0].GroupName}
		for _, k := range aggregate.Keys(names) {
			trend := domain.ItemTrend{ItemCode: k, ItemName: names[k], Values: make([]domain.MonthProbability, 0, 12)}
			points := make([]domain.Point, 0, 12)
			for m := 1; m <= 12; m++ {
				pr := percent(itemOrders[monthItem{month: m, item: k}].Len(), groupOrders[m].Len())
				trend.Values = append(trend.Values, domain.MonthProbability{Month: m, Probability: pr})
				points = append(points, domain.Point{Label: "T" + twoDigits(m), Value: pr})
			}
			rec.Items = append(rec.Items, trend)
			series = append(series, domain.Series{Name: code + " " + bracket(k, names[k]), Points: points})
		}
		rec.Items = nonNil(rec.Items)
		records = append(records, rec)
	}

	return result{records: records, series: series, skipped: skipped}, nil
}
