package charts

import (
	"fmt"

	"sales-analytics-service/internal/analytics/core/domain"
)

type result struct {
	records any
	series  []domain.Series
	skipped int
}

type definition struct {
	domain.Descriptor
	compute func(*Snapshot, Params) (result, error)
}

// There is no chart 4; ids match the published dashboard pages.
var catalog = []definition{
	{domain.Descriptor{ID: 1, Name: "sales-by-item", Title: "Sales by item", Kind: domain.KindBar}, salesByItem},
	{domain.Descriptor{ID: 2, Name: "sales-by-group", Title: "Sales by item group", Kind: domain.KindBar}, salesByGroup},
	{domain.Descriptor{ID: 3, Name: "sales-by-month", Title: "Sales by month", Kind: domain.KindBar}, salesByMonth},
	{domain.Descriptor{ID: 5, Name: "avg-sales-by-day-of-month", Title: "Average sales by day of month", Kind: domain.KindBar}, avgSalesByDayOfMonth},
	{domain.Descriptor{ID: 6, Name: "avg-sales-by-hour", Title: "Average sales by hour of day", Kind: domain.KindBar}, avgSalesByHour},
	{domain.Descriptor{ID: 7, Name: "group-order-probability", Title: "Order probability by item group", Kind: domain.KindBar}, groupOrderProbability},
	{domain.Descriptor{ID: 8, Name: "group-order-probability-by-month", Title: "Order probability by item group and month", Kind: domain.KindLine}, groupOrderProbabilityByMonth},
	{domain.Descriptor{ID: 9, Name: "item-probability-in-group", Title: "Item probability within item group", Kind: domain.KindBar}, itemProbabilityInGroup},
	{domain.Descriptor{ID: 10, Name: "item-probability-in-group-by-month", Title: "Item probability within item group by month", Kind: domain.KindLine}, itemProbabilityInGroupByMonth},
	{domain.Descriptor{ID: 11, Name: "purchase-frequency", Title: "Customers by number of purchases", Kind: domain.KindHistogram}, purchaseFrequency},
	{domain.Descriptor{ID: 12, Name: "spend-distribution", Title: "Customers by total spend", Kind: domain.KindHistogram}, spendDistribution},
}

// Catalog lists every chart in id order.
func Catalog() []domain.Descriptor {
	out := make([]domain.Descriptor, len(catalog))
	for i, d := range catalog {
		out[i] = d.Descriptor
	}
	return out
}

func Lookup(id int) (domain.Descriptor, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d.Descriptor, true
		}
	}
	return domain.Descriptor{}, false
}

// Compute builds chart id from the snapshot.
func Compute(id int, s *Snapshot, p Params) (*domain.Chart, error) {
	for _, d := range catalog {
		if d.ID != id {
			continue
		}
		res, err := d.compute(s, p)
		if err != nil {
			return nil, fmt.Errorf("chart %d: %w", id, err)
		}
		return &domain.Chart{
			Descriptor: d.Descriptor,
			Records:    res.records,
			Series:     res.series,
			Rows:       s.Len(),
			Skipped:    res.skipped,
		}, nil
	}
	return nil, fmt.Errorf("chart %d: not in catalog", id)
}
