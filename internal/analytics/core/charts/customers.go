package charts

import (
	"fmt"
	"strconv"

	"sales-analytics-service/internal/analytics/core/aggregate"
	"sales-analytics-service/internal/analytics/core/distribution"
	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
)

const DefaultSpendBinWidth = 50000

func customerCode(r normalize.Record) (string, bool) {
	return r.CustomerCode, r.CustomerCode != ""
}

// purchaseFrequency counts customers by how many distinct orders they
// placed.
func purchaseFrequency(s *Snapshot, _ Params) (result, error) {
	rows, skipped := keep(s.Records, func(r normalize.Record) bool { return r.CustomerCode != "" && r.OrderID != "" })

	perCustomer := aggregate.Distinct(rows, customerCode, orderID)
	counts := make([]int64, 0, len(perCustomer))
	for _, orders := range perCustomer {
		counts = append(counts, int64(orders.Len()))
	}

	values := distribution.Enumerate(counts)
	records := make([]domain.FrequencyBucket, len(values))
	points := make([]domain.Point, len(values))
	for i, v := range values {
		records[i] = domain.FrequencyBucket{Purchases: v.Value, Customers: v.Count}
		points[i] = domain.Point{Label: strconv.FormatInt(v.Value, 10), Value: float64(v.Count)}
	}

	return result{records: records, series: []domain.Series{{Name: "Customers", Points: points}}, skipped: skipped}, nil
}

// spendDistribution buckets customers by their summed amount.
func spendDistribution(s *Snapshot, p Params) (result, error) {
	rows, skipped := keep(s.Records, func(r normalize.Record) bool { return r.CustomerCode != "" })

	width := p.BinWidth
	if width == 0 {
		width = DefaultSpendBinWidth
	}

	spend := aggregate.Rollup(rows, customerCode, func(rs []normalize.Record) int64 {
		return aggregate.Sum(rs, func(r normalize.Record) int64 { return r.Amount })
	})
	series := make([]float64, 0, len(spend))
	for _, v := range spend {
		series = append(series, float64(v))
	}

	bins, err := distribution.Build(series, width)
	if err != nil {
		return result{}, err
	}

	records := make([]domain.SpendBucket, len(bins))
	points := make([]domain.Point, len(bins))
	for i, b := range bins {
		records[i] = domain.SpendBucket{From: b.From, To: b.To, Count: b.Count}
		points[i] = domain.Point{Label: fmt.Sprintf("%.0f-%.0f", b.From, b.To), Value: float64(b.Count)}
	}

	return result{records: records, series: []domain.Series{{Name: "Customers", Points: points}}, skipped: skipped}, nil
}
