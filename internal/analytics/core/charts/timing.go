package charts

import (
	"fmt"

	"sales-analytics-service/internal/analytics/core/aggregate"
	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
)

// Opening hours covered by the hourly chart.
const (
	FirstHour = 8
	LastHour  = 23
)

// avgSalesByDayOfMonth totals each calendar date, then averages those
// daily totals over the dates sharing a day of month. Days of month with
// no dated rows are left out.
func avgSalesByDayOfMonth(s *Snapshot, _ Params) (result, error) {
	dated, skipped := keep(s.Records, hasDate)

	daily := aggregate.Rollup(dated,
		func(r normalize.Record) (calendarDay, bool) { return dayOf(r.OrderedAt), true },
		totalsOf,
	)

	byDayOfMonth := make(map[int][]totals, 31)
	for d, t := range daily {
		byDayOfMonth[d.day] = append(byDayOfMonth[d.day], t)
	}

	var (
		records []domain.DaySales
		points  []domain.Point
	)
	for dom := 1; dom <= 31; dom++ {
		days := byDayOfMonth[dom]
		if len(days) == 0 {
			continue
		}
		sales := make([]float64, len(days))
		qty := make([]float64, len(days))
		for i, t := range days {
			sales[i] = float64(t.sales)
			qty[i] = float64(t.quantity)
		}
		rec := domain.DaySales{
			Day:         twoDigits(dom),
			AvgSales:    mean(sales),
			AvgQuantity: mean(qty),
			Days:        len(days),
		}
		records = append(records, rec)
		points = append(points, domain.Point{Label: rec.Day, Value: rec.AvgSales})
	}

	return result{records: nonNil(records), series: []domain.Series{{Name: "Average sales", Points: points}}, skipped: skipped}, nil
}

type dayHour struct {
	day  calendarDay
	hour int
}

// avgSalesByHour averages, for each opening hour, the per-date totals of
// that hour over the dates on which the hour saw any sales or quantity.
func avgSalesByHour(s *Snapshot, _ Params) (result, error) {
	dated, skipped := keep(s.Records, hasDate)
	if len(dated) == 0 {
		return result{records: []domain.HourSales{}, skipped: skipped}, nil
	}

	days := aggregate.NewSet[calendarDay]()
	for _, r := range dated {
		days.Add(dayOf(r.OrderedAt))
	}

	slots := aggregate.Rollup(dated,
		func(r normalize.Record) (dayHour, bool) {
			return dayHour{day: dayOf(r.OrderedAt), hour: r.OrderedAt.Hour()}, true
		},
		totalsOf,
	)

	records := make([]domain.HourSales, 0, LastHour-FirstHour+1)
	points := make([]domain.Point, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		var (
			sum        totals
			sales, qty []float64
		)
		for d := range days {
			t := slots[dayHour{day: d, hour: h}]
			sum.add(t)
			if t.sales != 0 || t.quantity != 0 {
				sales = append(sales, float64(t.sales))
				qty = append(qty, float64(t.quantity))
			}
		}

		rec := domain.HourSales{
			Hour:         twoDigits(h),
			HourLabel:    fmt.Sprintf("%02d:00-%02d:59", h, h),
			AvgSales:     mean(sales),
			AvgQuantity:  mean(qty),
			DaysWithData: len(sales),
			SumSales:     sum.sales,
			SumQuantity:  sum.quantity,
		}
		records = append(records, rec)
		points = append(points, domain.Point{Label: rec.HourLabel, Value: rec.AvgSales})
	}

	return result{records: records, series: []domain.Series{{Name: "Average sales", Points: points}}, skipped: skipped}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
