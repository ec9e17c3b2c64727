// Package charts computes the dashboard chart datasets from one normalized
// snapshot of the sales table.
package charts

import (
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
)

// Snapshot is an immutable set of normalized rows shared by every chart
// computed for one request.
type Snapshot struct {
	Records []normalize.Record
}

func NewSnapshot(t *domain.Table, dates normalize.DateResolver) *Snapshot {
	return &Snapshot{Records: normalize.NormalizeTable(t, dates)}
}

func (s *Snapshot) Len() int { return len(s.Records) }

type Params struct {
	Group    string  // group code filter for per-group charts
	BinWidth float64 // spend histogram bin width; 0 means DefaultSpendBinWidth
}

type totals struct {
	sales    int64
	quantity int64
}

func (t *totals) add(o totals) {
	t.sales += o.sales
	t.quantity += o.quantity
}

func totalsOf(rows []normalize.Record) totals {
	var t totals
	for _, r := range rows {
		t.sales += r.Amount
		t.quantity += r.Quantity
	}
	return t
}

// calendarDay is a date without time of day.
type calendarDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) calendarDay {
	y, m, d := t.Date()
	return calendarDay{year: y, month: m, day: d}
}

// keep splits rows into those satisfying pred and a count of the rest.
func keep(rows []normalize.Record, pred func(normalize.Record) bool) ([]normalize.Record, int) {
	out := make([]normalize.Record, 0, len(rows))
	for _, r := range rows {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out, len(rows) - len(out)
}

func hasDate(r normalize.Record) bool  { return r.HasDate }
func hasOrder(r normalize.Record) bool { return r.OrderID != "" }

func bracket(code, name string) string {
	return "[" + code + "] " + name
}

// groupCaption omits the code part when the row has no group code.
func groupCaption(r normalize.Record) string {
	if r.GroupCode == "" {
		return r.GroupName
	}
	return bracket(r.GroupCode, r.GroupName)
}

func groupLabel(r normalize.Record) (string, bool) {
	return bracket(r.GroupCode, r.GroupName), true
}

func orderID(r normalize.Record) (string, bool) {
	return r.OrderID, r.OrderID != ""
}

// percent is part/whole as a percentage rounded to one decimal.
func percent(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

func twoDigits(n int) string {
	return fmt.Sprintf("%02d", n)
}
