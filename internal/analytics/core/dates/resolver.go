// Package dates finds and parses the order timestamp of a sales row whose
// column layout and date format are not known in advance.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/normalize"
)

const DefaultYearPivot = 2000

// columnTiers are folded header fragments in decreasing priority: a header
// naming a date or time beats one that only names the order or bill.
var columnTiers = [][]string{
	{"thoigian", "thoi", "ngay", "date", "time"},
	{"order", "bill"},
}

// genericLayouts are unambiguous formats tried before the day-first rules.
// Numeric slash dates are always day-first and never go through this list.
var genericLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2, 2006 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006 15:04",
	"2 Jan 2006",
	"2 January 2006",
}

var (
	dayFirst      = regexp.MustCompile(`(?i)^\s*(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})(?:\s+(\d{1,2}):(\d{2})(?::(\d{2}))?\s*(AM|PM)?)?`)
	yearFirst     = regexp.MustCompile(`^(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})`)
	dayFirstToken = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`)
	yearFirstLike = regexp.MustCompile(`\d{4}[/\-]\d{1,2}[/\-]\d{1,2}`)
)

type Resolver struct {
	loc   *time.Location
	pivot int
}

type Option func(*Resolver)

// WithLocation sets the zone wall-clock values are interpreted in.
func WithLocation(loc *time.Location) Option {
	return func(r *Resolver) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithYearPivot sets the century added to two-digit years.
func WithYearPivot(pivot int) Option {
	return func(r *Resolver) { r.pivot = pivot }
}

func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{loc: time.Local, pivot: DefaultYearPivot}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) Location() *time.Location { return r.loc }

// Column picks the first column, in header order, whose name holds a
// fragment of the highest tier that any column matches.
func (r *Resolver) Column(columns []string) (int, bool) {
	folded := make([]string, len(columns))
	for i, c := range columns {
		folded[i] = normalize.Fold(c)
	}
	for _, tier := range columnTiers {
		for i, f := range folded {
			for _, fragment := range tier {
				if strings.Contains(f, fragment) {
					return i, true
				}
			}
		}
	}
	return -1, false
}

// Value returns the first cell of row that contains something date-shaped.
func (r *Resolver) Value(row domain.Row) string {
	for i := range row.Columns() {
		v := row.Value(i)
		if dayFirstToken.MatchString(v) || yearFirstLike.MatchString(v) {
			return v
		}
	}
	return ""
}

// Resolve parses the row's timestamp from column when ok, otherwise from
// the first date-shaped cell.
func (r *Resolver) Resolve(row domain.Row, column int, ok bool) (time.Time, bool) {
	if ok {
		return r.Parse(row.Value(column))
	}
	return r.Parse(r.Value(row))
}

// Parse reads raw under, in order: the generic layouts, D/M/Y with optional
// time and AM/PM, Y/M/D, and finally the first D/M/Y token inside free text.
//
// Field ranges are not validated: month 13 rolls into the next year and
// day 0 into the previous month, as time.Date normalizes them.
func (r *Resolver) Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if t, ok := r.parseGeneric(raw); ok {
		return t, true
	}
	if m := dayFirst.FindStringSubmatch(raw); m != nil {
		return r.fromDayFirst(m), true
	}
	if m := yearFirst.FindStringSubmatch(raw); m != nil {
		return time.Date(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3]), 0, 0, 0, 0, r.loc), true
	}
	if token := dayFirstToken.FindString(raw); token != "" {
		if m := dayFirst.FindStringSubmatch(token); m != nil {
			return r.fromDayFirst(m), true
		}
	}
	return time.Time{}, false
}

func (r *Resolver) parseGeneric(raw string) (time.Time, bool) {
	for _, layout := range genericLayouts {
		t, err := time.ParseInLocation(layout, raw, r.loc)
		if err == nil {
			return t.In(r.loc), true
		}
	}
	return time.Time{}, false
}

func (r *Resolver) fromDayFirst(m []string) time.Time {
	day, month := atoi(m[1]), atoi(m[2])
	year := atoi(m[3])
	if len(m[3]) == 2 {
		year += r.pivot
	}

	hour, minute, second := atoi(m[4]), atoi(m[5]), atoi(m[6])
	switch strings.ToUpper(m[7]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, r.loc)
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
