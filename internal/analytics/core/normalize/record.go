package normalize

import (
	"strings"
	"time"

	"sales-analytics-service/internal/analytics/core/domain"
)

// Record is one sales row after type coercion.
type Record struct {
	OrderID      string
	ItemCode     string
	ItemName     string
	GroupCode    string
	GroupName    string
	CustomerCode string
	CustomerName string
	SegmentCode  string
	SegmentDesc  string

	Amount      int64
	Quantity    int64
	UnitPrice   int64
	ImportPrice int64

	OrderedAt time.Time
	HasDate   bool
}

// DateResolver locates and parses the timestamp of a row.
type DateResolver interface {
	Column(columns []string) (int, bool)
	Resolve(row domain.Row, column int, ok bool) (time.Time, bool)
}

// Normalizer turns raw rows of one table into Records. Columns are
// resolved once at construction.
type Normalizer struct {
	columns    Columns
	dates      DateResolver
	dateColumn int
	hasDate    bool
}

func NewNormalizer(columns []string, dates DateResolver) *Normalizer {
	n := &Normalizer{
		columns: ResolveColumns(columns, DefaultColumns),
		dates:   dates,
	}
	if dates != nil {
		n.dateColumn, n.hasDate = dates.Column(columns)
	}
	return n
}

func (n *Normalizer) Columns() Columns { return n.columns }

func (n *Normalizer) Normalize(row domain.Row) Record {
	rec := Record{
		OrderID:      n.text(row, FieldOrderID),
		ItemCode:     n.text(row, FieldItemCode),
		ItemName:     n.text(row, FieldItemName),
		GroupCode:    n.text(row, FieldGroupCode),
		GroupName:    n.text(row, FieldGroupName),
		CustomerCode: n.text(row, FieldCustomerCode),
		CustomerName: n.text(row, FieldCustomerName),
		SegmentCode:  n.text(row, FieldSegmentCode),
		SegmentDesc:  n.text(row, FieldSegmentDesc),
		Amount:       n.number(row, FieldAmount),
		Quantity:     n.number(row, FieldQuantity),
		UnitPrice:    n.number(row, FieldUnitPrice),
		ImportPrice:  n.number(row, FieldImportPrice),
	}
	if n.dates != nil {
		rec.OrderedAt, rec.HasDate = n.dates.Resolve(row, n.dateColumn, n.hasDate)
	}
	return rec
}

// NormalizeTable normalizes every row of t in order.
func NormalizeTable(t *domain.Table, dates DateResolver) []Record {
	if t.Len() == 0 {
		return nil
	}
	n := NewNormalizer(t.Columns, dates)
	out := make([]Record, t.Len())
	for i := range t.Rows {
		out[i] = n.Normalize(t.Row(i))
	}
	return out
}

func (n *Normalizer) text(row domain.Row, f Field) string {
	i, ok := n.columns[f]
	if !ok {
		return ""
	}
	return strings.TrimSpace(row.Value(i))
}

func (n *Normalizer) number(row domain.Row, f Field) int64 {
	i, ok := n.columns[f]
	if !ok {
		return 0
	}
	return ParseInt(row.Value(i))
}
