package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics-service/internal/analytics/core/domain"
)

var ict = time.FixedZone("ICT", 7*3600)

func TestParse(t *testing.T) {
	r := NewResolver(WithLocation(ict))

	tests := []struct {
		raw  string
		want time.Time
	}{
		{"05/03/2024 14:30", time.Date(2024, 3, 5, 14, 30, 0, 0, ict)},
		{"05/03/2024 14:30:45", time.Date(2024, 3, 5, 14, 30, 45, 0, ict)},
		{"5-3-2024", time.Date(2024, 3, 5, 0, 0, 0, 0, ict)},
		{"5/3/24", time.Date(2024, 3, 5, 0, 0, 0, 0, ict)},
		{"05/03/2024 02:15 PM", time.Date(2024, 3, 5, 14, 15, 0, 0, ict)},
		{"05/03/2024 12:05 am", time.Date(2024, 3, 5, 0, 5, 0, 0, ict)},
		{"05/03/2024 12:30 PM", time.Date(2024, 3, 5, 12, 30, 0, 0, ict)},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, ict)},
		{"2024-03-05 08:45:00", time.Date(2024, 3, 5, 8, 45, 0, 0, ict)},
		{"2024-03-05T01:00:00Z", time.Date(2024, 3, 5, 8, 0, 0, 0, ict)},
		{"2024/3/5", time.Date(2024, 3, 5, 0, 0, 0, 0, ict)},
		{"Đơn ngày 07-08-2023 giao sáng", time.Date(2023, 8, 7, 0, 0, 0, 0, ict)},
		{"  05/03/2024  ", time.Date(2024, 3, 5, 0, 0, 0, 0, ict)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := r.Parse(tt.raw)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestParse_Rollover(t *testing.T) {
	r := NewResolver(WithLocation(time.UTC))

	got, ok := r.Parse("13/13/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC), got)

	got, ok = r.Parse("00/03/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestParse_YearPivot(t *testing.T) {
	got, ok := NewResolver(WithLocation(time.UTC), WithYearPivot(1900)).Parse("5/3/24")
	require.True(t, ok)
	assert.Equal(t, 1924, got.Year())
}

func TestParse_Absent(t *testing.T) {
	r := NewResolver(WithLocation(time.UTC))
	for _, raw := range []string{"", "   ", "abc", "DH01", "2024"} {
		_, ok := r.Parse(raw)
		assert.False(t, ok, "Parse(%q)", raw)
	}
}

func TestColumn(t *testing.T) {
	r := NewResolver()

	i, ok := r.Column([]string{"Mã đơn hàng", "Thời gian tạo đơn", "Ngày giao"})
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = r.Column([]string{"Mã đơn hàng", "SL"})
	assert.False(t, ok)
}

func TestColumn_DateOutranksOrder(t *testing.T) {
	r := NewResolver()

	i, ok := r.Column([]string{"Order ID", "Customer", "Order Date"})
	assert.True(t, ok)
	assert.Equal(t, 2, i)

	i, ok = r.Column([]string{"Bill No", "Ngày bán"})
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	i, ok = r.Column([]string{"SL", "Order ID"})
	assert.True(t, ok, "order-only headers still count when nothing better exists")
	assert.Equal(t, 1, i)
}

func TestResolve_OrderIDBesideOrderDate(t *testing.T) {
	r := NewResolver(WithLocation(time.UTC))
	columns := []string{"Order ID", "Order Date"}
	row := domain.NewRow(columns, []string{"DH01", "05/03/2024 14:30"})

	i, ok := r.Column(columns)
	got, found := r.Resolve(row, i, ok)

	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC), got)
}

func TestResolve_FallsBackToDateShapedCell(t *testing.T) {
	r := NewResolver(WithLocation(time.UTC))
	columns := []string{"Mã đơn hàng", "Ghi chú", "SL"}
	row := domain.NewRow(columns, []string{"DH01", "giao 05/03/2024", "2"})

	i, ok := r.Column(columns)
	got, found := r.Resolve(row, i, ok)

	require.True(t, found)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestResolve_EmptyDateColumn(t *testing.T) {
	r := NewResolver(WithLocation(time.UTC))
	columns := []string{"Thời gian tạo đơn", "Ghi chú"}
	row := domain.NewRow(columns, []string{"", "05/03/2024"})

	i, ok := r.Column(columns)
	_, found := r.Resolve(row, i, ok)
	assert.False(t, found, "a detected date column is authoritative")
}
