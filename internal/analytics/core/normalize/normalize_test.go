package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics-service/internal/analytics/core/domain"
)

func TestParseInt(t *testing.T) {
	cases := map[string]int64{
		"1.200.000đ": 1200000,
		"1,234 VND":  1234,
		"3":          3,
		" 42 ":       42,
		"-5":         -5,
		"":           0,
		"abc":        0,
		"--":         0,
		"1-2":        0,
		"12.5":       125,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseInt(raw), "ParseInt(%q)", raw)
	}
}

func TestFold(t *testing.T) {
	assert.Equal(t, "thoigiantaodon", Fold("Thời gian tạo đơn"))
	assert.Equal(t, "thoigiantaodon", Fold("thoi_gian_tao_don"))
	assert.Equal(t, "dongia", Fold("Đơn giá"))
	assert.Equal(t, "mapkkh", Fold("Mã PKKH"))
	assert.Equal(t, "orderid", Fold("Order-ID"))
}

func TestColumnSpec_Resolve(t *testing.T) {
	amount := DefaultColumns[9]
	require.Equal(t, FieldAmount, amount.Field)

	t.Run("alias rank beats header order", func(t *testing.T) {
		i, ok := amount.Resolve([]string{"Amount", "Thành tiền"})
		assert.True(t, ok)
		assert.Equal(t, 1, i)
	})

	t.Run("unaccented spelling", func(t *testing.T) {
		i, ok := amount.Resolve([]string{"SL", "thanh tien"})
		assert.True(t, ok)
		assert.Equal(t, 1, i)
	})

	t.Run("fragment fallback", func(t *testing.T) {
		i, ok := amount.Resolve([]string{"Mã đơn hàng", "Tổng thành tiền (VND)"})
		assert.True(t, ok)
		assert.Equal(t, 1, i)
	})

	t.Run("absent", func(t *testing.T) {
		i, ok := amount.Resolve([]string{"Mã đơn hàng", "SL"})
		assert.False(t, ok)
		assert.Equal(t, -1, i)
	})
}

func TestResolveColumns_SalesHeader(t *testing.T) {
	cols := ResolveColumns([]string{
		"Thời gian tạo đơn", "Mã đơn hàng", "Mã khách hàng", "Tên khách hàng",
		"Mã PKKH", "Mô tả Phân Khúc Khách hàng", "Mã nhóm hàng", "Tên nhóm hàng",
		"Mã mặt hàng", "Tên mặt hàng", "Giá Nhập", "SL", "Đơn giá", "Thành tiền",
	}, DefaultColumns)

	want := map[Field]int{
		FieldOrderID: 1, FieldCustomerCode: 2, FieldCustomerName: 3,
		FieldSegmentCode: 4, FieldSegmentDesc: 5, FieldGroupCode: 6, FieldGroupName: 7,
		FieldItemCode: 8, FieldItemName: 9, FieldImportPrice: 10, FieldQuantity: 11,
		FieldUnitPrice: 12, FieldAmount: 13,
	}
	for f, i := range want {
		assert.Equal(t, i, cols[f], "field %s", f)
	}
}

// fixedDates resolves every row to the same instant.
type fixedDates struct{ at time.Time }

func (f fixedDates) Column([]string) (int, bool) { return 0, true }

func (f fixedDates) Resolve(row domain.Row, _ int, _ bool) (time.Time, bool) {
	return f.at, row.Value(0) != ""
}

func TestNormalizeTable_Coercion(t *testing.T) {
	table := &domain.Table{
		Columns: []string{"Thành tiền", "SL"},
		Rows: [][]string{
			{"1.200.000đ", "3"},
			{"", "abc"},
		},
	}

	recs := NormalizeTable(table, nil)
	require.Len(t, recs, 2)
	assert.Equal(t, int64(1200000), recs[0].Amount)
	assert.Equal(t, int64(3), recs[0].Quantity)
	assert.Equal(t, int64(0), recs[1].Amount)
	assert.Equal(t, int64(0), recs[1].Quantity)
}

func TestNormalizer_TextAndShortRows(t *testing.T) {
	at := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	table := &domain.Table{
		Columns: []string{"Ngày", "Mã đơn hàng", "Tên mặt hàng", "Thành tiền"},
		Rows: [][]string{
			{"x", "  DH01 ", " Trà xanh ", "45000"},
			{""},
		},
	}

	recs := NormalizeTable(table, fixedDates{at: at})
	require.Len(t, recs, 2)

	assert.Equal(t, "DH01", recs[0].OrderID)
	assert.Equal(t, "Trà xanh", recs[0].ItemName)
	assert.True(t, recs[0].HasDate)
	assert.Equal(t, at, recs[0].OrderedAt)

	assert.Equal(t, "", recs[1].OrderID)
	assert.Equal(t, int64(0), recs[1].Amount)
	assert.False(t, recs[1].HasDate)
}

func TestNormalizeTable_Empty(t *testing.T) {
	assert.Nil(t, NormalizeTable(nil, nil))
	assert.Nil(t, NormalizeTable(&domain.Table{Columns: []string{"SL"}}, nil))
}
