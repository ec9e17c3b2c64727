package normalize

import "strings"

type Field string

const (
	FieldOrderID      Field = "order_id"
	FieldItemCode     Field = "item_code"
	FieldItemName     Field = "item_name"
	FieldGroupCode    Field = "group_code"
	FieldGroupName    Field = "group_name"
	FieldCustomerCode Field = "customer_code"
	FieldCustomerName Field = "customer_name"
	FieldSegmentCode  Field = "segment_code"
	FieldSegmentDesc  Field = "segment_desc"
	FieldAmount       Field = "amount"
	FieldQuantity     Field = "quantity"
	FieldUnitPrice    Field = "unit_price"
	FieldImportPrice  Field = "import_price"
)

// ColumnSpec describes how to find one field in a header with unknown
// naming. Aliases are compared against whole folded column names, in rank
// order; Fragments are substring matches tried only when no alias hits.
type ColumnSpec struct {
	Field     Field
	Aliases   []string
	Fragments []string
}

// Resolve returns the index of the column holding the field.
func (s ColumnSpec) Resolve(columns []string) (int, bool) {
	folded := make([]string, len(columns))
	for i, c := range columns {
		folded[i] = Fold(c)
	}

	for _, alias := range s.Aliases {
		want := Fold(alias)
		for i, f := range folded {
			if f == want {
				return i, true
			}
		}
	}

	for _, fragment := range s.Fragments {
		want := Fold(fragment)
		for i, f := range folded {
			if strings.Contains(f, want) {
				return i, true
			}
		}
	}

	return -1, false
}

// DefaultColumns covers the Vietnamese export headers, their unaccented
// spellings, and the English names seen in other exports.
var DefaultColumns = []ColumnSpec{
	{
		Field:     FieldOrderID,
		Aliases:   []string{"Mã đơn hàng", "MaDonHang", "Order", "Order ID", "Order Code"},
		Fragments: []string{"madonhang", "orderid", "ordercode"},
	},
	{
		Field:     FieldItemCode,
		Aliases:   []string{"Mã mặt hàng", "MaMatHang", "Item Code", "SKU"},
		Fragments: []string{"mamathang", "itemcode"},
	},
	{
		Field:     FieldItemName,
		Aliases:   []string{"Tên mặt hàng", "TenMatHang", "Item Name", "Item", "Product"},
		Fragments: []string{"tenmathang", "itemname", "productname"},
	},
	{
		Field:     FieldGroupCode,
		Aliases:   []string{"Mã nhóm hàng", "Group Code", "Category Code"},
		Fragments: []string{"manhomhang", "groupcode", "categorycode"},
	},
	{
		Field:     FieldGroupName,
		Aliases:   []string{"Tên nhóm hàng", "Nhóm hàng", "Group Name", "Group", "Category"},
		Fragments: []string{"tennhomhang", "groupname", "categoryname"},
	},
	{
		Field:     FieldCustomerCode,
		Aliases:   []string{"Mã khách hàng", "Customer Code", "Customer ID"},
		Fragments: []string{"makhachhang", "customercode", "customerid"},
	},
	{
		Field:     FieldCustomerName,
		Aliases:   []string{"Tên khách hàng", "Customer Name", "Customer"},
		Fragments: []string{"tenkhachhang", "customername"},
	},
	{
		Field:     FieldSegmentCode,
		Aliases:   []string{"Mã PKKH", "Mã phân khúc", "Segment Code", "Segment"},
		Fragments: []string{"mapkkh", "maphankhuc", "segmentcode"},
	},
	{
		Field:     FieldSegmentDesc,
		Aliases:   []string{"Mô tả Phân Khúc Khách hàng", "Mô tả", "Segment Description"},
		Fragments: []string{"motaphankhuc", "segmentdesc"},
	},
	{
		Field:     FieldAmount,
		Aliases:   []string{"Thành tiền", "Amount", "Total"},
		Fragments: []string{"thanhtien", "amount"},
	},
	{
		Field:     FieldQuantity,
		Aliases:   []string{"SL", "Số lượng", "Qty", "Quantity"},
		Fragments: []string{"soluong", "quantity"},
	},
	{
		Field:     FieldUnitPrice,
		Aliases:   []string{"Đơn giá", "UnitPrice", "Price"},
		Fragments: []string{"dongia", "unitprice"},
	},
	{
		Field:     FieldImportPrice,
		Aliases:   []string{"Giá Nhập", "ImportPrice", "Cost"},
		Fragments: []string{"gianhap", "importprice"},
	},
}

// Columns maps each resolved field to its column index.
type Columns map[Field]int

func ResolveColumns(columns []string, specs []ColumnSpec) Columns {
	resolved := make(Columns, len(specs))
	for _, s := range specs {
		if i, ok := s.Resolve(columns); ok {
			resolved[s.Field] = i
		}
	}
	return resolved
}

func (c Columns) Has(f Field) bool {
	_, ok := c[f]
	return ok
}
