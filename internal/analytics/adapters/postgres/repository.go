package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"sales-analytics-service/internal/analytics/core/domain"
	"sales-analytics-service/internal/analytics/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// Columns are the headers of a table rebuilt from order_lines. They match
// the headers of the exported sales sheet so the normalizer treats both
// sources alike.
var Columns = []string{
	"Thời gian tạo đơn",
	"Mã đơn hàng",
	"Mã khách hàng",
	"Tên khách hàng",
	"Mã PKKH",
	"Mô tả Phân Khúc Khách hàng",
	"Mã nhóm hàng",
	"Tên nhóm hàng",
	"Mã mặt hàng",
	"Tên mặt hàng",
	"Giá Nhập",
	"SL",
	"Đơn giá",
	"Thành tiền",
}

// TimeLayout is how ordered_at is written back into the table.
const TimeLayout = "02/01/2006 15:04"

const selectOrderLines = `
SELECT
    ordered_at,
    order_code,
    customer_code,
    customer_name,
    segment_code,
    segment_desc,
    group_code,
    group_name,
    item_code,
    item_name,
    import_price,
    quantity,
    unit_price,
    total_price
FROM order_lines
ORDER BY id`

// TableRepository serves the sales table out of the order_lines table.
type TableRepository struct {
	db  DB
	loc *time.Location
}

var _ ports.DatasetSource = (*TableRepository)(nil)

func NewTableRepository(db DB, loc *time.Location) *TableRepository {
	if loc == nil {
		loc = time.Local
	}
	return &TableRepository{db: db, loc: loc}
}

func (r *TableRepository) Load(ctx context.Context) (*domain.Table, error) {
	rows, err := r.db.QueryContext(ctx, selectOrderLines)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrDatasetUnavailable, err)
	}
	defer rows.Close()

	table := &domain.Table{Columns: Columns}

	for rows.Next() {
		var (
			orderedAt                                    sql.NullTime
			orderCode, customerCode, customerName        string
			segmentCode, segmentDesc, groupCode          string
			groupName, itemCode, itemName                string
			importPrice, quantity, unitPrice, totalPrice int64
		)

		if err := rows.Scan(
			&orderedAt, &orderCode, &customerCode, &customerName,
			&segmentCode, &segmentDesc, &groupCode, &groupName,
			&itemCode, &itemName,
			&importPrice, &quantity, &unitPrice, &totalPrice,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ports.ErrDatasetUnavailable, err)
		}

		var when string
		if orderedAt.Valid {
			when = orderedAt.Time.In(r.loc).Format(TimeLayout)
		}

		table.Rows = append(table.Rows, []string{
			when, orderCode, customerCode, customerName,
			segmentCode, segmentDesc, groupCode, groupName,
			itemCode, itemName,
			itoa(importPrice), itoa(quantity), itoa(unitPrice), itoa(totalPrice),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrDatasetUnavailable, err)
	}

	return table, nil
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
