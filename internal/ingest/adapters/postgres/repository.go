package postgres

import (
	"context"
	"fmt"
	"time"

	"sales-analytics-service/internal/ingest/core/domain"
	"sales-analytics-service/internal/ingest/core/ports"
)

// BatchSize bounds the rows of one multi-row INSERT.
const BatchSize = 1000

type OrderLineRepository struct {
	db DB
}

func NewOrderLineRepository(db DB) *OrderLineRepository {
	return &OrderLineRepository{db: db}
}

var _ ports.OrderLineRepositoryPort = (*OrderLineRepository)(nil)

// sqlx expands the VALUES tuple once per element of a slice argument.
const insertOrderLinesSQL = `
INSERT INTO order_lines (
    batch_id,
    order_code,
    ordered_at,
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
) VALUES (
    :batch_id, :order_code, :ordered_at,
    :customer_code, :customer_name, :segment_code, :segment_desc,
    :group_code, :group_name, :item_code, :item_name,
    :import_price, :quantity, :unit_price, :total_price
)`

type orderLineRow struct {
	BatchID      string     `db:"batch_id"`
	OrderCode    string     `db:"order_code"`
	OrderedAt    *time.Time `db:"ordered_at"`
	CustomerCode string     `db:"customer_code"`
	CustomerName string     `db:"customer_name"`
	SegmentCode  string     `db:"segment_code"`
	SegmentDesc  string     `db:"segment_desc"`
	GroupCode    string     `db:"group_code"`
	GroupName    string     `db:"group_name"`
	ItemCode     string     `db:"item_code"`
	ItemName     string     `db:"item_name"`
	ImportPrice  int64      `db:"import_price"`
	Quantity     int64      `db:"quantity"`
	UnitPrice    int64      `db:"unit_price"`
	TotalPrice   int64      `db:"total_price"`
}

func toRow(l domain.OrderLine) orderLineRow {
	return orderLineRow{
		BatchID:      l.BatchID.String(),
		OrderCode:    l.OrderCode,
		OrderedAt:    l.OrderedAt,
		CustomerCode: l.CustomerCode,
		CustomerName: l.CustomerName,
		SegmentCode:  l.SegmentCode,
		SegmentDesc:  l.SegmentDesc,
		GroupCode:    l.GroupCode,
		GroupName:    l.GroupName,
		ItemCode:     l.ItemCode,
		ItemName:     l.ItemName,
		ImportPrice:  l.ImportPrice,
		Quantity:     l.Quantity,
		UnitPrice:    l.UnitPrice,
		TotalPrice:   l.TotalPrice,
	}
}

func (r *OrderLineRepository) InsertOrderLines(ctx context.Context, lines []domain.OrderLine) (int, error) {
	if len(lines) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}

	var stored int
	for start := 0; start < len(lines); start += BatchSize {
		end := min(start+BatchSize, len(lines))

		rows := make([]orderLineRow, 0, end-start)
		for _, l := range lines[start:end] {
			rows = append(rows, toRow(l))
		}

		res, err := tx.NamedExecContext(ctx, insertOrderLinesSQL, rows)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert rows %d-%d: %w", start, end-1, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return 0, err
		}
		stored += int(n)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return stored, nil
}
