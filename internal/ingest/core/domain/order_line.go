package domain

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is one imported sales row as stored in order_lines.
type OrderLine struct {
	BatchID   uuid.UUID
	OrderCode string
	OrderedAt *time.Time

	CustomerCode string
	CustomerName string
	SegmentCode  string
	SegmentDesc  string

	GroupCode string
	GroupName string
	ItemCode  string
	ItemName  string

	ImportPrice int64
	Quantity    int64
	UnitPrice   int64
	TotalPrice  int64
}
